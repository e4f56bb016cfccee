package readstore

import (
	"context"
	"encoding/json"

	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/pkg/pgconv"
	"hecho-core/internal/usecase/queries"
)

type NotificationViewQueries interface {
	ListNotificationsByUser(ctx context.Context, db query.DBTX, userID string, limit int32) ([]query.Notification, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      query.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db query.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID string, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	views := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		metadata := map[string]any{}
		if len(row.Metadata) > 0 {
			if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
				return nil, errs.Wrapf(err, "invalid metadata on notification %s", pgconv.UUIDStringFromPgtype(row.ID))
			}
		}
		views = append(views, &queries.NotificationView{
			ID:        pgconv.UUIDStringFromPgtype(row.ID),
			UserID:    row.UserID,
			Title:     row.Title,
			Body:      row.Body,
			Type:      row.Type,
			Link:      pgconv.StringPtrFromPgtype(row.Link),
			Metadata:  metadata,
			Read:      row.Read,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
