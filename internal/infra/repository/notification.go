package repository

import (
	"context"
	"encoding/json"
	"time"

	"hecho-core/internal/domain/notification"
	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db query.DBTX, arg query.CreateNotificationParams) (pgtype.Timestamptz, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx query.DBTX, n *notification.Notification) (time.Time, error) {
	id, err := pgconv.UUIDStringToPgtype(n.ID())
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid notification id")
	}

	metadata, err := json.Marshal(n.Metadata())
	if err != nil {
		return time.Time{}, errs.Wrap(err, "failed to encode notification metadata")
	}

	params := query.CreateNotificationParams{
		ID:       id,
		UserID:   n.UserID(),
		Title:    n.Title(),
		Body:     n.Body(),
		Type:     string(n.Type()),
		Link:     pgconv.StringPtrToPgtype(n.Link()),
		Metadata: metadata,
	}

	createdAt, err := r.queries.CreateNotification(ctx, tx, params)
	if err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to create notification", err)
	}
	return pgconv.TimeFromPgtype(createdAt), nil
}
