package queries

import (
	"context"
	"strings"

	"hecho-core/internal/pkg/errs"
)

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 200
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID string, limit int32) ([]*NotificationView, error)
}

type NotificationQueries interface {
	// ListForUser returns the newest notifications of userID first.
	ListForUser(ctx context.Context, userID string, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID string, limit int) ([]*NotificationView, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidNotification
	}
	limit = clampLimit(limit)

	views, err := q.store.ListByUser(ctx, userID, int32(limit)) // #nosec G115 -- clamped
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return views, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultNotificationLimit
	case limit > MaxNotificationLimit:
		return MaxNotificationLimit
	default:
		return limit
	}
}
