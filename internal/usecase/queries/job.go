package queries

import (
	"context"
	"strings"
	"time"

	"hecho-core/internal/infra"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/pkg/errs"
)

type JobReadStore interface {
	FindByID(ctx context.Context, orgID, id string) (*JobView, error)
	ListStaleQueued(ctx context.Context, createdBefore time.Time, limit int32) ([]*JobView, error)
}

type JobQueries interface {
	// Get returns a job of orgID. Jobs of other orgs are reported as not found.
	Get(ctx context.Context, orgID, id string) (*JobView, error)
	// ListStaleQueued returns QUEUED jobs older than olderThan that still have attempts left, oldest first.
	ListStaleQueued(ctx context.Context, olderThan time.Duration, limit int) ([]*JobView, error)
}

type jobQueriesImpl struct {
	store JobReadStore
	clock clock.Clock
}

func NewJobQueries(store JobReadStore, clk clock.Clock) JobQueries {
	return &jobQueriesImpl{store: store, clock: clk}
}

func (q *jobQueriesImpl) Get(ctx context.Context, orgID, id string) (*JobView, error) {
	orgID, id = strings.TrimSpace(orgID), strings.TrimSpace(id)
	if orgID == "" || id == "" {
		return nil, errs.ErrJobNotFound
	}

	view, err := q.store.FindByID(ctx, orgID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return view, nil
}

const maxStaleBatch = 1000

func (q *jobQueriesImpl) ListStaleQueued(ctx context.Context, olderThan time.Duration, limit int) ([]*JobView, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > maxStaleBatch {
		limit = maxStaleBatch
	}

	views, err := q.store.ListStaleQueued(ctx, q.clock.Now().Add(-olderThan), int32(limit)) // #nosec G115 -- clamped above
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return views, nil
}
