package readstore

import (
	"context"
	"time"

	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/pkg/pgconv"
	"hecho-core/internal/usecase/queries"
)

type JobViewQueries interface {
	GetJobByID(ctx context.Context, db query.DBTX, orgID, id string) (query.Job, error)
	ListStaleQueuedJobs(ctx context.Context, db query.DBTX, arg query.ListStaleQueuedJobsParams) ([]query.Job, error)
}

type JobReadStore struct {
	queries JobViewQueries
	db      query.DBTX
}

func NewJobReadStore(queries JobViewQueries, db query.DBTX) *JobReadStore {
	return &JobReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *JobReadStore) FindByID(ctx context.Context, orgID, id string) (*queries.JobView, error) {
	row, err := r.queries.GetJobByID(ctx, r.db, orgID, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get job by id", err)
	}
	return toJobView(row), nil
}

func (r *JobReadStore) ListStaleQueued(ctx context.Context, createdBefore time.Time, limit int32) ([]*queries.JobView, error) {
	rows, err := r.queries.ListStaleQueuedJobs(ctx, r.db, query.ListStaleQueuedJobsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale queued jobs", err)
	}

	views := make([]*queries.JobView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toJobView(row))
	}
	return views, nil
}

func toJobView(row query.Job) *queries.JobView {
	return &queries.JobView{
		ID:           row.ID,
		OrgID:        row.OrgID,
		Type:         row.Type,
		TicketID:     pgconv.StringPtrFromPgtype(row.TicketID),
		PaymentID:    pgconv.StringPtrFromPgtype(row.PaymentID),
		Input:        row.Input,
		Status:       row.Status,
		Attempts:     row.Attempts,
		MaxAttempts:  row.MaxAttempts,
		ErrorMessage: pgconv.StringPtrFromPgtype(row.ErrorMessage),
		Result:       row.Result,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
