package repository

import (
	"context"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/pkg/pgconv"
)

type JobWriteQueries interface {
	CreateJob(ctx context.Context, db query.DBTX, arg query.CreateJobParams) error
}

type JobRepository struct {
	queries JobWriteQueries
}

func NewJobRepository(queries JobWriteQueries) *JobRepository {
	return &JobRepository{queries: queries}
}

func (r *JobRepository) Create(ctx context.Context, tx query.DBTX, j *job.Job) error {
	params := query.CreateJobParams{
		ID:          j.ID(),
		OrgID:       j.OrgID(),
		Type:        string(j.Type()),
		TicketID:    pgconv.StringPtrToPgtype(j.TicketID()),
		PaymentID:   pgconv.StringPtrToPgtype(j.PaymentID()),
		Input:       []byte(j.Input()),
		Status:      string(j.Status()),
		Attempts:    int32(j.Attempts()),    // #nosec G115 -- bounded by max attempts
		MaxAttempts: int32(j.MaxAttempts()), // #nosec G115 -- bounded by max attempts
		CreatedAt:   pgconv.TimeToPgtype(j.CreatedAt()),
	}

	if err := r.queries.CreateJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create job", err)
	}
	return nil
}
