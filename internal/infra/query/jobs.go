package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createJob = `
INSERT INTO jobs (id, org_id, type, ticket_id, payment_id, input, status, attempts, max_attempts, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`

type CreateJobParams struct {
	ID          string
	OrgID       string
	Type        string
	TicketID    pgtype.Text
	PaymentID   pgtype.Text
	Input       []byte
	Status      string
	Attempts    int32
	MaxAttempts int32
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateJob(ctx context.Context, db DBTX, arg CreateJobParams) error {
	_, err := db.Exec(ctx, createJob,
		arg.ID,
		arg.OrgID,
		arg.Type,
		arg.TicketID,
		arg.PaymentID,
		arg.Input,
		arg.Status,
		arg.Attempts,
		arg.MaxAttempts,
		arg.CreatedAt,
	)
	return err
}

const jobColumns = `id, org_id, type, ticket_id, payment_id, input, status, attempts, max_attempts, error_message, result, created_at, updated_at`

const getJobByID = `SELECT ` + jobColumns + `
FROM jobs
WHERE org_id = $1 AND id = $2
`

func (q *Queries) GetJobByID(ctx context.Context, db DBTX, orgID, id string) (Job, error) {
	row := db.QueryRow(ctx, getJobByID, orgID, id)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.OrgID,
		&i.Type,
		&i.TicketID,
		&i.PaymentID,
		&i.Input,
		&i.Status,
		&i.Attempts,
		&i.MaxAttempts,
		&i.ErrorMessage,
		&i.Result,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listStaleQueuedJobs = `SELECT ` + jobColumns + `
FROM jobs
WHERE status = 'QUEUED'
  AND created_at <= $1
  AND attempts < max_attempts
ORDER BY created_at ASC
LIMIT $2
`

type ListStaleQueuedJobsParams struct {
	CreatedBefore pgtype.Timestamptz
	Limit         int32
}

func (q *Queries) ListStaleQueuedJobs(ctx context.Context, db DBTX, arg ListStaleQueuedJobsParams) ([]Job, error) {
	rows, err := db.Query(ctx, listStaleQueuedJobs, arg.CreatedBefore, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Job
	for rows.Next() {
		var i Job
		if err := rows.Scan(
			&i.ID,
			&i.OrgID,
			&i.Type,
			&i.TicketID,
			&i.PaymentID,
			&i.Input,
			&i.Status,
			&i.Attempts,
			&i.MaxAttempts,
			&i.ErrorMessage,
			&i.Result,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
