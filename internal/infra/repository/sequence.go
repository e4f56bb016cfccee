package repository

import (
	"context"

	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
)

type SequenceWriteQueries interface {
	IncrementSequenceCounter(ctx context.Context, db query.DBTX, key string) (int64, error)
}

type SequenceRepository struct {
	queries SequenceWriteQueries
}

func NewSequenceRepository(queries SequenceWriteQueries) *SequenceRepository {
	return &SequenceRepository{queries: queries}
}

func (r *SequenceRepository) Increment(ctx context.Context, tx query.DBTX, key string) (int64, error) {
	current, err := r.queries.IncrementSequenceCounter(ctx, tx, key)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment sequence counter "+key, err)
	}
	return current, nil
}
