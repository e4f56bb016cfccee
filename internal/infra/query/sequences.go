package query

import (
	"context"
)

// The upsert locks the counter row, so concurrent callers for one key queue
// behind each other and each observes the value committed before it.
const incrementSequenceCounter = `
INSERT INTO sequence_counters (key, current, updated_at)
VALUES ($1, 1, now())
ON CONFLICT (key) DO UPDATE
SET current = sequence_counters.current + 1,
    updated_at = now()
RETURNING current
`

func (q *Queries) IncrementSequenceCounter(ctx context.Context, db DBTX, key string) (int64, error) {
	row := db.QueryRow(ctx, incrementSequenceCounter, key)
	var current int64
	err := row.Scan(&current)
	return current, err
}
