//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, orgID, role string) string {
	t.Helper()

	userID := "user-" + uuid.NewString()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, org_id, email, role, is_active) VALUES ($1, $2, $3, $4, true)",
		userID, orgID, userID+"@example.com", role)
	require.NoError(t, err)
	return userID
}

func CreateInactiveUser(t *testing.T, db DBLike, orgID, role string) string {
	t.Helper()

	userID := "user-" + uuid.NewString()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, org_id, email, role, is_active) VALUES ($1, $2, $3, $4, false)",
		userID, orgID, userID+"@example.com", role)
	require.NoError(t, err)
	return userID
}

func SeedCounter(t *testing.T, db DBLike, key string, current int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO sequence_counters (key, current) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET current = EXCLUDED.current",
		key, current)
	require.NoError(t, err)
}

func CounterValue(t *testing.T, db DBLike, key string) int64 {
	t.Helper()

	var current int64
	err := db.QueryRow(context.Background(), "SELECT current FROM sequence_counters WHERE key = $1", key).Scan(&current)
	require.NoError(t, err)
	return current
}

func CountNotifications(t *testing.T, db DBLike, userID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notifications WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
