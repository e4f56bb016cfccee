package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"hecho-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// Migrate applies the embedded migrations in file name order, each in its own
// transaction. Already applied files are skipped.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		if err := applyMigration(ctx, pool, name); err != nil {
			return err
		}
	}
	return nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, name string) error {
	body, err := migrationFiles.ReadFile(name)
	if err != nil {
		return errs.Wrapf(err, "failed to read migration %s", name)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin migration transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var applied bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&applied); err != nil {
		return errs.Wrapf(err, "failed to check migration %s", name)
	}
	if applied {
		return nil
	}

	if _, err := tx.Exec(ctx, string(body)); err != nil {
		return errs.Wrapf(err, "failed to apply migration %s", name)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
		return errs.Wrapf(err, "failed to record migration %s", name)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrapf(err, "failed to commit migration %s", name)
	}

	slog.Info("applied migration", "name", name)
	return nil
}
