package components

import (
	"hecho-core/internal/infra/query"
	"hecho-core/internal/infra/readstore"
	"hecho-core/internal/infra/uow"
	"hecho-core/internal/pkg/config"
	"hecho-core/internal/usecase/queries"
	"hecho-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Job
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.JobViewQueries)),
		),
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, q *query.Queries, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, cfg.Sequence.MaxRetries)
}
