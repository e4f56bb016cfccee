package components

import (
	"context"
	"log/slog"
	"net/http"

	"hecho-core/internal/domain/user"
	"hecho-core/internal/infra/worker"
	"hecho-core/internal/pkg/config"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/commands"
	"hecho-core/internal/usecase/queries"
	"hecho-core/internal/usecase/reconcile"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewWorkerClient,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.JobDispatcher)),
			fx.As(new(reconcile.Redispatcher)),
		),
	),
	fx.Invoke(RegisterReconciler),
)

func NewWorkerClient(cfg config.Config) *worker.Client {
	return worker.NewClient(cfg.Worker, &http.Client{Timeout: cfg.Worker.DispatchTimeout})
}

// NewDispatcher drains in-flight dispatches when the app stops.
func NewDispatcher(lc fx.Lifecycle, client *worker.Client, notifications commands.NotificationCommands, cfg config.Config, logger *slog.Logger) (*worker.Dispatcher, error) {
	var hook worker.FailureHook
	if cfg.Worker.FailureNotifyRole != "" {
		role, err := user.NewRole(cfg.Worker.FailureNotifyRole)
		if err != nil {
			return nil, errs.Wrapf(err, "WORKER_FAILURE_NOTIFY_ROLE %q", cfg.Worker.FailureNotifyRole)
		}
		hook = commands.DispatchFailureNotifier(notifications, role)
	}

	d := worker.NewDispatcher(client, cfg.Worker, hook, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("draining job dispatcher")
			return d.Shutdown(ctx)
		},
	})
	return d, nil
}

func RegisterReconciler(lc fx.Lifecycle, cfg config.Config, jobs queries.JobQueries, dispatcher reconcile.Redispatcher, logger *slog.Logger) error {
	if !cfg.Reconciler.Enabled {
		return nil
	}
	if err := reconcile.ValidateSchedule(cfg.Reconciler.Schedule); err != nil {
		return errs.Wrapf(err, "JOB_RECONCILE_SCHEDULE %q", cfg.Reconciler.Schedule)
	}

	r := reconcile.NewReconciler(jobs, dispatcher, cfg.Reconciler, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return r.Start()
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
	return nil
}
