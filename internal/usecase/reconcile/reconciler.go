// Package reconcile re-dispatches jobs that were persisted but never reached
// the worker. Job records are only read here.
package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hecho-core/internal/pkg/config"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/queries"

	"github.com/robfig/cron/v3"
)

// Redispatcher hands an already persisted job to the worker again without
// raising dispatch-failure notifications.
type Redispatcher interface {
	Redispatch(ctx context.Context, orgID, jobID string) bool
}

type Reconciler struct {
	jobs       queries.JobQueries
	dispatcher Redispatcher
	cfg        config.ReconcilerConfig
	logger     *slog.Logger

	cron    *cron.Cron
	running sync.Mutex
}

func NewReconciler(jobs queries.JobQueries, dispatcher Redispatcher, cfg config.ReconcilerConfig, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		jobs:       jobs,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		cron:       cron.New(),
	}
}

func ValidateSchedule(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}

// Start registers the sweep on the configured schedule.
func (r *Reconciler) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.Schedule, func() { r.RunOnce(context.Background()) }); err != nil {
		return errs.Wrapf(err, "invalid reconcile schedule %q", r.cfg.Schedule)
	}
	r.cron.Start()
	r.logger.Info("job reconciler started",
		slog.String("schedule", r.cfg.Schedule),
		slog.Duration("stale_after", r.cfg.StaleAfter))
	return nil
}

// Stop waits for a running sweep or ctx.
func (r *Reconciler) Stop(ctx context.Context) error {
	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs one sweep and returns how many jobs were handed to the
// dispatcher. Overlapping sweeps are skipped.
func (r *Reconciler) RunOnce(ctx context.Context) int {
	if !r.running.TryLock() {
		r.logger.Debug("reconcile sweep already running")
		return 0
	}
	defer r.running.Unlock()

	start := time.Now()
	stale, err := r.jobs.ListStaleQueued(ctx, r.cfg.StaleAfter, r.cfg.Batch)
	if err != nil {
		r.logger.Error("reconcile listing failed", slog.String("error", err.Error()))
		return 0
	}

	dispatched := 0
	for _, j := range stale {
		if r.dispatcher.Redispatch(ctx, j.OrgID, j.ID) {
			dispatched++
		}
	}

	if len(stale) > 0 {
		r.logger.Info("reconcile sweep finished",
			slog.Int("stale", len(stale)),
			slog.Int("dispatched", dispatched),
			slog.Duration("duration", time.Since(start)))
	}
	return dispatched
}
