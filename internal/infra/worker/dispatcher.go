package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hecho-core/internal/pkg/config"
	"hecho-core/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

type Runner interface {
	Run(ctx context.Context, orgID, jobID string) error
}

// FailureHook is called after a submit-time dispatch fails. It runs on the
// dispatch goroutine.
type FailureHook func(ctx context.Context, orgID, jobID string, err error)

// Dispatcher runs worker calls in the background with bounded concurrency.
// Calls are detached from the submitting request: cancelling the request
// does not cancel the call, only the per-call timeout does.
type Dispatcher struct {
	runner    Runner
	timeout   time.Duration
	capacity  int64
	sem       *semaphore.Weighted
	onFailure FailureHook
	logger    *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(runner Runner, cfg config.WorkerConfig, onFailure FailureHook, logger *slog.Logger) *Dispatcher {
	concurrency := cfg.DispatchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	timeout := cfg.DispatchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		runner:    runner,
		timeout:   timeout,
		capacity:  int64(concurrency),
		sem:       semaphore.NewWeighted(int64(concurrency)),
		onFailure: onFailure,
		logger:    logger,
	}
}

// Dispatch never blocks. It returns false when the dispatcher is shut down
// or every slot is busy; the job then stays QUEUED.
func (d *Dispatcher) Dispatch(ctx context.Context, orgID, jobID string) bool {
	return d.dispatch(ctx, orgID, jobID, true)
}

// Redispatch is Dispatch without the failure hook. Sweeps retry the same
// job until the worker picks it up, so only the first failure notifies.
func (d *Dispatcher) Redispatch(ctx context.Context, orgID, jobID string) bool {
	return d.dispatch(ctx, orgID, jobID, false)
}

func (d *Dispatcher) dispatch(ctx context.Context, orgID, jobID string, notify bool) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("dispatch skipped, dispatcher stopped",
			slog.String("job_id", jobID),
			slog.String("org_id", orgID))
		return false
	}

	if !d.sem.TryAcquire(1) {
		d.logger.Warn("dispatch skipped, dispatcher saturated",
			slog.String("job_id", jobID),
			slog.String("org_id", orgID),
			slog.Int64("capacity", d.capacity))
		return false
	}

	d.wg.Add(1)
	base := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		d.run(base, orgID, jobID, notify)
	}()
	return true
}

func (d *Dispatcher) run(base context.Context, orgID, jobID string, notify bool) {
	start := time.Now()
	err := d.call(base, orgID, jobID)
	if err == nil {
		d.logger.Info("job dispatched",
			slog.String("job_id", jobID),
			slog.String("org_id", orgID),
			slog.Duration("duration", time.Since(start)))
		return
	}

	attrs := []any{
		slog.String("job_id", jobID),
		slog.String("org_id", orgID),
		slog.String("error", err.Error()),
	}
	var de *DispatchError
	if errors.As(err, &de) {
		attrs = append(attrs, slog.Int("status_code", de.StatusCode))
	}
	d.logger.Error("job dispatch failed", attrs...)

	if notify && d.onFailure != nil {
		d.notify(base, orgID, jobID, err)
	}
}

func (d *Dispatcher) call(base context.Context, orgID, jobID string) (err error) {
	ctx, cancel := context.WithTimeout(base, d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("worker call panicked: %v", r)
		}
	}()
	return d.runner.Run(ctx, orgID, jobID)
}

func (d *Dispatcher) notify(base context.Context, orgID, jobID string, cause error) {
	ctx, cancel := context.WithTimeout(base, d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch failure hook panicked",
				slog.String("job_id", jobID),
				slog.String("panic", fmt.Sprint(r)))
		}
	}()
	d.onFailure(ctx, orgID, jobID, cause)
}

// Shutdown stops accepting dispatches and waits for in-flight ones or ctx.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
