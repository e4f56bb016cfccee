//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hecho-core/internal/infra/worker"
	"hecho-core/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context, orgID, jobID string) error

func (f runnerFunc) Run(ctx context.Context, orgID, jobID string) error {
	return f(ctx, orgID, jobID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func workerCfg(concurrency int, timeout time.Duration) config.WorkerConfig {
	return config.WorkerConfig{DispatchConcurrency: concurrency, DispatchTimeout: timeout}
}

func shutdown(t *testing.T, d *worker.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))
}

func TestDispatcher_DetachedFromCaller(t *testing.T) {
	done := make(chan error, 1)
	runner := runnerFunc(func(ctx context.Context, _, _ string) error {
		time.Sleep(20 * time.Millisecond)
		done <- ctx.Err()
		return nil
	})
	d := worker.NewDispatcher(runner, workerCfg(1, time.Second), nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, d.Dispatch(ctx, "org-1", "job-1"))
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "request cancellation must not reach the worker call")
	case <-time.After(time.Second):
		t.Fatal("runner never called")
	}
	shutdown(t, d)
}

func TestDispatcher_FailureHook(t *testing.T) {
	type call struct {
		orgID, jobID string
		err          error
	}
	calls := make(chan call, 1)
	workerErr := &worker.DispatchError{StatusCode: 500, Body: "boom"}

	runner := runnerFunc(func(context.Context, string, string) error { return workerErr })
	hook := func(_ context.Context, orgID, jobID string, err error) {
		calls <- call{orgID, jobID, err}
	}
	d := worker.NewDispatcher(runner, workerCfg(2, time.Second), hook, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	shutdown(t, d)

	select {
	case c := <-calls:
		assert.Equal(t, "org-1", c.orgID)
		assert.Equal(t, "job-1", c.jobID)
		var de *worker.DispatchError
		require.True(t, errors.As(c.err, &de))
		assert.Equal(t, 500, de.StatusCode)
	default:
		t.Fatal("failure hook not called")
	}
}

func TestDispatcher_SuccessSkipsHook(t *testing.T) {
	var hooked atomic.Bool
	runner := runnerFunc(func(context.Context, string, string) error { return nil })
	d := worker.NewDispatcher(runner, workerCfg(1, time.Second), func(context.Context, string, string, error) {
		hooked.Store(true)
	}, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	shutdown(t, d)
	assert.False(t, hooked.Load())
}

func TestDispatcher_RedispatchSkipsHook(t *testing.T) {
	var hooked atomic.Int32
	var calls atomic.Int32
	runner := runnerFunc(func(context.Context, string, string) error {
		calls.Add(1)
		return &worker.DispatchError{StatusCode: 503, Body: "down"}
	})
	d := worker.NewDispatcher(runner, workerCfg(1, time.Second), func(context.Context, string, string, error) {
		hooked.Add(1)
	}, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	for i := 0; i < 3; i++ {
		want := int32(i + 2)
		require.Eventually(t, func() bool {
			return d.Redispatch(context.Background(), "org-1", "job-1")
		}, time.Second, 5*time.Millisecond)
		require.Eventually(t, func() bool { return calls.Load() == want }, time.Second, 5*time.Millisecond)
	}
	shutdown(t, d)

	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, int32(1), hooked.Load())
}

func TestDispatcher_TimeoutBoundsTheCall(t *testing.T) {
	var got atomic.Value
	runner := runnerFunc(func(ctx context.Context, _, _ string) error {
		<-ctx.Done()
		return ctx.Err()
	})
	hook := func(_ context.Context, _, _ string, err error) { got.Store(err) }
	d := worker.NewDispatcher(runner, workerCfg(1, 30*time.Millisecond), hook, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	shutdown(t, d)

	err, _ := got.Load().(error)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatcher_SaturationRejects(t *testing.T) {
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	runner := runnerFunc(func(context.Context, string, string) error {
		started.Done()
		<-release
		return nil
	})
	d := worker.NewDispatcher(runner, workerCfg(2, time.Second), nil, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	require.True(t, d.Dispatch(context.Background(), "org-1", "job-2"))
	started.Wait()

	assert.False(t, d.Dispatch(context.Background(), "org-1", "job-3"))

	close(release)
	shutdown(t, d)
}

func TestDispatcher_PanicIsContained(t *testing.T) {
	hookErr := make(chan error, 1)
	runner := runnerFunc(func(context.Context, string, string) error { panic("nil map") })
	d := worker.NewDispatcher(runner, workerCfg(1, time.Second), func(_ context.Context, _, _ string, err error) {
		hookErr <- err
	}, discardLogger())

	require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
	shutdown(t, d)

	select {
	case err := <-hookErr:
		assert.Contains(t, err.Error(), "panicked")
	default:
		t.Fatal("failure hook not called")
	}
}

func TestDispatcher_Shutdown(t *testing.T) {
	t.Run("drains in-flight calls then rejects", func(t *testing.T) {
		var finished atomic.Bool
		runner := runnerFunc(func(context.Context, string, string) error {
			time.Sleep(30 * time.Millisecond)
			finished.Store(true)
			return nil
		})
		d := worker.NewDispatcher(runner, workerCfg(1, time.Second), nil, discardLogger())

		require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))
		shutdown(t, d)

		assert.True(t, finished.Load())
		assert.False(t, d.Dispatch(context.Background(), "org-1", "job-2"))
	})

	t.Run("gives up when ctx expires", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		runner := runnerFunc(func(context.Context, string, string) error {
			<-release
			return nil
		})
		d := worker.NewDispatcher(runner, workerCfg(1, time.Minute), nil, discardLogger())
		require.True(t, d.Dispatch(context.Background(), "org-1", "job-1"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
	})
}
