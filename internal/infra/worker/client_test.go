//go:build unit

package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hecho-core/internal/infra/worker"
	"hecho-core/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	t.Run("posts ids with bearer token", func(t *testing.T) {
		var got struct {
			method, path, auth, contentType string
			body                            map[string]string
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.method, got.path = r.Method, r.URL.Path
			got.auth, got.contentType = r.Header.Get("Authorization"), r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got.body)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := worker.NewClient(config.WorkerConfig{BaseURL: srv.URL + "/", Token: "secret"}, srv.Client())
		require.NoError(t, c.Run(context.Background(), "org-1", "job-1"))

		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/v1/jobs/run", got.path)
		assert.Equal(t, "Bearer secret", got.auth)
		assert.Equal(t, "application/json", got.contentType)
		assert.Equal(t, map[string]string{"orgId": "org-1", "jobId": "job-1"}, got.body)
	})

	t.Run("non-2xx carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("  worker exploded \n"))
		}))
		defer srv.Close()

		err := worker.NewClient(config.WorkerConfig{BaseURL: srv.URL}, srv.Client()).Run(context.Background(), "org-1", "job-1")

		var de *worker.DispatchError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, http.StatusInternalServerError, de.StatusCode)
		assert.Equal(t, "worker exploded", de.Body)
		assert.Equal(t, "worker responded 500: worker exploded", de.Error())
	})

	t.Run("error body is truncated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(strings.Repeat("x", 10000)))
		}))
		defer srv.Close()

		err := worker.NewClient(config.WorkerConfig{BaseURL: srv.URL}, srv.Client()).Run(context.Background(), "org-1", "job-1")

		var de *worker.DispatchError
		require.True(t, errors.As(err, &de))
		assert.Len(t, de.Body, 4096)
	})

	t.Run("context deadline aborts the call", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := worker.NewClient(config.WorkerConfig{BaseURL: srv.URL}, srv.Client()).Run(ctx, "org-1", "job-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("unreachable worker", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		err := worker.NewClient(config.WorkerConfig{BaseURL: url}, nil).Run(context.Background(), "org-1", "job-1")
		require.Error(t, err)

		var de *worker.DispatchError
		assert.False(t, errors.As(err, &de))
	})
}
