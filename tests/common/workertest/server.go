//go:build unit || e2e

// Package workertest is a stand-in for the external job worker.
package workertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type Call struct {
	OrgID         string `json:"orgId"`
	JobID         string `json:"jobId"`
	Authorization string `json:"-"`
}

type Server struct {
	srv *httptest.Server

	mu     sync.Mutex
	status int
	body   string
	delay  time.Duration
	calls  []Call
	notify chan struct{}
}

// NewServer answers 202 to every run request until told otherwise.
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{status: http.StatusAccepted, notify: make(chan struct{}, 128)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) URL() string { return s.srv.URL }

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v1/jobs/run" {
		http.NotFound(w, r)
		return
	}
	var c Call
	_ = json.NewDecoder(r.Body).Decode(&c)
	c.Authorization = r.Header.Get("Authorization")

	s.mu.Lock()
	s.calls = append(s.calls, c)
	status, body, delay := s.status, s.body, s.delay
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Respond sets the answer for subsequent run requests.
func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

// Stall holds every subsequent run request for d before answering.
func (s *Server) Stall(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body, s.delay, s.calls = http.StatusAccepted, "", 0, nil
	for {
		select {
		case <-s.notify:
		default:
			return
		}
	}
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// WaitForCalls blocks until at least n run requests arrived or timeout passes.
func (s *Server) WaitForCalls(n int, timeout time.Duration) []Call {
	deadline := time.After(timeout)
	for {
		if calls := s.Calls(); len(calls) >= n {
			return calls
		}
		select {
		case <-s.notify:
		case <-deadline:
			return s.Calls()
		}
	}
}
