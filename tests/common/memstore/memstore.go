//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions are fully
// serialized and roll back every change when fn returns an error.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/domain/notification"
	"hecho-core/internal/domain/user"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/usecase/shared"
)

type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	counters      map[string]int64
	jobs          map[string]*job.Job
	notifications []*notification.Notification
	users         []user.Recipient

	incrementErr    error
	jobCreateErr    error
	usersByRoleErr  error
	notificationErr map[string]error
	txCount         int
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:           clk,
		counters:        map[string]int64{},
		jobs:            map[string]*job.Job{},
		notificationErr: map[string]error{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	s.txCount++

	counters := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		counters[k] = v
	}
	jobs := make(map[string]*job.Job, len(s.jobs))
	for k, v := range s.jobs {
		jobs[k] = v
	}
	notifications := append([]*notification.Notification(nil), s.notifications...)

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.counters = counters
		s.jobs = jobs
		s.notifications = notifications
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// ---- seeding and fault injection ----

func (s *Store) SeedCounter(key string, current int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] = current
}

func (s *Store) Counter(key string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.counters[key]
	return v, ok
}

func (s *Store) AddUser(r user.Recipient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, r)
}

func (s *Store) SetIncrementError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incrementErr = err
}

func (s *Store) SetJobCreateError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobCreateErr = err
}

func (s *Store) SetUsersByRoleError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByRoleErr = err
}

func (s *Store) FailNotificationsFor(userID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationErr[userID] = err
}

func (s *Store) Jobs() []*job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt().Before(out[k].CreatedAt()) })
	return out
}

func (s *Store) Job(id string) (*job.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	return j, ok
}

func (s *Store) Notifications() []*notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*notification.Notification(nil), s.notifications...)
}

func (s *Store) NotificationsFor(userID string) []*notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*notification.Notification
	for _, n := range s.notifications {
		if n.UserID() == userID {
			out = append(out, n)
		}
	}
	return out
}

// TxCount is the number of transactions started so far.
func (s *Store) TxCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

// ---- transaction ----

type memTx struct {
	s *Store
}

func (t *memTx) Sequences() shared.SequenceRepository         { return sequences{s: t.s} }
func (t *memTx) Jobs() shared.JobRepository                   { return jobs{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return notifications{s: t.s} }
func (t *memTx) DB() query.DBTX                               { return nil }

// Repositories below run with s.mu held by Within.

type sequences struct{ s *Store }

func (r sequences) Increment(_ context.Context, _ query.DBTX, key string) (int64, error) {
	if r.s.incrementErr != nil {
		return 0, r.s.incrementErr
	}
	r.s.counters[key]++
	return r.s.counters[key], nil
}

type jobs struct{ s *Store }

func (r jobs) Create(_ context.Context, _ query.DBTX, j *job.Job) error {
	if r.s.jobCreateErr != nil {
		return r.s.jobCreateErr
	}
	r.s.jobs[j.ID()] = j
	return nil
}

type notifications struct{ s *Store }

func (r notifications) Create(_ context.Context, _ query.DBTX, n *notification.Notification) (time.Time, error) {
	if err := r.s.notificationErr[n.UserID()]; err != nil {
		return time.Time{}, err
	}
	r.s.notifications = append(r.s.notifications, n)
	return r.s.clock.Now(), nil
}

type reads struct {
	s    *Store
	lock bool
}

func (r *reads) UsersByRole(_ context.Context, role user.Role) ([]user.Recipient, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if r.s.usersByRoleErr != nil {
		return nil, r.s.usersByRoleErr
	}
	var out []user.Recipient
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
