package commands

import (
	"context"
	"errors"
	"log/slog"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/shared"
)

// JobDispatcher hands a persisted job to the worker in the background.
// Dispatch must not block on the worker; it reports whether the job was accepted
// for dispatch, not whether the worker took it.
type JobDispatcher interface {
	Dispatch(ctx context.Context, orgID, jobID string) bool
}

type JobCommands interface {
	Submit(ctx context.Context, orgID string, data job.Data) (string, error)
}

type jobCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher JobDispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewJobCommands(uow shared.UnitOfWork, dispatcher JobDispatcher, clk clock.Clock, logger *slog.Logger) JobCommands {
	return &jobCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		logger:     logger,
	}
}

// Submit persists a QUEUED job and returns its id once the write has
// committed. The worker call happens afterwards and its outcome never reaches
// the caller.
func (uc *jobCommandsImpl) Submit(ctx context.Context, orgID string, data job.Data) (string, error) {
	j, err := job.NewJob(orgID, data, uc.clock.Now())
	if err != nil {
		if errors.Is(err, job.ErrInvalidType) {
			return "", errs.Mark(err, errs.ErrInvalidJobType)
		}
		return "", errs.Mark(err, errs.ErrInvalidJobInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().Create(ctx, tx.DB(), j)
	})
	if err != nil {
		uc.logger.Error("job create failed",
			slog.String("org_id", j.OrgID()),
			slog.String("type", string(j.Type())),
			slog.String("error", err.Error()))
		return "", errs.Mark(errs.Wrap(err, "create job"), errs.ErrStorageUnavailable)
	}

	if !uc.dispatcher.Dispatch(ctx, j.OrgID(), j.ID()) {
		uc.logger.Warn("job left queued for reconciliation",
			slog.String("job_id", j.ID()),
			slog.String("org_id", j.OrgID()))
	}

	return j.ID(), nil
}
