package commands

import (
	"context"
	"log/slog"
	"time"

	"hecho-core/internal/domain/sequence"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/shared"
)

type SequenceCommands interface {
	// Allocate issues the next number for a document type, e.g. "COT-000043".
	Allocate(ctx context.Context, t sequence.Type) (string, error)
	// NextTicketNumber issues the next ticket number of the current day, e.g. "TK-2025-11-30-007".
	NextTicketNumber(ctx context.Context) (string, error)
}

type sequenceCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewSequenceCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location, logger *slog.Logger) SequenceCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &sequenceCommandsImpl{
		uow:    uow,
		clock:  clk,
		loc:    loc,
		logger: logger,
	}
}

func (uc *sequenceCommandsImpl) Allocate(ctx context.Context, t sequence.Type) (string, error) {
	key, err := sequence.KeyFor(t, uc.clock.Now(), uc.loc)
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnknownSequenceType)
	}
	return uc.issue(ctx, key)
}

func (uc *sequenceCommandsImpl) NextTicketNumber(ctx context.Context) (string, error) {
	key, err := sequence.KeyFor(sequence.TypeTicket, uc.clock.Now(), uc.loc)
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnknownSequenceType)
	}
	return uc.issue(ctx, key)
}

// issue increments the counter and renders the value in the same transaction,
// so a number is only returned after its increment has committed.
func (uc *sequenceCommandsImpl) issue(ctx context.Context, key sequence.Key) (string, error) {
	var number string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Sequences().Increment(ctx, tx.DB(), key.String())
		if err != nil {
			return err
		}
		number, err = key.Render(n)
		return err
	})
	if err != nil {
		uc.logger.Error("sequence allocation failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return "", errs.Mark(errs.Wrapf(err, "allocate %s", key), errs.ErrSequenceUnavailable)
	}
	return number, nil
}
