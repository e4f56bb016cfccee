package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hecho-core/internal/domain/notification"
	"hecho-core/internal/domain/user"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const defaultBroadcastConcurrency = 16

type NotificationCommands interface {
	// Send never fails the caller: the outcome, including any error, is in
	// the returned Delivery.
	Send(ctx context.Context, p notification.Payload) notification.Delivery
	// BroadcastToRole sends msg to every active holder of role and waits for
	// all sends. The error is non-nil only when the recipients could not be listed.
	BroadcastToRole(ctx context.Context, role user.Role, msg notification.Message) (notification.BroadcastReport, error)
}

type notificationCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	logger      *slog.Logger
	concurrency int
}

func NewNotificationCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) NotificationCommands {
	return &notificationCommandsImpl{
		uow:         uow,
		clock:       clk,
		logger:      logger,
		concurrency: defaultBroadcastConcurrency,
	}
}

func (uc *notificationCommandsImpl) Send(ctx context.Context, p notification.Payload) (d notification.Delivery) {
	d.UserID = p.UserID

	defer func() {
		if r := recover(); r != nil {
			d.NotificationID = ""
			d.Err = errs.Mark(errs.Newf("notification send panicked: %v", r), errs.ErrStorageUnavailable)
			uc.logger.Error("notification send panicked",
				slog.String("user_id", p.UserID),
				slog.String("panic", fmt.Sprint(r)))
		}
	}()

	n, err := notification.NewNotification(p, uc.clock.Now())
	if err != nil {
		uc.logger.Warn("notification rejected",
			slog.String("user_id", p.UserID),
			slog.String("error", err.Error()))
		d.Err = errs.Mark(err, errs.ErrInvalidNotification)
		return d
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Notifications().Create(ctx, tx.DB(), n)
		return err
	})
	if err != nil {
		uc.logger.Error("notification write failed",
			slog.String("user_id", n.UserID()),
			slog.String("error", err.Error()))
		d.Err = errs.Mark(errs.Wrap(err, "create notification"), errs.ErrStorageUnavailable)
		return d
	}

	d.NotificationID = n.ID()
	return d
}

func (uc *notificationCommandsImpl) BroadcastToRole(ctx context.Context, role user.Role, msg notification.Message) (notification.BroadcastReport, error) {
	report := notification.BroadcastReport{Role: role.String()}

	recipients, err := uc.uow.CommandReads().UsersByRole(ctx, role)
	if err != nil {
		uc.logger.Error("broadcast recipient lookup failed",
			slog.String("role", role.String()),
			slog.String("error", err.Error()))
		return report, errs.Mark(errs.Wrapf(err, "list users with role %s", role), errs.ErrRoleLookupFailed)
	}

	report.Targeted = len(recipients)
	report.Deliveries = make([]notification.Delivery, len(recipients))
	if len(recipients) == 0 {
		return report, nil
	}

	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, r := range recipients {
		g.Go(func() error {
			report.Deliveries[i] = uc.Send(ctx, msg.To(r.ID))
			return nil
		})
	}
	_ = g.Wait()

	if failed := report.Failed(); failed > 0 {
		uc.logger.Warn("broadcast partially failed",
			slog.String("role", role.String()),
			slog.Int("targeted", report.Targeted),
			slog.Int("failed", failed))
	}
	return report, nil
}

// DispatchFailureNotifier returns a hook that warns every holder of role
// about a job the worker did not accept. A nil hook is returned for an empty role.
func DispatchFailureNotifier(n NotificationCommands, role user.Role) func(ctx context.Context, orgID, jobID string, cause error) {
	if role == "" {
		return nil
	}
	return func(ctx context.Context, orgID, jobID string, cause error) {
		msg := notification.Message{
			Title: "Job dispatch failed",
			Body:  fmt.Sprintf("Job %s could not be handed to the worker: %v", jobID, cause),
			Type:  notification.TypeWarning,
			Metadata: map[string]any{
				"jobId": jobID,
				"orgId": orgID,
			},
		}
		_, _ = n.BroadcastToRole(ctx, role, msg)
	}
}
