package shared

import (
	"context"
	"time"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/domain/notification"
	"hecho-core/internal/domain/user"
	"hecho-core/internal/infra/query"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Sequences() SequenceRepository
	Jobs() JobRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type CommandReads interface {
	UsersByRole(ctx context.Context, role user.Role) ([]user.Recipient, error)
}

type SequenceRepository interface {
	// Increment bumps the counter for key, creating it at 1, and returns the new value.
	Increment(ctx context.Context, tx query.DBTX, key string) (int64, error)
}

type JobRepository interface {
	Create(ctx context.Context, tx query.DBTX, j *job.Job) error
}

type NotificationRepository interface {
	// Create returns the creation time assigned by storage.
	Create(ctx context.Context, tx query.DBTX, n *notification.Notification) (time.Time, error)
}
