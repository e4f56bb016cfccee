package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Sequence errors
	ErrSequenceUnavailable = errors.New("sequence unavailable")
	ErrUnknownSequenceType = errors.New("unknown sequence type")

	// Job errors
	ErrInvalidJobType     = errors.New("invalid job type")
	ErrInvalidJobInput    = errors.New("invalid job input")
	ErrJobNotFound        = errors.New("job not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Notification errors
	ErrInvalidNotification = errors.New("invalid notification")
	ErrRoleLookupFailed    = errors.New("role lookup failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
