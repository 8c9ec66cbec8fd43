package reminder

import "errors"

// Domain-specific errors for the reminder package.
var (
	ErrReminderInPast = errors.New("reminder time is in the past")
	ErrEmptyEmail     = errors.New("email is required")
	ErrInvalidID      = errors.New("invalid reminder id")
)
