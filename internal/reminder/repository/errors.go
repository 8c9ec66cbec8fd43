package repository

import "errors"

var (
	ErrNotFound = errors.New("reminder not found")
	ErrUpstream = errors.New("reminder backend unavailable")
)

// RejectedError is returned when the backend refuses a request with a
// message meant for the user.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "backend rejected reminder: " + e.Message
}
