package viegrand

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("viegrand: resource not found")
	ErrMissingBaseURL = errors.New("viegrand: base URL is required")

	ErrResponseTooLarge = errors.New("viegrand: response body exceeds 1 MiB")
)

// APIError is returned when the backend answers with a non-2xx status or
// with success=false in the envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("viegrand API error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}

// transportError marks a failure before any response was received.
type transportError struct {
	op  string
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("failed to call viegrand %s: %v", e.op, e.err)
}

func (e *transportError) Unwrap() error {
	return e.err
}
