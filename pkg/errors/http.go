package errors

import "fmt"

// HTTPError is an error that knows which HTTP status it should surface as.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrTooManyRequests     = NewHTTPError(429, "too many requests")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
	ErrBadGateway          = NewHTTPError(502, "upstream service unavailable")
)
