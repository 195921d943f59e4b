package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
// Err, when set, is the underlying cause and is exposed to clients as the
// "details" field of 500 responses.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Details returns the underlying error text, or "" when there is none.
func (e *HTTPError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrNotFound     = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	ErrInternal     = func(msg string, err error) *HTTPError {
		return &HTTPError{Code: http.StatusInternalServerError, Message: msg, Err: err}
	}
)
