// Package errors carries HTTP-aware errors from delivery handlers to the response writer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error with the status code it should be reported under.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any
}

// NewHTTPError creates an HTTPError for status with a client-facing message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WithDetails returns a copy of e carrying details in the response errors field.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError reports whether err wraps an HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
