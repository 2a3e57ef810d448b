package errors

import (
	"context"
	stderrors "errors"
	"net/http"
)

const (
	HttpInternalError = "internal_error"
	HttpNotFoundError = "not_found"
	HttpTimeoutError  = "request_timeout"
	HttpUnavailable   = "service_unavailable"
)

// ErrorResponse is the error response body for every failed request.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// StatusFor maps a data-source error to its HTTP status and error type.
// An expired request deadline is a 504; everything else is a 500.
func StatusFor(err error) (int, string) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, HttpTimeoutError
	}
	return http.StatusInternalServerError, HttpInternalError
}
