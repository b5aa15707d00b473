// Package apperror provides structured error handling for the reporting API.
// All failures surfaced to callers must use AppError so the HTTP layer can map
// them to status codes in one place.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal          = "INTERNAL_ERROR"
	CodeConfiguration     = "CONFIGURATION_ERROR"
	CodeRemoteUnavailable = "REMOTE_UNAVAILABLE"

	// Validation errors (400)
	CodeInvalidInput = "INVALID_INPUT"

	// Authorization errors (403)
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)

// AppError is the standard error type for the service.
// It implements the error interface and carries the HTTP status the failure
// should be reported with.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed to clients)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewInvalidInput creates a bad request parameter error (400)
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewConfiguration creates a missing/invalid configuration error (500)
func NewConfiguration(message string) *AppError {
	return &AppError{
		Code:       CodeConfiguration,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewAuthenticationFailed creates an error for rejected remote credentials (403)
func NewAuthenticationFailed(message string) *AppError {
	return &AppError{
		Code:       CodeAuthenticationFailed,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewRemoteUnavailable creates an error for a transport failure or a fault
// raised by the remote ledger (500). The message must carry the remote detail:
// it is often the only diagnostic signal for bad field names or permissions.
func NewRemoteUnavailable(message string) *AppError {
	return &AppError{
		Code:       CodeRemoteUnavailable,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
