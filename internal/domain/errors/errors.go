package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping code and status
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Activation-related errors
	ErrInvalidDeviceID = NewBaseError(
		http.StatusBadRequest,
		"invalid_device_id",
		"device id must be 12 hexadecimal digits",
		"",
	)

	ErrInvalidCodeFormat = NewBaseError(
		http.StatusBadRequest,
		"invalid_code_format",
		"activation code must be 6 digits",
		"",
	)

	ErrCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"code_not_found",
		"activation code not found or expired",
		"",
	)

	ErrAlreadyConfirmed = NewBaseError(
		http.StatusConflict,
		"already_confirmed",
		"activation code was already confirmed",
		"",
	)

	ErrDeviceAlreadyBound = NewBaseError(
		http.StatusConflict,
		"device_already_bound",
		"device is already activated by another user",
		"",
	)

	ErrActivationNotFound = NewBaseError(
		http.StatusNotFound,
		"activation_not_found",
		"no pending activation for this device",
		"",
	)

	ErrInvalidChallenge = NewBaseError(
		http.StatusUnauthorized,
		"invalid_challenge",
		"challenge does not match",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"device not found",
		"",
	)

	ErrDeviceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"device_already_exists",
		"device is already registered",
		"",
	)

	// Instance-related errors
	ErrInstanceNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"instance not found",
		"",
	)

	ErrNoPortsAvailable = NewBaseError(
		http.StatusConflict,
		"no_ports_available",
		"no free ports left in the configured range",
		"",
	)

	ErrDeployFailed = NewBaseError(
		http.StatusInternalServerError,
		"deploy_failed",
		"instance deployment failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"validation_failed",
		"request validation failed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"invalid_credentials",
		"invalid or expired token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"forbidden",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "internal_error"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
