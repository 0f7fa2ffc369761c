package errors

import (
	"net/http"

	"boutique/internal/errors"
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

// Predefined error types.
//
// Note: "not authenticated" is deliberately absent. An anonymous session is
// not an error for the cart surface; it routes to the local store silently.
var (
	// Cart-related errors
	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"That item is no longer in your cart",
		"",
	)

	// ErrCartItemNotSynced covers the inconsistent state where a line has no
	// server-assigned id while the server cart is authoritative. The
	// operation is a no-op and the cart is left untouched.
	ErrCartItemNotSynced = NewBaseError(
		http.StatusConflict,
		"CART_ITEM_NOT_SYNCED",
		"This item has not been confirmed by the server yet, please try again",
		"",
	)

	ErrRemoteCartFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_CART_FAILED",
		"The cart service could not complete your request",
		"",
	)

	ErrRemoteCartUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_CART_UNAVAILABLE",
		"The cart service is temporarily unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// Session-related errors
	ErrSessionMissing = NewBaseError(
		http.StatusBadRequest,
		"SESSION_MISSING",
		"No session is associated with this request",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// RemoteCartError wraps a gateway failure message into an AppError while
// keeping the server's human-readable message for the UI.
func RemoteCartError(message string) AppError {
	if message == "" {
		return ErrRemoteCartFailed
	}

	return NewBaseError(
		http.StatusBadGateway,
		"REMOTE_CART_FAILED",
		message,
		"",
	)
}
