package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// EntityNotFoundError is returned when no record of Entity exists under Key.
// It unwraps to ErrResourceNotFound.
type EntityNotFoundError struct {
	Entity string
	Key    any
}

// NewEntityNotFoundError creates an EntityNotFoundError for the given entity name and key
func NewEntityNotFoundError(entity string, key any) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, Key: key}
}

// Error implements error interface
func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.Key)
}

// Unwrap implements errors.Unwrap interface
func (e *EntityNotFoundError) Unwrap() error {
	return ErrResourceNotFound
}

// NewValidationError wraps ErrValidationFailed with a caller-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
