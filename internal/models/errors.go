package models

import (
	"errors"
	"fmt"
)

// Common error types
var (
	ErrNotFound         = errors.New("resource not found")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// ErrInvalidField creates an error for a lookup on a non-enumerable field
func ErrInvalidField(message string) error {
	return &AppError{
		Code:    "INVALID_FIELD",
		Message: message,
	}
}

// ErrStoreFailure wraps a store-level failure so handlers can map it to a
// server-side error without exposing driver details
func ErrStoreFailure(err error) error {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: "record store unavailable",
		Err:     errors.Join(ErrStoreUnavailable, err),
	}
}
