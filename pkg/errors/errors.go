package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Error codes for every outcome the ledgers report
const (
	ErrValidation ErrorCode = iota + 1000
	ErrConflict
	ErrNotFound
	ErrInvalidCredentials
	ErrRateLimited
	ErrPersistence
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// Error constructors
func NewValidation(field, message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Field:   field,
		Message: fmt.Sprintf("%s %s", field, message),
	}
}

func NewConflict(resource, message string) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: fmt.Sprintf("%s %s", resource, message),
	}
}

func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewInvalidCredentials() *AppError {
	return &AppError{
		Code:    ErrInvalidCredentials,
		Message: "invalid credentials",
	}
}

func NewRateLimited(resource string) *AppError {
	return &AppError{
		Code:    ErrRateLimited,
		Message: fmt.Sprintf("too many %s attempts", resource),
	}
}

func NewPersistence(err error) *AppError {
	return &AppError{
		Code:    ErrPersistence,
		Message: "storage operation failed",
		Err:     err,
	}
}

// CodeOf extracts the error code from err, or 0 when err is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

func IsValidation(err error) bool         { return CodeOf(err) == ErrValidation }
func IsConflict(err error) bool           { return CodeOf(err) == ErrConflict }
func IsNotFound(err error) bool           { return CodeOf(err) == ErrNotFound }
func IsInvalidCredentials(err error) bool { return CodeOf(err) == ErrInvalidCredentials }
func IsRateLimited(err error) bool        { return CodeOf(err) == ErrRateLimited }
func IsPersistence(err error) bool        { return CodeOf(err) == ErrPersistence }
