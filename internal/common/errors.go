package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")

	// ErrDuplicateSubmission is returned when a (test, student email) pair
	// already has a submission and the caller is not a teacher override.
	ErrDuplicateSubmission = errors.New("submission already exists for this test and student")

	// ErrLinkExpired / ErrLinkInvalid cover the magic-link validation cases.
	ErrLinkExpired = errors.New("magic link has expired")
	ErrLinkInvalid = errors.New("invalid magic link")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError tags a cause with one of the sentinel errors above so
// callers can branch with errors.Is while keeping the full chain.
func WrapError(sentinel error, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", message, sentinel, cause)
}
