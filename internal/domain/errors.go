package domain

import (
	"errors"
	"strings"
)

// Domain errors returned by services and repositories. Handlers map
// these to HTTP statuses; anything else is treated as a server fault.
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// ValidationError reports the constraints violated by a request before
// it reaches storage.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from one or more
// violated constraints.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}
