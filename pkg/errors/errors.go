// Package errors defines the error taxonomy used across workspace-secrets.
package errors

import (
	"fmt"
)

// Error types
const (
	// ErrUnsatisfiedPrecondition is returned when no workspace namespace is
	// resolvable for the current actor. It is not retryable without an
	// external state change.
	ErrUnsatisfiedPrecondition = "unsatisfied_precondition"

	// ErrPersistenceFailure is returned when a credential secret could not be
	// persisted: either the provider URL is malformed or the object store
	// reported an infrastructure error.
	ErrPersistenceFailure = "persistence_failure"

	// ErrInfrastructure is returned when a Kubernetes operation fails.
	ErrInfrastructure = "infrastructure"

	// ErrNotFound is returned when a user record is not found.
	ErrNotFound = "not_found"

	// ErrServer is returned when the user or preference service fails.
	ErrServer = "server"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsatisfiedPreconditionError creates a new unsatisfied precondition error
func NewUnsatisfiedPreconditionError(message string, cause error) *Error {
	return NewError(ErrUnsatisfiedPrecondition, message, cause)
}

// NewPersistenceFailureError creates a new persistence failure error
func NewPersistenceFailureError(message string, cause error) *Error {
	return NewError(ErrPersistenceFailure, message, cause)
}

// NewInfrastructureError creates a new infrastructure error
func NewInfrastructureError(message string, cause error) *Error {
	return NewError(ErrInfrastructure, message, cause)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, cause error) *Error {
	return NewError(ErrNotFound, message, cause)
}

// NewServerError creates a new server error
func NewServerError(message string, cause error) *Error {
	return NewError(ErrServer, message, cause)
}

// IsUnsatisfiedPrecondition checks if the error is an unsatisfied precondition error
func IsUnsatisfiedPrecondition(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrUnsatisfiedPrecondition
}

// IsPersistenceFailure checks if the error is a persistence failure error
func IsPersistenceFailure(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrPersistenceFailure
}

// IsInfrastructure checks if the error is an infrastructure error
func IsInfrastructure(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrInfrastructure
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrNotFound
}

// IsServer checks if the error is a server error
func IsServer(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrServer
}
