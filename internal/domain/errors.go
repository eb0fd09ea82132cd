package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a row, document or index does not exist
type ErrNotFound struct {
	Entity string
	ID     string
	// Message replaces the default text when set
	Message string
}

func (e *ErrNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// PermissionError represents insufficient permissions for an operation
type PermissionError struct {
	Message string `json:"message"`
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermissionError(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// ErrInsufficientPermissions is the default insufficient permissions error
var ErrInsufficientPermissions = NewPermissionError("You do not have permission to perform this action")

// ErrConflict is returned on unique violations and on schema changes of tables holding data
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrTableInUse is returned when a table's index family already holds documents
var ErrTableInUse = &ErrConflict{
	Message: "Table has started to use, if need to modify, please delete and re-create",
}

// ErrUnauthorized is returned when the caller is not authenticated
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrRateLimited is returned when an action is attempted too often
type ErrRateLimited struct {
	Message string
	// RetryAfter is the number of seconds until the action is allowed again
	RetryAfter int
}

func (e *ErrRateLimited) Error() string {
	return e.Message
}

// ErrUpstream wraps failures of external collaborators such as the SMTP relay
type ErrUpstream struct {
	Message string
	Err     error
}

func (e *ErrUpstream) Error() string {
	return e.Message
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}

// ErrIndexNotFound is returned by search engines when an index is missing
var ErrIndexNotFound = errors.New("index not found")
