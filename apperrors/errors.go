package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials deliberately does not say whether the email or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrMissingToken = errors.New("Refresh token is required")
	ErrInvalidToken = errors.New("Invalid or expired token")
)

// ForbiddenError is returned when an authenticated user lacks the admin
// role required by the operation.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// ValidationError carries field-keyed messages for malformed client input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return fmt.Sprintf("%s: %s", field, msg)
	}
	return "validation failed"
}

// NewValidation builds a single-field validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add appends a field error, allocating the map on first use.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// NotFoundError names the entity that was looked up and missed.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NewNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ConflictError signals a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
