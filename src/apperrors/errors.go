// Package apperrors defines the error taxonomy shared by all services:
// business-rule violations, permission failures and missing records. Services
// always fail loudly with one of these; controllers translate them to
// transport-level responses.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError is a structural or business-rule violation (missing required
// destination field, re-validating a validated movement, ...).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AccessError means the actor lacks the role required for the attempted
// transition. Distinct from a validation failure.
type AccessError struct {
	Reason string
}

func (e *AccessError) Error() string {
	return e.Reason
}

func NewAccessError(format string, args ...interface{}) *AccessError {
	return &AccessError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsAccess(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
