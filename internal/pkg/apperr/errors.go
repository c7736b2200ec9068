// Package apperr defines the error kinds shared by the domain, application
// and transport layers. Callers classify errors with errors.Is against the
// sentinel values; the REST layer maps each kind to an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports a missing record
	ErrNotFound = errors.New("not found")
	// ErrValidation reports invalid input
	ErrValidation = errors.New("validation failed")
	// ErrConflict reports a duplicate or an invalid state transition
	ErrConflict = errors.New("conflict")
	// ErrForbidden reports an actor acting on something it does not own
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized reports missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientFunds reports a wallet debit larger than the balance
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidationError lists the offending fields and the rule each one broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("validation failed: [%s]", strings.Join(messages, " "))
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return wrap(ErrNotFound, format, args...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return wrap(ErrConflict, format, args...)
}

// Forbiddenf wraps ErrForbidden with a formatted message.
func Forbiddenf(format string, args ...interface{}) error {
	return wrap(ErrForbidden, format, args...)
}

// Invalidf wraps ErrValidation with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return wrap(ErrValidation, format, args...)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
