package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrInvalidLink is matched by every InvalidLinkError
	ErrInvalidLink = errors.New("invalid link")
)

// ValidationError is returned when a required input is missing or malformed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError is returned when a referenced entity must exist but does not
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidLinkError is returned when a token resolves to no link or to a link
// that cannot serve the requested operation
type InvalidLinkError struct {
	Token  string
	Reason string
}

func (e *InvalidLinkError) Error() string {
	return fmt.Sprintf("invalid link token %q: %s", e.Token, e.Reason)
}

func (e *InvalidLinkError) Is(target error) bool {
	return target == ErrInvalidLink
}

// NewInvalidLinkError creates an InvalidLinkError
func NewInvalidLinkError(token, reason string) error {
	return &InvalidLinkError{Token: token, Reason: reason}
}
