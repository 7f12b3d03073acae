package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrParse                = errors.New("parse failure")
	ErrUnrecognizedCategory = errors.New("unrecognized category")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("validation error")
)

// UnrecognizedCategoryError reports a part-of-speech label that has no
// canonical category. It is block-scoped: callers skip the block and continue.
type UnrecognizedCategoryError struct {
	Label string
}

func (e *UnrecognizedCategoryError) Error() string {
	return fmt.Sprintf("unrecognized category %q", e.Label)
}

func (e *UnrecognizedCategoryError) Unwrap() error { return ErrUnrecognizedCategory }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
