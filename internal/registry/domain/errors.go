package domain

import (
	"errors"
	"fmt"
)

// Sentinels; the typed errors below match them through errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// Entity names used in error messages.
const (
	EntityInstitution = "Institution"
	EntityUser        = "User"
	EntityProject     = "Project"
)

// Validation codes.
const (
	CodeRequired         = "REQUIRED"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeTooLong          = "TOO_LONG"
	CodeUnknownReference = "UNKNOWN_REFERENCE"
	CodeUnknownField     = "UNKNOWN_FIELD"
)

// NotFoundError reports a missing entity; Key is the id or identifier looked up.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound builds a NotFoundError for entity keyed by key.
func NewNotFound(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}

// ValidationError is a rejected write payload field.
type ValidationError struct {
	Field   string
	Code    string
	Message string
	cause   error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Field, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

func NewRequired(field string) *ValidationError {
	return &ValidationError{Field: field, Code: CodeRequired, Message: "field is required"}
}

func NewInvalidFormat(field, message string, cause error) *ValidationError {
	return &ValidationError{Field: field, Code: CodeInvalidFormat, Message: message, cause: cause}
}

func NewTooLong(field string, max int) *ValidationError {
	return &ValidationError{Field: field, Code: CodeTooLong, Message: fmt.Sprintf("at most %d characters", max)}
}

func NewUnknownReference(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Code: CodeUnknownReference, Message: "referenced entity does not exist", cause: cause}
}

func NewUnknownField(field string) *ValidationError {
	return &ValidationError{Field: field, Code: CodeUnknownField, Message: "field cannot be used for lookup"}
}

// ValidationErrors collects every rejected field of one payload.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ConflictError reports a write rejected by a uniqueness or restrict constraint.
type ConflictError struct {
	Entity string
	Reason string
	cause  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Unwrap() error {
	return e.cause
}

func NewConflict(entity, reason string, cause error) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason, cause: cause}
}
