package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is, or is a *ValidationError.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrInternal  = errors.New("internal failure")

	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrAnnotationNotFound = fmt.Errorf("annotation %w", ErrNotFound)

	// ErrStorageUnavailable is an internal failure: image storage is not configured.
	ErrStorageUnavailable = fmt.Errorf("image storage not available: %w", ErrInternal)
)

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AccessError is returned when the acting identity does not own the resource.
type AccessError struct {
	Action   string
	Resource string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("not authorized to %s this %s", e.Action, e.Resource)
}

func (e *AccessError) Is(target error) bool {
	return target == ErrForbidden
}

type internalError struct {
	op  string
	err error
}

func (e *internalError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.op, e.err)
}

func (e *internalError) Unwrap() []error {
	return []error{ErrInternal, e.err}
}

func internal(op string, err error) error {
	return &internalError{op: op, err: err}
}
