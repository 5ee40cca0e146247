package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every domain package.
//
// Callers match the class with errors.Is and extract details with errors.As
// on the typed carriers below.
var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrPreconditionFailed   = errors.New("precondition failed")
	ErrOutOfOrderTransition = errors.New("out of order transition")
	ErrUniquenessConflict   = errors.New("uniqueness conflict")
	ErrNotFound             = errors.New("not found")
)

// ValidationError names the malformed or out-of-range field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LineItemError reports a spare part that cannot be aggregated.
type LineItemError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func (e *LineItemError) Error() string {
	return fmt.Sprintf("invalid line item #%d (%s): %s %s", e.Index+1, e.Name, e.Field, e.Reason)
}

func (e *LineItemError) Is(target error) bool { return target == ErrInvalidLineItem }

// PreconditionError is returned when a lifecycle guard does not hold.
type PreconditionError struct {
	Transition string
	Missing    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed for %s: %s", e.Transition, e.Missing)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPreconditionFailed }

// TransitionError is returned when a stage record is created without its
// prerequisite stage, behind the current stage, or after a terminal state.
type TransitionError struct {
	From JobStatus
	To   JobStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move job from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrOutOfOrderTransition }

// ConflictError reports a duplicate number or a lost optimistic-concurrency race.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s conflict", e.Field)
	}
	return fmt.Sprintf("%s %q already in use", e.Field, e.Value)
}

func (e *ConflictError) Is(target error) bool { return target == ErrUniquenessConflict }

// NotFoundError reports a referenced entity id that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
