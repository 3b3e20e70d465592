package records

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrOutOfRange matches every *OutOfRangeError.
	ErrOutOfRange = errors.New("position out of range")
	// ErrNotFound indicates an unknown record identifier.
	ErrNotFound = errors.New("record not found")
)

// ValidationError names the first draft field that failed validation.
type ValidationError struct {
	Schema string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s is required", e.Schema, e.Field)
	}
	return fmt.Sprintf("%s: %s %s", e.Schema, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// OutOfRangeError reports a position that does not exist in the current snapshot.
type OutOfRangeError struct {
	Position int
	Len      int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [0,%d)", e.Position, e.Len)
}

// Is lets errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
