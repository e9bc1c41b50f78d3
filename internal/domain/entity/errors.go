package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or missing search parameters
	ErrInvalidInput = errors.New("invalid input")
	// ErrRepositoryUnavailable marks a failed schedule store read
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	// ErrNotFound marks a missing catalog record
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a rejected request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
