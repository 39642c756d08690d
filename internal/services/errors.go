package services

import (
	"errors"
	"fmt"

	"brew_co/internal/repository"
	"brew_co/internal/statemachine"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports a caller-supplied value that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err was caused by the caller rather than by
// the backend. Missing records count as caller errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, statemachine.ErrInvalidTransition)
}
