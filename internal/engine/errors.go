package engine

import (
	"errors"
	"strings"
)

// ErrInvalidInput is the sentinel every engine validation failure unwraps to.
var ErrInvalidInput = errors.New("invalid engine input")

// FieldError names one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an input is rejected at the engine boundary.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
