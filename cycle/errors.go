package cycle

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure kind of the cycle calculation.
var ErrInvalidInput = errors.New("invalid input")

// InputError names the field that made a calculation fail.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field string, value float64, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}
