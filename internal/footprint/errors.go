package footprint

import (
	"fmt"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for footprint calculations. Compare with errors.Is.
var (
	// ErrInvalidInput indicates a consumption quantity or factor that is
	// negative, NaN or infinite.
	ErrInvalidInput = constError("invalid input")

	// ErrMissingCustomFactor indicates the Custom preset was selected without
	// all four factor overrides.
	ErrMissingCustomFactor = constError("missing custom factor")

	// ErrUnknownPreset indicates an unrecognized preset name or kind.
	ErrUnknownPreset = constError("unknown preset")

	// ErrInvalidUnit indicates an unrecognized display unit.
	ErrInvalidUnit = constError("invalid unit")
)

// InputError reports which field carried an invalid value.
type InputError struct {
	Field string
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s must be a finite, non-negative number (got %v)", ErrInvalidInput, e.Field, e.Value)
}

// Unwrap returns ErrInvalidInput so callers can match with errors.Is.
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// MissingFactorError lists the custom factors that were not supplied.
type MissingFactorError struct {
	Fields []string
}

func (e *MissingFactorError) Error() string {
	if len(e.Fields) == 0 {
		return string(ErrMissingCustomFactor)
	}
	return fmt.Sprintf("%s: %s required for the custom preset",
		ErrMissingCustomFactor, strings.Join(e.Fields, ", "))
}

// Unwrap returns ErrMissingCustomFactor so callers can match with errors.Is.
func (e *MissingFactorError) Unwrap() error { return ErrMissingCustomFactor }
