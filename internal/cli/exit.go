package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitInput    = 1
	ExitInternal = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// inputError wraps err so ExitCode reports ExitInput.
func inputError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitInput, Err: err}
}

// noArgs is cobra.NoArgs reported as an input error.
func noArgs(cmd *cobra.Command, args []string) error {
	return inputError(cobra.NoArgs(cmd, args))
}

// cobra returns unknown subcommands as a plain error from command lookup.
const unknownCommandPrefix = "unknown command "

// ExitCode maps an error returned by the root command to a process exit code.
// An *ExitError decides for itself; footprint input errors and cobra flag
// errors, including unknown subcommands, are user errors; everything else is internal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case strings.HasPrefix(err.Error(), unknownCommandPrefix):
		return ExitInput
	case errors.Is(err, footprint.ErrInvalidInput),
		errors.Is(err, footprint.ErrMissingCustomFactor),
		errors.Is(err, footprint.ErrUnknownPreset),
		errors.Is(err, footprint.ErrInvalidUnit):
		return ExitInput
	default:
		return ExitInternal
	}
}
