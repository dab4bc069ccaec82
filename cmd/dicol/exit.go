package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// Process exit codes. Exit 1 is reserved for a missing argument or an
// unreadable input file; every other failure exits 2.
const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

// exitError attaches a process exit code to a command error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// usageError marks err as an argument or input file failure.
func usageError(err error) error {
	if err == nil {
		return nil
	}

	return &exitError{code: exitUsage, err: err}
}

// exitCode maps the error returned by Execute to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitFailure
}

// exactArgs is cobra.ExactArgs with its error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	validate := cobra.ExactArgs(n)

	return func(cmd *cobra.Command, args []string) error {
		return usageError(validate(cmd, args))
	}
}
