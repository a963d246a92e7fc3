package cmd

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tally/internal/models"
)

// Exit codes for the tally process.
// These follow Unix conventions so scripts around `tally dump` and
// `tally report` can tell failures apart.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage read or write failures and anything not listed below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, or a config value that fails validation.
	ExitUsage = 2

	// ExitNotFound indicates a requested epic or story was not found.
	ExitNotFound = 3

	// ExitDataErr indicates the stored document is malformed.
	ExitDataErr = 4

	// ExitCanceled indicates the session was interrupted (128 + SIGINT).
	ExitCanceled = 130
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, errInvalidConfig):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrParse):
		return ExitDataErr
	default:
		return ExitError
	}
}
