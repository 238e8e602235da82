package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/ids"
	"github.com/thenoetrevino/swimlane/internal/script"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O errors, terminal failures, or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: A script file that does not exist, or a card created in a
	// column that does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Scripts that cannot be decoded or contain unknown ops.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Failed expectations, invalid configuration, or a drag on a
	// locked item.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error onto one of the exit codes above
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, board.ErrColumnNotFound), isNotExist(err):
		return ExitNotFound
	case errors.Is(err, script.ErrInvalidStep), errors.Is(err, script.ErrUnknownOp):
		return ExitDataErr
	case errors.Is(err, script.ErrExpectationFailed),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, ids.ErrUnknownStrategy),
		errors.Is(err, drag.ErrLocked):
		return ExitValidation
	default:
		return ExitError
	}
}

// errorCode names an error for JSON output
func errorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_SCRIPT"
	case ExitValidation:
		return "VALIDATION_FAILED"
	case ExitUsage:
		return "USAGE"
	default:
		return "ERROR"
	}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
