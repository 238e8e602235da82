package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/script"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitError},
		{"explicit", &ExitError{Code: ExitUsage, Err: errors.New("bad flags")}, ExitUsage},
		{"missing column", fmt.Errorf("step 2: %w", board.ErrColumnNotFound), ExitNotFound},
		{"missing file", &os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}, ExitNotFound},
		{"bad step", script.ErrInvalidStep, ExitDataErr},
		{"unknown op", script.ErrUnknownOp, ExitDataErr},
		{"expectation", script.ErrExpectationFailed, ExitValidation},
		{"config", config.ErrInvalidConfig, ExitValidation},
		{"locked", drag.ErrLocked, ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Unwraps(t *testing.T) {
	err := &ExitError{Code: ExitValidation, Err: script.ErrExpectationFailed}
	assert.ErrorIs(t, err, script.ErrExpectationFailed)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(err))
}
