package board

import "errors"

// Board errors
var (
	// ErrColumnNotFound is returned when a card is created for a column that does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvariantViolation marks a snapshot that breaks the board's data-model rules
	ErrInvariantViolation = errors.New("board invariant violated")
)
