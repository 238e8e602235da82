package script

import "errors"

var (
	// ErrUnknownOp is returned for a step whose op the runner does not know
	ErrUnknownOp = errors.New("unknown op")

	// ErrInvalidStep is returned when a step is missing a required field or
	// the script cannot be decoded
	ErrInvalidStep = errors.New("invalid step")

	// ErrExpectationFailed is returned when an expect step does not match the board
	ErrExpectationFailed = errors.New("expectation failed")
)
