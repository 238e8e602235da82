// Package ids hands out fresh identifiers for columns and cards.
package ids

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ErrUnknownStrategy is returned by New for an unrecognised strategy name
var ErrUnknownStrategy = errors.New("unknown id strategy")

// Strategy names accepted by New
const (
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
)

// Generator produces identifiers that are never handed out twice
type Generator interface {
	Next() types.ID
}

// Sequence yields "1", "2", "3", ... and is safe for concurrent use.
// Deleted ids are not reused because the counter only moves forward.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a sequence starting at 1
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier in the sequence
func (s *Sequence) Next() types.ID {
	return types.ID(strconv.FormatUint(s.n.Add(1), 10))
}

// UUIDs yields random version 4 identifiers
type UUIDs struct{}

// Next returns a fresh random identifier
func (UUIDs) Next() types.ID {
	return types.ID(uuid.NewString())
}

// New returns the generator for the named strategy.
// An empty name selects the sequence strategy.
func New(strategy string) (Generator, error) {
	switch strategy {
	case "", StrategySequence:
		return NewSequence(), nil
	case StrategyUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Compile-time verification that both generators implement Generator
var (
	_ Generator = (*Sequence)(nil)
	_ Generator = UUIDs{}
)
