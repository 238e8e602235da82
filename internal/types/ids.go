package types

import (
	"fmt"
	"strings"
)

// ID identifies a column or a card on the board.
// Columns and cards share one identifier space, so an ID is unique across both.
type ID string

// String returns the identifier as a plain string
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty (no target)
func (id ID) IsZero() bool {
	return id == ""
}

// Kind tells a column apart from a card when both appear as drag targets
type Kind int

const (
	// KindUnknown is the zero value; callers classify the id by lookup
	KindUnknown Kind = iota
	KindColumn
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindCard:
		return "card"
	default:
		return "unknown"
	}
}

// ParseKind converts "column" or "card" (any case) into a Kind.
// An empty string yields KindUnknown.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return KindUnknown, nil
	case "column", "col":
		return KindColumn, nil
	case "card", "task":
		return KindCard, nil
	default:
		return KindUnknown, fmt.Errorf("unknown kind %q", s)
	}
}
