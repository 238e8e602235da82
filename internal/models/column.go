package models

import "github.com/thenoetrevino/swimlane/internal/types"

// Column is a named lane on the board (e.g., "Todo", "In Progress", "Done").
// Its position is its index in the board's column sequence.
type Column struct {
	ID    types.ID `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
}
