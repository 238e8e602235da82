package models

import "github.com/thenoetrevino/swimlane/internal/types"

// Card is a unit of content belonging to exactly one column.
// Card order inside a column is the order of the board's global card sequence,
// filtered by ColumnID; there is no separate position field.
type Card struct {
	ID       types.ID `json:"id" yaml:"id"`
	ColumnID types.ID `json:"column_id" yaml:"column_id"`
	Content  string   `json:"content" yaml:"content"`
}

// InColumn reports whether the card belongs to the given column
func (c Card) InColumn(columnID types.ID) bool {
	return c.ColumnID == columnID
}
