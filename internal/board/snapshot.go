package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Snapshot is an immutable view of the board: the ordered columns and the
// ordered global card sequence. Transitions return a new Snapshot and never
// write to the receiver's slices, so a Snapshot handed to a renderer stays
// valid while the store moves on.
type Snapshot struct {
	columns []models.Column
	cards   []models.Card
	version uint64
}

// NewSnapshot builds a snapshot from the given sequences (copied).
// The version starts at zero; the store assigns versions on commit.
func NewSnapshot(columns []models.Column, cards []models.Card) Snapshot {
	return Snapshot{
		columns: slices.Clone(columns),
		cards:   slices.Clone(cards),
	}
}

// Version is the number of committed transitions that produced this snapshot
func (s Snapshot) Version() uint64 {
	return s.version
}

// Columns returns the columns in display order
func (s Snapshot) Columns() []models.Column {
	return slices.Clone(s.columns)
}

// Cards returns the global card sequence
func (s Snapshot) Cards() []models.Card {
	return slices.Clone(s.cards)
}

// ColumnCount returns the number of columns
func (s Snapshot) ColumnCount() int {
	return len(s.columns)
}

// CardCount returns the number of cards across all columns
func (s Snapshot) CardCount() int {
	return len(s.cards)
}

// CardsIn returns the cards of one column, in global sequence order
func (s Snapshot) CardsIn(columnID types.ID) []models.Card {
	var out []models.Card
	for _, c := range s.cards {
		if c.ColumnID == columnID {
			out = append(out, c)
		}
	}
	return out
}

// Column looks up a column by id
func (s Snapshot) Column(id types.ID) (models.Column, bool) {
	if i := s.columnIndex(id); i >= 0 {
		return s.columns[i], true
	}
	return models.Column{}, false
}

// Card looks up a card by id
func (s Snapshot) Card(id types.ID) (models.Card, bool) {
	if i := s.cardIndex(id); i >= 0 {
		return s.cards[i], true
	}
	return models.Card{}, false
}

// KindOf reports whether id names a column, a card, or nothing on this board
func (s Snapshot) KindOf(id types.ID) types.Kind {
	switch {
	case s.columnIndex(id) >= 0:
		return types.KindColumn
	case s.cardIndex(id) >= 0:
		return types.KindCard
	default:
		return types.KindUnknown
	}
}

// Orphans returns cards whose column does not exist.
// A consistent board has none; renderers show them in a fallback lane.
func (s Snapshot) Orphans() []models.Card {
	var out []models.Card
	for _, c := range s.cards {
		if s.columnIndex(c.ColumnID) < 0 {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks id uniqueness across columns and cards and that every
// card references an existing column.
func (s Snapshot) Validate() error {
	seen := make(map[types.ID]types.Kind, len(s.columns)+len(s.cards))

	for _, col := range s.columns {
		if col.ID.IsZero() {
			return fmt.Errorf("%w: column with empty id", ErrInvariantViolation)
		}
		if _, dup := seen[col.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvariantViolation, col.ID)
		}
		seen[col.ID] = types.KindColumn
	}

	for _, card := range s.cards {
		if card.ID.IsZero() {
			return fmt.Errorf("%w: card with empty id", ErrInvariantViolation)
		}
		if _, dup := seen[card.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvariantViolation, card.ID)
		}
		seen[card.ID] = types.KindCard
	}

	for _, card := range s.cards {
		if seen[card.ColumnID] != types.KindColumn {
			return fmt.Errorf("%w: card %s references missing column %s",
				ErrInvariantViolation, card.ID, card.ColumnID)
		}
	}

	return nil
}

// MoveColumn relocates the active column to the index currently held by the
// over column. Reports false when nothing changed (self-move or missing id).
func (s Snapshot) MoveColumn(activeID, overID types.ID) (Snapshot, bool) {
	if activeID == overID {
		return s, false
	}
	from, to := s.columnIndex(activeID), s.columnIndex(overID)
	if from < 0 || to < 0 {
		return s, false
	}

	next := s
	next.columns = Move(s.columns, from, to)
	return next, true
}

// MoveCard moves the active card onto a card or a column.
//
// Over a card, the active card joins the over card's column. Within one column
// it takes the over card's index (plain array-move). Entering another column it
// lands immediately before the over card.
//
// Over a column, only the column reference changes; the card keeps its index
// in the global sequence.
func (s Snapshot) MoveCard(activeID, overID types.ID, overIsColumn bool) (Snapshot, bool) {
	if activeID == overID {
		return s, false
	}
	from := s.cardIndex(activeID)
	if from < 0 {
		return s, false
	}

	if overIsColumn {
		if s.columnIndex(overID) < 0 || s.cards[from].ColumnID == overID {
			return s, false
		}
		cards := slices.Clone(s.cards)
		cards[from].ColumnID = overID

		next := s
		next.cards = cards
		return next, true
	}

	to := s.cardIndex(overID)
	if to < 0 {
		return s, false
	}

	target := s.cards[to].ColumnID
	crossing := s.cards[from].ColumnID != target
	if crossing && from < to {
		// Index of the over card once the active card is lifted out
		to--
	}
	if !crossing && from == to {
		return s, false
	}

	cards := slices.Clone(s.cards)
	cards[from].ColumnID = target

	next := s
	next.cards = Move(cards, from, to)
	return next, true
}

// withColumn appends a column
func (s Snapshot) withColumn(col models.Column) Snapshot {
	next := s
	next.columns = append(slices.Clone(s.columns), col)
	return next
}

// withoutColumn removes a column and every card that references it
func (s Snapshot) withoutColumn(id types.ID) (Snapshot, bool) {
	i := s.columnIndex(id)
	if i < 0 {
		return s, false
	}

	next := s
	next.columns = slices.Delete(slices.Clone(s.columns), i, i+1)
	next.cards = slices.DeleteFunc(slices.Clone(s.cards), func(c models.Card) bool {
		return c.ColumnID == id
	})
	return next, true
}

// withColumnTitle renames a column
func (s Snapshot) withColumnTitle(id types.ID, title string) (Snapshot, bool) {
	i := s.columnIndex(id)
	if i < 0 || s.columns[i].Title == title {
		return s, false
	}

	next := s
	next.columns = slices.Clone(s.columns)
	next.columns[i].Title = title
	return next, true
}

// withCard appends a card to the global sequence; its column must exist
func (s Snapshot) withCard(card models.Card) (Snapshot, error) {
	if s.columnIndex(card.ColumnID) < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, card.ColumnID)
	}

	next := s
	next.cards = append(slices.Clone(s.cards), card)
	return next, nil
}

// withoutCard removes a card
func (s Snapshot) withoutCard(id types.ID) (Snapshot, bool) {
	i := s.cardIndex(id)
	if i < 0 {
		return s, false
	}

	next := s
	next.cards = slices.Delete(slices.Clone(s.cards), i, i+1)
	return next, true
}

// withCardContent replaces a card's content
func (s Snapshot) withCardContent(id types.ID, content string) (Snapshot, bool) {
	i := s.cardIndex(id)
	if i < 0 || s.cards[i].Content == content {
		return s, false
	}

	next := s
	next.cards = slices.Clone(s.cards)
	next.cards[i].Content = content
	return next, true
}

func (s Snapshot) columnIndex(id types.ID) int {
	return slices.IndexFunc(s.columns, func(c models.Column) bool { return c.ID == id })
}

func (s Snapshot) cardIndex(id types.ID) int {
	return slices.IndexFunc(s.cards, func(c models.Card) bool { return c.ID == id })
}
