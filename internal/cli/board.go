package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/script"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// BoardOutput is the board as printed by replay
type BoardOutput struct {
	Version uint64         `json:"version"`
	Steps   int            `json:"steps"`
	Changed bool           `json:"changed"`
	Columns []ColumnOutput `json:"columns"`
	Orphans []CardOutput   `json:"orphans,omitempty"`
}

// ColumnOutput is one column with its cards in order
type ColumnOutput struct {
	ID    types.ID     `json:"id"`
	Title string       `json:"title"`
	Cards []CardOutput `json:"cards"`
}

// CardOutput is one card
type CardOutput struct {
	ID      types.ID `json:"id"`
	Content string   `json:"content"`
}

// NewBoardOutput builds the printable board from a snapshot and run result
func NewBoardOutput(s board.Snapshot, res script.Result) BoardOutput {
	out := BoardOutput{
		Version: s.Version(),
		Steps:   res.Steps,
		Changed: res.Changed(),
		Columns: make([]ColumnOutput, 0, s.ColumnCount()),
	}
	for _, col := range s.Columns() {
		out.Columns = append(out.Columns, ColumnOutput{
			ID:    col.ID,
			Title: col.Title,
			Cards: cardOutputs(s.CardsIn(col.ID)),
		})
	}
	if orphans := s.Orphans(); len(orphans) > 0 {
		out.Orphans = cardOutputs(orphans)
	}
	return out
}

func cardOutputs(cards []models.Card) []CardOutput {
	out := make([]CardOutput, 0, len(cards))
	for _, c := range cards {
		out = append(out, CardOutput{ID: c.ID, Content: c.Content})
	}
	return out
}

// String renders the human-readable listing
func (b BoardOutput) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board version %d after %d steps:\n", b.Version, b.Steps)
	if len(b.Columns) == 0 {
		sb.WriteString("  (no columns)\n")
	}
	for i, col := range b.Columns {
		fmt.Fprintf(&sb, "  %d. %s (ID: %s)\n", i+1, col.Title, col.ID)
		if len(col.Cards) == 0 {
			sb.WriteString("     (empty)\n")
		}
		for _, card := range col.Cards {
			fmt.Fprintf(&sb, "     - %s (ID: %s)\n", card.Content, card.ID)
		}
	}
	if len(b.Orphans) > 0 {
		sb.WriteString("  Orphaned:\n")
		for _, card := range b.Orphans {
			fmt.Fprintf(&sb, "     - %s (ID: %s)\n", card.Content, card.ID)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// IDLines renders one line per column: the column id, a colon, then its
// card ids in order
func (b BoardOutput) IDLines() string {
	lines := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		ids := make([]string, 0, len(col.Cards)+1)
		ids = append(ids, col.ID.String()+":")
		for _, card := range col.Cards {
			ids = append(ids, card.ID.String())
		}
		lines = append(lines, strings.Join(ids, " "))
	}
	return strings.Join(lines, "\n")
}
