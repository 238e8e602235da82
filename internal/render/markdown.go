// Package render turns board snapshots into markdown reports.
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/swimlane/internal/board"
)

// OrphanHeading titles the section listing cards whose column is gone
const OrphanHeading = "Orphaned"

// Markdown renders the board as one heading per column with its cards as a
// list, in display order. Orphaned cards get their own section.
func Markdown(s board.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Board (version %d)\n", s.Version())

	if s.ColumnCount() == 0 {
		b.WriteString("\n_No columns_\n")
	}

	for _, col := range s.Columns() {
		fmt.Fprintf(&b, "\n## %s\n\n", escape(col.Title))
		cards := s.CardsIn(col.ID)
		if len(cards) == 0 {
			b.WriteString("_empty_\n")
			continue
		}
		for _, card := range cards {
			fmt.Fprintf(&b, "- %s `%s`\n", escape(card.Content), card.ID)
		}
	}

	if orphans := s.Orphans(); len(orphans) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", OrphanHeading)
		for _, card := range orphans {
			fmt.Fprintf(&b, "- %s `%s` (column `%s`)\n", escape(card.Content), card.ID, card.ColumnID)
		}
	}

	return b.String()
}

// escape keeps user text from opening markdown structure
func escape(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.NewReplacer("*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`).Replace(s)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Terminal renders the board for a terminal of the given width.
// If glamour fails the plain markdown is returned with the error.
func Terminal(s board.Snapshot, width int) (string, error) {
	md := Markdown(s)

	renderer, err := getRenderer(width)
	if err != nil {
		return md, err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md, err
	}
	return strings.TrimSpace(out), nil
}
