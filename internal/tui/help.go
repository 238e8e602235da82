package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewHelp lists the configured key bindings
func (m Model) viewHelp() string {
	k := m.keys
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Mouse", [][2]string{
			{"drag card", "move it within or across columns"},
			{"drag column title", "reorder columns"},
			{k.CancelDrag, "cancel the drag in progress"},
		}},
		{"Cards", [][2]string{
			{k.AddCard, "add a card to the selected column"},
			{k.EditCard + "/enter", "edit the selected card"},
			{k.DeleteCard, "delete the selected card"},
		}},
		{"Columns", [][2]string{
			{k.CreateColumn, "create a column"},
			{k.RenameColumn, "rename the selected column"},
			{k.DeleteColumn, "delete the selected column"},
		}},
		{"Navigation", [][2]string{
			{k.PrevColumn + "/" + k.NextColumn, "previous/next column"},
			{k.PrevCard + "/" + k.NextCard, "previous/next card"},
			{k.Search, "search cards"},
			{k.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Key bindings") + "\n")
	for _, sec := range sections {
		b.WriteString("\n" + m.styles.Title.Render(sec.title) + "\n")
		for _, row := range sec.rows {
			fmt.Fprintf(&b, "  %-20s %s\n", row[0], m.styles.Subtle.Render(row[1]))
		}
	}
	b.WriteString("\n" + m.styles.Subtle.Render("press any key to close"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
