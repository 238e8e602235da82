package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// View renders the header, the board and the footer
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	if m.mode == HelpMode {
		return m.viewHelp()
	}

	header := m.styles.Header.Render("swimlane") + " " + m.styles.Subtle.Render(m.hint())

	return lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(header, m.width, ""),
		m.viewBoard(),
		m.viewStatus(),
		m.viewFooter(),
	)
}

// hint describes what the mouse does in the current state
func (m Model) hint() string {
	switch m.app.Drag.State() {
	case drag.DraggingColumn:
		return "dragging column · release to drop · esc cancels"
	case drag.DraggingCard:
		return "dragging card · release to drop · esc cancels"
	}
	return fmt.Sprintf("drag cards and column titles with the mouse · %s for help", m.keys.ShowHelp)
}

// viewBoard renders the visible lanes side by side
func (m Model) viewBoard() string {
	ls := m.lanes()
	if len(ls) == 0 {
		return m.styles.Subtle.Render(fmt.Sprintf("\nNo columns. Press %s to create one.", m.keys.CreateColumn))
	}

	active, dragging := m.app.Drag.Active()
	shown := visibleLanes(m.width)
	rendered := make([]string, 0, shown*2)

	for i := m.laneOffset; i < len(ls) && i < m.laneOffset+shown; i++ {
		if i > m.laneOffset {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, m.viewLane(ls[i], i, active, dragging))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewLane(ln lane, index int, active drag.Target, dragging bool) string {
	style := m.styles.Column
	title := ln.column.Title
	if ln.orphan {
		style = m.styles.Orphan
		title = "Orphaned"
	}

	switch {
	case dragging && active.ID == ln.column.ID && !ln.orphan:
		style = style.BorderForeground(m.styles.dragBorder)
	case m.gesture.active && m.gesture.over.Kind == types.KindColumn && m.gesture.over.ID == ln.column.ID && !ln.orphan:
		style = style.BorderForeground(m.styles.dropBorder)
	case index == m.selectedLane && !dragging:
		style = style.BorderForeground(m.styles.selectedBorder)
	}

	fit := visibleCards(m.height)
	count := fmt.Sprintf(" %d", len(ln.cards))
	if len(ln.cards) > fit {
		count = fmt.Sprintf(" %d/%d", fit, len(ln.cards))
	}
	inner := columnWidth - 4
	rows := []string{
		m.styles.Title.Render(ansi.Truncate(title, inner-len(count), "…")) + m.styles.Subtle.Render(count),
	}

	for j, card := range ln.cards {
		if j >= fit {
			break
		}
		selected := index == m.selectedLane && j == m.selectedCard
		rows = append(rows, m.viewCard(card, selected, active, dragging))
	}

	return style.Height(laneHeight(m.height) - 2).Render(strings.Join(rows, "\n"))
}

func (m Model) viewCard(card models.Card, selected bool, active drag.Target, dragging bool) string {
	style := m.styles.Card
	switch {
	case dragging && active.ID == card.ID:
		style = style.BorderForeground(m.styles.dragBorder)
	case m.gesture.active && m.gesture.over.ID == card.ID:
		style = style.BorderForeground(m.styles.dropBorder)
	case selected && !dragging:
		style = style.BorderForeground(m.styles.selectedBorder)
	}

	content := strings.ReplaceAll(card.Content, "\n", " ")
	if m.app.Drag.Locked(card.ID) {
		content = "✎ " + content
	}
	return style.Render(ansi.Truncate(content, columnWidth-8, "…"))
}

// viewStatus renders board totals and when the board last changed
func (m Model) viewStatus() string {
	view := m.view()

	changed := "no changes yet"
	if !m.lastChange.IsZero() {
		changed = "changed " + humanize.RelTime(m.lastChange, m.now(), "ago", "from now")
	}

	status := fmt.Sprintf("%s columns · %s cards · v%d · %s",
		humanize.Comma(int64(view.ColumnCount())),
		humanize.Comma(int64(view.CardCount())),
		m.app.Board.Version(),
		changed)
	return m.styles.Subtle.Render(ansi.Truncate(status, m.width, "…"))
}

// viewFooter renders the active input or the last error
func (m Model) viewFooter() string {
	switch m.mode {
	case RenameColumnMode:
		return "Rename: " + m.renameInput.View()
	case EditCardMode:
		return m.editArea.View() + "\n" + m.styles.Subtle.Render("ctrl+s save · esc cancel")
	case DeleteColumnConfirmMode:
		if m.confirm != nil {
			return m.confirm.form.View()
		}
	case SearchMode:
		return m.viewSearch()
	}

	if m.err != "" {
		return m.styles.Error.Render(m.err)
	}
	return ""
}

// viewSearch renders the query and the best matches with matched runes
// highlighted
func (m Model) viewSearch() string {
	lines := []string{m.searchInput.View()}
	for i, match := range m.searchResults {
		if i == 5 {
			lines = append(lines, m.styles.Subtle.Render(fmt.Sprintf("  … %d more", len(m.searchResults)-i)))
			break
		}
		lines = append(lines, "  "+m.highlight(match.Card.Content, match.MatchedIndexes))
	}
	return strings.Join(lines, "\n")
}

func (m Model) highlight(s string, indexes []int) string {
	hit := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(m.styles.Highlight.Render(string(r)))
		} else {
			b.WriteString(m.styles.Normal.Render(string(r)))
		}
	}
	return b.String()
}
