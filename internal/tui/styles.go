package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/swimlane/internal/config/colors"
)

// Board geometry. Hit testing and rendering both derive positions from these.
const (
	// boardTop is the first screen row of the board (row 0 is the header)
	boardTop = 1

	// columnWidth is a lane's total width including its border
	columnWidth = 30
	columnGap   = 1

	// cardHeight is a card's total height including its border
	cardHeight = 3

	// footerHeight is the rows below the board (status bar and input line)
	footerHeight = 2
)

// Styles holds every lipgloss style the board uses, built from the theme
type Styles struct {
	Header    lipgloss.Style
	Column    lipgloss.Style
	Orphan    lipgloss.Style
	Card      lipgloss.Style
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Normal    lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	selectedBorder lipgloss.Color
	dragBorder     lipgloss.Color
	dropBorder     lipgloss.Color
}

// NewStyles builds the board styles for a color scheme
func NewStyles(cs colors.ColorScheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Accent)),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.ColumnBorder)).
			Padding(0, 1).
			Width(columnWidth - 2),

		Orphan: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.OrphanBorder)).
			Padding(0, 1).
			Width(columnWidth - 2),

		// Cards fill the lane's content area
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.CardBorder)).
			Foreground(lipgloss.Color(cs.Normal)).
			Padding(0, 1).
			Width(columnWidth - 6),

		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cs.Title)),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Subtle)),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Normal)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Error)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Accent)).Underline(true),

		selectedBorder: lipgloss.Color(cs.SelectedBorder),
		dragBorder:     lipgloss.Color(cs.DragBorder),
		dropBorder:     lipgloss.Color(cs.DropTarget),
	}
}

// formTheme creates a huh theme matching the board's color scheme
func formTheme(cs colors.ColorScheme) *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color(cs.Accent)
	subtle := lipgloss.Color(cs.Subtle)
	normal := lipgloss.Color(cs.Normal)
	danger := lipgloss.Color(cs.Delete)
	title := lipgloss.Color(cs.Title)

	t.Focused.Base = t.Focused.Base.BorderForeground(danger)
	t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(normal).
		Background(subtle)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
