package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/search"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what is displayed
// below the board.
type Mode int

const (
	NormalMode              Mode = iota // Navigation, mouse drag
	RenameColumnMode                    // Renaming the selected column
	EditCardMode                        // Editing the selected card's content
	DeleteColumnConfirmMode             // Confirming column deletion
	SearchMode                          // Fuzzy search over card content
	HelpMode                            // Displaying the key bindings
)

// Model represents the application state for the TUI
type Model struct {
	app    *app.App
	keys   config.KeyMappings
	styles Styles
	logger *slog.Logger

	ctx       context.Context
	eventChan <-chan events.Event

	width  int
	height int
	mode   Mode

	// selection within the rendered board
	selectedLane int
	selectedCard int
	laneOffset   int

	gesture gesture

	renameInput textinput.Model
	editArea    textarea.Model
	editingID   types.ID

	confirm *confirmState

	searchInput   textinput.Model
	searchResults []search.Match

	lastChange time.Time
	now        func() time.Time
	err        string
}

// confirmState backs the delete-column confirmation form
type confirmState struct {
	form     *huh.Form
	columnID types.ID
	value    *bool
}

// boardChangedMsg carries an event from the bus
type boardChangedMsg struct {
	Event events.Event
}

// New creates the TUI model over an application container.
// ctx bounds the event subscription.
func New(ctx context.Context, a *app.App) Model {
	m := Model{
		app:    a,
		keys:   a.Config.KeyMappings,
		styles: NewStyles(a.Config.ColorScheme),
		logger: a.Logger.With("component", "tui"),
		ctx:    ctx,
		width:  120,
		height: 30,
		now:    time.Now,
	}

	ch, err := a.Events.Listen(ctx)
	if err != nil {
		m.logger.Warn("event subscription failed", "error", err)
	} else {
		m.eventChan = ch
	}

	m.renameInput = textinput.New()
	m.renameInput.Placeholder = "Column title"
	m.renameInput.CharLimit = 80

	m.editArea = textarea.New()
	m.editArea.Placeholder = "Card content"
	m.editArea.ShowLineNumbers = false
	m.editArea.SetHeight(3)

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/"
	m.searchInput.Placeholder = "Find a card..."

	return m
}

// Init starts listening for board events
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// listen returns a command that waits for the next bus event.
// Returns nil if the subscription is not available.
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch, ctx := m.eventChan, m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return boardChangedMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// view is the snapshot on screen: the drag draft while dragging
func (m Model) view() board.Snapshot {
	return m.app.Drag.View()
}

func (m Model) lanes() []lane {
	return lanes(m.view())
}

func (m Model) layout() layout {
	return computeLayout(m.lanes(), m.laneOffset, m.width, m.height)
}

// currentLane returns the selected lane
func (m Model) currentLane() (lane, bool) {
	ls := m.lanes()
	if m.selectedLane < 0 || m.selectedLane >= len(ls) {
		return lane{}, false
	}
	return ls[m.selectedLane], true
}

// currentColumn returns the selected column. The orphan lane has none.
func (m Model) currentColumn() (models.Column, bool) {
	ln, ok := m.currentLane()
	if !ok || ln.orphan {
		return models.Column{}, false
	}
	return ln.column, true
}

// currentCard returns the selected card
func (m Model) currentCard() (models.Card, bool) {
	ln, ok := m.currentLane()
	if !ok || m.selectedCard < 0 || m.selectedCard >= len(ln.cards) {
		return models.Card{}, false
	}
	return ln.cards[m.selectedCard], true
}

// clampSelection keeps the selection and lane offset inside the board
func (m *Model) clampSelection() {
	ls := m.lanes()
	if len(ls) == 0 {
		m.selectedLane, m.selectedCard, m.laneOffset = 0, 0, 0
		return
	}

	m.selectedLane = min(max(m.selectedLane, 0), len(ls)-1)
	cards := len(ls[m.selectedLane].cards)
	m.selectedCard = min(max(m.selectedCard, 0), max(cards-1, 0))

	shown := visibleLanes(m.width)
	if m.selectedLane < m.laneOffset {
		m.laneOffset = m.selectedLane
	}
	if m.selectedLane >= m.laneOffset+shown {
		m.laneOffset = m.selectedLane - shown + 1
	}
	m.laneOffset = min(m.laneOffset, max(len(ls)-shown, 0))
}

// selectID moves the selection onto a column or card
func (m *Model) selectID(id types.ID) {
	for i, ln := range m.lanes() {
		if !ln.orphan && ln.column.ID == id {
			m.selectedLane, m.selectedCard = i, 0
			m.clampSelection()
			return
		}
		for j, card := range ln.cards {
			if card.ID == id {
				m.selectedLane, m.selectedCard = i, j
				m.clampSelection()
				return
			}
		}
	}
}

func (m *Model) setError(err error) {
	m.err = err.Error()
	m.logger.Debug("tui error", "error", err)
}
