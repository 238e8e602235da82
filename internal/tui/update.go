package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/swimlane/internal/drag"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	// The confirmation form needs every message, not just keys
	if m.mode == DeleteColumnConfirmMode {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.closeConfirm()
			return m, nil
		}
		if _, ok := msg.(boardChangedMsg); !ok {
			cmd := m.updateConfirm(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case boardChangedMsg:
		m.lastChange = msg.Event.Timestamp
		m.clampSelection()
		return m, m.listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editArea.SetWidth(max(msg.Width-4, 10))
		m.clampSelection()
		return m, nil

	case tea.MouseMsg:
		if m.mode == NormalMode || m.mode == RenameColumnMode || m.mode == EditCardMode {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press by mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case RenameColumnMode:
		return m.updateRename(msg)
	case EditCardMode:
		return m.updateEdit(msg)
	case SearchMode:
		return m.updateSearch(msg)
	case HelpMode:
		m.mode = NormalMode
		return m, nil
	}

	return m.updateNormal(msg)
}

// updateNormal handles keys in NormalMode
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Dragging: only cancel and quit apply
	if m.app.Drag.State() != drag.Idle {
		switch key {
		case m.keys.CancelDrag, "esc":
			m.cancelDrag()
		case m.keys.Quit:
			m.cancelDrag()
			return m, tea.Quit
		}
		return m, nil
	}

	m.err = ""

	switch key {
	case m.keys.Quit:
		return m, tea.Quit

	case m.keys.ShowHelp:
		m.mode = HelpMode

	case m.keys.PrevColumn, "left":
		m.selectedLane--
		m.selectedCard = 0
		m.clampSelection()
	case m.keys.NextColumn, "right":
		m.selectedLane++
		m.selectedCard = 0
		m.clampSelection()
	case m.keys.PrevCard, "up":
		m.selectedCard--
		m.clampSelection()
	case m.keys.NextCard, "down":
		m.selectedCard++
		m.clampSelection()

	case m.keys.CreateColumn:
		col := m.app.Board.CreateColumn()
		m.selectID(col.ID)

	case m.keys.AddCard:
		col, ok := m.currentColumn()
		if !ok {
			m.err = "select a column first"
			return m, nil
		}
		card, err := m.app.Board.CreateCard(col.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.selectID(card.ID)

	case m.keys.DeleteCard:
		if card, ok := m.currentCard(); ok {
			m.app.Board.DeleteCard(card.ID)
			m.clampSelection()
		}

	case m.keys.RenameColumn:
		return m.startRename()

	case m.keys.EditCard, "enter":
		return m.startEdit()

	case m.keys.DeleteColumn:
		return m.startConfirm()

	case m.keys.Search:
		return m.startSearch()
	}

	return m, nil
}
