package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/swimlane/internal/search"
)

// startRename opens the title input for the selected column and locks it
// against dragging until the input closes.
func (m Model) startRename() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}

	m.editingID = col.ID
	m.app.Drag.Lock(col.ID)
	m.renameInput.SetValue(col.Title)
	m.renameInput.CursorEnd()
	m.mode = RenameColumnMode
	return m, m.renameInput.Focus()
}

// updateRename handles keys while renaming: enter saves, esc cancels
func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if title := strings.TrimSpace(m.renameInput.Value()); title != "" {
			m.app.Board.RenameColumn(m.editingID, title)
		}
		m.closeInput()
		return m, nil
	case "esc":
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// startEdit opens the content editor for the selected card and locks it
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}

	m.editingID = card.ID
	m.app.Drag.Lock(card.ID)
	m.editArea.SetValue(card.Content)
	m.mode = EditCardMode
	return m, m.editArea.Focus()
}

// updateEdit handles keys while editing: ctrl+s saves, esc cancels
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.app.Board.EditCardContent(m.editingID, m.editArea.Value())
		m.closeInput()
		return m, nil
	case "esc":
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.editArea, cmd = m.editArea.Update(msg)
	return m, cmd
}

// closeInput leaves rename or edit mode and releases the lock
func (m *Model) closeInput() {
	m.app.Drag.Unlock(m.editingID)
	m.editingID = ""
	m.renameInput.Blur()
	m.editArea.Blur()
	m.mode = NormalMode
	m.clampSelection()
}

// startConfirm asks before deleting the selected column and its cards
func (m Model) startConfirm() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}

	value := false
	cards := len(m.view().CardsIn(col.ID))
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete column %q?", col.Title)).
			Description(fmt.Sprintf("%d card(s) will be deleted with it.", cards)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&value),
	)).WithTheme(formTheme(m.app.Config.ColorScheme)).WithShowHelp(false)

	m.confirm = &confirmState{form: form, columnID: col.ID, value: &value}
	m.mode = DeleteColumnConfirmMode
	return m, form.Init()
}

// updateConfirm forwards a message to the confirmation form and acts on
// its result
func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	if m.confirm == nil {
		m.mode = NormalMode
		return nil
	}

	model, cmd := m.confirm.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.confirm.form = f
	}

	switch m.confirm.form.State {
	case huh.StateCompleted:
		m.finishConfirm(*m.confirm.value)
		return nil
	case huh.StateAborted:
		m.closeConfirm()
		return nil
	}
	return cmd
}

// finishConfirm deletes the column when confirmed, then closes the form
func (m *Model) finishConfirm(confirmed bool) {
	if confirmed && m.confirm != nil {
		m.app.Board.DeleteColumn(m.confirm.columnID)
	}
	m.closeConfirm()
}

func (m *Model) closeConfirm() {
	m.confirm = nil
	m.mode = NormalMode
	m.clampSelection()
}

// startSearch opens the fuzzy finder
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.searchInput.SetValue("")
	m.searchResults = nil
	m.mode = SearchMode
	return m, m.searchInput.Focus()
}

// updateSearch handles keys while searching: enter jumps to the best match
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if len(m.searchResults) > 0 {
			m.selectID(m.searchResults[0].Card.ID)
		}
		m.closeSearch()
		return m, nil
	case "esc":
		m.closeSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchResults = search.Cards(m.view(), m.searchInput.Value())
	return m, cmd
}

func (m *Model) closeSearch() {
	m.searchInput.Blur()
	m.searchResults = nil
	m.mode = NormalMode
}
