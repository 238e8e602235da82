package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/swimlane/internal/drag"
)

// gesture tracks a left-button press until release. A press becomes a drag
// once the pointer travels the configured activation distance.
type gesture struct {
	pressed bool
	active  bool
	origin  drag.Target
	startX  int
	startY  int
	over    drag.Target
}

// handleMouse maps mouse presses, motion and releases onto the drag
// coordinator. Presses outside the board only clear the gesture.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.press(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.gesture.pressed {
			return
		}
		m.motion(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !m.gesture.pressed {
			return
		}
		m.release(msg.X, msg.Y)
	}
}

func (m *Model) press(x, y int) {
	if m.gesture.active {
		// A second press mid-drag means we missed the release
		m.app.Drag.DragCancel()
	}
	m.gesture = gesture{}

	target := m.layout().at(x, y)
	if target.None() {
		return
	}

	m.err = ""
	m.selectID(target.ID)
	m.gesture = gesture{pressed: true, origin: target, startX: x, startY: y}

	if m.app.Config.Drag.ActivationDistance == 0 {
		m.activate()
	}
}

func (m *Model) motion(x, y int) {
	if !m.gesture.active {
		if distance(m.gesture.startX, m.gesture.startY, x, y) < m.app.Config.Drag.ActivationDistance {
			return
		}
		if !m.activate() {
			return
		}
	}

	over := m.layout().at(x, y)
	if over.None() || over == m.gesture.over {
		return
	}
	m.gesture.over = over
	m.app.Drag.DragOver(m.gesture.origin.ID, over)
	m.selectID(m.gesture.origin.ID)
}

func (m *Model) release(x, y int) {
	defer func() { m.gesture = gesture{} }()

	if !m.gesture.active {
		// A click: the press already selected the target
		return
	}

	over := m.layout().at(x, y)
	m.app.Drag.DragEnd(m.gesture.origin.ID, over)
	m.selectID(m.gesture.origin.ID)
}

// activate starts the drag session for the pressed item
func (m *Model) activate() bool {
	if err := m.app.Drag.DragStart(m.gesture.origin); err != nil {
		m.setError(err)
		m.gesture = gesture{}
		return false
	}
	if m.app.Drag.State() == drag.Idle {
		m.gesture = gesture{}
		return false
	}
	m.gesture.active = true
	return true
}

// cancelDrag abandons the gesture and restores the committed board
func (m *Model) cancelDrag() {
	if m.gesture.active || m.app.Drag.State() != drag.Idle {
		m.app.Drag.DragCancel()
	}
	m.gesture = gesture{}
	m.clampSelection()
}

// distance is the Chebyshev distance between two cells
func distance(x1, y1, x2, y2 int) int {
	return max(abs(x2-x1), abs(y2-y1))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
