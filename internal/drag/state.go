package drag

import (
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// State is the coordinator's position in the drag state machine
type State int

const (
	Idle State = iota
	DraggingColumn
	DraggingCard
)

func (s State) String() string {
	switch s {
	case DraggingColumn:
		return "dragging_column"
	case DraggingCard:
		return "dragging_card"
	default:
		return "idle"
	}
}

// Target is a drag participant: the active item or the item under the pointer.
// The zero Target means "no target". A zero Kind is resolved by looking the id
// up on the board.
type Target struct {
	Kind types.Kind
	ID   types.ID
}

// None reports whether the target is absent
func (t Target) None() bool {
	return t.ID.IsZero()
}

// move is one recorded reorder step of a session
type move struct {
	kind         types.Kind
	activeID     types.ID
	overID       types.ID
	overIsColumn bool
}

// apply runs the move against a snapshot
func (m move) apply(s board.Snapshot) (board.Snapshot, bool) {
	if m.kind == types.KindColumn {
		return s.MoveColumn(m.activeID, m.overID)
	}
	return s.MoveCard(m.activeID, m.overID, m.overIsColumn)
}

// replay applies moves in order; moves whose ids no longer exist are no-ops
func replay(s board.Snapshot, moves []move) (board.Snapshot, bool) {
	changed := false
	for _, m := range moves {
		var ok bool
		s, ok = m.apply(s)
		changed = changed || ok
	}
	return s, changed
}

// session is the transient state of one gesture
type session struct {
	active      Target
	moves       []move
	lastOver    Target
	draft       board.Snapshot
	baseVersion uint64
}
