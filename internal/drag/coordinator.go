// Package drag turns drag-start, drag-over and drag-end notifications into
// board reorders.
//
// Moves are applied live to a session draft on every drag-over, for columns
// and cards alike, so View always shows where the dragged item will land.
// The committed board is only touched on drag-end, which replays the recorded
// moves in one store transition. Cancelling discards the draft.
package drag

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Coordinator is the Idle / DraggingColumn / DraggingCard state machine.
// At most one session exists at a time.
type Coordinator struct {
	mu        sync.Mutex
	store     *board.Store
	publisher events.EventPublisher
	logger    *slog.Logger
	locked    map[types.ID]struct{}
	session   *session
}

// Option is a functional option for configuring a Coordinator
type Option func(*Coordinator)

// WithEventPublisher sets where drag lifecycle events are sent
func WithEventPublisher(ep events.EventPublisher) Option {
	return func(c *Coordinator) {
		c.publisher = ep
	}
}

// WithLogger sets the logger for the coordinator
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an idle coordinator over store
func New(store *board.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:  store,
		logger: slog.Default(),
		locked: make(map[types.ID]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Idle
	}
	if c.session.active.Kind == types.KindColumn {
		return DraggingColumn
	}
	return DraggingCard
}

// Active returns the item being dragged, if any
func (c *Coordinator) Active() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Target{}, false
	}
	return c.session.active, true
}

// Lock marks an item as being edited inline; locked items cannot start a drag
func (c *Coordinator) Lock(id types.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locked[id] = struct{}{}
}

// Unlock ends inline editing for an item
func (c *Coordinator) Unlock(id types.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locked, id)
}

// Locked reports whether an item is being edited inline
func (c *Coordinator) Locked(id types.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.locked[id]
	return ok
}

// View returns the board to render: the session draft while dragging,
// otherwise the committed board.
func (c *Coordinator) View() board.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// DragStart begins a session for the active item.
// Starting while a session is in flight cancels that session first. An id
// that is not on the board leaves the coordinator idle.
func (c *Coordinator) DragStart(active Target) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.locked[active.ID]; ok {
		return fmt.Errorf("%w: %s", ErrLocked, active.ID)
	}

	if c.session != nil {
		c.logger.Warn("drag started while another drag was active",
			"previous", c.session.active.ID,
			"next", active.ID)
		c.cancelLocked()
	}

	committed := c.store.Snapshot()
	kind := classify(committed, active)
	if kind != types.KindColumn && kind != types.KindCard {
		c.logger.Debug("drag start ignored: unknown target", "id", active.ID, "kind", active.Kind)
		return nil
	}

	c.session = &session{
		active:      Target{Kind: kind, ID: active.ID},
		draft:       committed,
		baseVersion: committed.Version(),
	}

	c.logger.Debug("drag started", "kind", kind, "id", active.ID, "version", committed.Version())
	c.publish(events.EventDragStarted, kind.String())
	return nil
}

// DragOver applies the move implied by the over target to the session draft.
// Events for another active id, with no over target, or targeting the active
// item itself are ignored.
func (c *Coordinator) DragOver(activeID types.ID, over Target) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.accepts(activeID) || over.None() || over.ID == activeID {
		return
	}
	c.overLocked(over)
}

// DragEnd commits the session's moves to the store and returns to Idle.
// An over target the session has not applied yet is applied first.
// With no over target nothing beyond the recorded moves is committed.
func (c *Coordinator) DragEnd(activeID types.ID, over Target) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.accepts(activeID) {
		return
	}

	s := c.session
	if !over.None() && over.ID != activeID && over.ID != s.lastOver.ID {
		c.overLocked(over)
	}
	c.session = nil

	moves := s.moves
	committed := false
	if len(moves) > 0 {
		committed = c.store.Update("drag_"+s.active.Kind.String(), func(cur board.Snapshot) (board.Snapshot, bool) {
			return replay(cur, moves)
		})
	}

	c.logger.Debug("drag ended",
		"kind", s.active.Kind,
		"id", s.active.ID,
		"moves", len(moves),
		"committed", committed)
	c.publish(events.EventDragEnded, s.active.Kind.String())
}

// DragCancel discards the session; the committed board is left untouched
func (c *Coordinator) DragCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return
	}
	c.cancelLocked()
}

// accepts reports whether an event for activeID belongs to the live session
func (c *Coordinator) accepts(activeID types.ID) bool {
	return c.session != nil && c.session.active.ID == activeID
}

// overLocked classifies the over target and records the resulting move
func (c *Coordinator) overLocked(over Target) {
	s := c.session
	draft := c.viewLocked()
	kind := classify(draft, over)
	s.lastOver = over

	var m move
	switch s.active.Kind {
	case types.KindColumn:
		target := over.ID
		switch kind {
		case types.KindColumn:
		case types.KindCard:
			// A column dragged over a card sorts against that card's column
			card, _ := draft.Card(over.ID)
			target = card.ColumnID
		default:
			return
		}
		if target == s.active.ID {
			return
		}
		m = move{kind: types.KindColumn, activeID: s.active.ID, overID: target}

	case types.KindCard:
		if kind != types.KindColumn && kind != types.KindCard {
			return
		}
		m = move{
			kind:         types.KindCard,
			activeID:     s.active.ID,
			overID:       over.ID,
			overIsColumn: kind == types.KindColumn,
		}

	default:
		return
	}

	next, changed := m.apply(draft)
	if !changed {
		return
	}
	s.moves = append(s.moves, m)
	s.draft = next

	c.logger.Debug("drag over applied",
		"active", m.activeID,
		"over", m.overID,
		"over_is_column", m.overIsColumn,
		"moves", len(s.moves))
}

// viewLocked returns the draft, rebuilding it when the store has moved on
// since the draft was computed (e.g. a card deleted mid-drag)
func (c *Coordinator) viewLocked() board.Snapshot {
	committed := c.store.Snapshot()
	s := c.session
	if s == nil {
		return committed
	}

	if committed.Version() != s.baseVersion {
		s.draft, _ = replay(committed, s.moves)
		s.baseVersion = committed.Version()
		c.logger.Debug("drag draft rebased", "version", s.baseVersion, "moves", len(s.moves))
	}
	return s.draft
}

func (c *Coordinator) cancelLocked() {
	s := c.session
	c.session = nil
	c.logger.Debug("drag cancelled", "kind", s.active.Kind, "id", s.active.ID, "discarded_moves", len(s.moves))
	c.publish(events.EventDragCancelled, s.active.Kind.String())
}

// publish sends a drag lifecycle event; failures are logged, never returned
func (c *Coordinator) publish(eventType events.EventType, op string) {
	if c.publisher == nil {
		return
	}

	if err := c.publisher.SendEvent(events.Event{
		Type:    eventType,
		Op:      op,
		Version: c.store.Version(),
	}); err != nil {
		c.logger.Warn("failed to publish drag event", "event_type", eventType, "error", err)
	}
}

// classify resolves a target's kind against a snapshot.
// A declared kind that disagrees with the board yields KindUnknown.
func classify(s board.Snapshot, t Target) types.Kind {
	actual := s.KindOf(t.ID)
	if t.Kind != types.KindUnknown && t.Kind != actual {
		return types.KindUnknown
	}
	return actual
}
