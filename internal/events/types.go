package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged  EventType = "board_changed"
	EventDragStarted   EventType = "drag_started"
	EventDragEnded     EventType = "drag_ended"
	EventDragCancelled EventType = "drag_cancelled"
)

// Event represents a board or drag-session change notification.
// Events are level-triggered: subscribers re-read the board instead of
// reconstructing it from the event payload.
type Event struct {
	Type       EventType
	Op         string    // Store operation or gesture that produced the event
	Version    uint64    // Committed board version after the change
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
