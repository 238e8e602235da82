package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// The store and the drag coordinator depend on this interface rather than on
// the concrete bus, so tests can pass a recorder or nil.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen returns a channel of events that is closed when ctx is done
	// or the publisher is closed
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
