package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// defaultBuffer is the per-listener channel capacity
const defaultBuffer = 32

// Bus is an in-process event fan-out.
// SendEvent never blocks: when a listener's buffer is full the oldest pending
// event for that listener is dropped to make room for the newest one.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	buffer    int
	sequence  int64
	closed    bool
	metrics   *Metrics
}

// NewBus creates a bus whose listeners buffer up to buffer events.
// A non-positive buffer selects the default capacity.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		listeners: make(map[int]chan Event),
		buffer:    buffer,
		metrics:   NewMetrics(),
	}
}

// SendEvent stamps the event with a sequence number and timestamp and
// delivers it to every listener.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.sequence++
	b.metrics.EventsSent.Add(1)
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
			continue
		default:
		}

		// Listener is behind: drop its oldest event, then retry once
		select {
		case <-ch:
			b.metrics.EventsDropped.Add(1)
		default:
		}
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			slog.Debug("event dropped", "listener", id, "event_type", event.Type)
		}
	}

	return nil
}

// Listen registers a listener. The returned channel is closed when ctx is
// done or the bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.listeners[id] = ch
	b.metrics.Listeners.Add(1)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return ch, nil
}

// remove unregisters and closes a single listener
func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		b.metrics.Listeners.Add(-1)
		close(ch)
	}
}

// Dropped returns how many events were discarded because a listener fell behind
func (b *Bus) Dropped() int64 {
	return b.metrics.EventsDropped.Load()
}

// Metrics returns a snapshot of the bus counters
func (b *Bus) Metrics() MetricsSnapshot {
	return b.metrics.GetSnapshot()
}

// Close stops delivery and closes every listener channel. Safe to call twice.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	b.metrics.Listeners.Store(0)
	return nil
}
