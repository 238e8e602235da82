package board

import (
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
)

// Default formats for new columns and cards; %d is the new item's ordinal
const (
	DefaultColumnTitle = "Column %d"
	DefaultCardContent = "Task %d"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithIDGenerator sets the identifier source shared by columns and cards
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithEventPublisher sets where board change events are sent
func WithEventPublisher(ep events.EventPublisher) Option {
	return func(s *Store) {
		s.publisher = ep
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebugAssertions validates every committed snapshot and panics on an
// invariant violation
func WithDebugAssertions(enabled bool) Option {
	return func(s *Store) {
		s.debug = enabled
	}
}

// WithFormats sets the default column title and card content formats.
// Empty values keep the defaults.
func WithFormats(columnTitle, cardContent string) Option {
	return func(s *Store) {
		if columnTitle != "" {
			s.columnTitle = columnTitle
		}
		if cardContent != "" {
			s.cardContent = cardContent
		}
	}
}
