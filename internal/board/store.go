package board

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Store owns the committed board snapshot and every mutation of it.
// Each operation replaces the snapshot in a single step; lookups that miss
// are no-ops and do not bump the version.
type Store struct {
	mu          sync.RWMutex
	snap        Snapshot
	ids         ids.Generator
	publisher   events.EventPublisher
	logger      *slog.Logger
	debug       bool
	columnTitle string
	cardContent string
}

// NewStore creates an empty board
func NewStore(opts ...Option) *Store {
	s := &Store{
		ids:         ids.NewSequence(),
		logger:      slog.Default(),
		columnTitle: DefaultColumnTitle,
		cardContent: DefaultCardContent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the committed board
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Version returns the committed board version
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.version
}

// CreateColumn appends a column with a fresh id and a default title
func (s *Store) CreateColumn() models.Column {
	var col models.Column
	s.apply("create_column", func(cur Snapshot) (Snapshot, bool) {
		col = models.Column{
			ID:    s.ids.Next(),
			Title: ordinal(s.columnTitle, cur.ColumnCount()+1),
		}
		return cur.withColumn(col), true
	})
	return col
}

// DeleteColumn removes the column and all of its cards in one transition
func (s *Store) DeleteColumn(id types.ID) {
	s.apply("delete_column", func(cur Snapshot) (Snapshot, bool) {
		return cur.withoutColumn(id)
	})
}

// RenameColumn replaces a column's title
func (s *Store) RenameColumn(id types.ID, title string) {
	s.apply("rename_column", func(cur Snapshot) (Snapshot, bool) {
		return cur.withColumnTitle(id, title)
	})
}

// CreateCard appends a card with a fresh id and default content to the end
// of the global sequence. The column must exist.
func (s *Store) CreateCard(columnID types.ID) (models.Card, error) {
	var (
		card models.Card
		err  error
	)
	s.apply("create_card", func(cur Snapshot) (Snapshot, bool) {
		card = models.Card{
			ID:       s.ids.Next(),
			ColumnID: columnID,
			Content:  ordinal(s.cardContent, cur.CardCount()+1),
		}
		var next Snapshot
		next, err = cur.withCard(card)
		return next, err == nil
	})
	if err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// DeleteCard removes a card
func (s *Store) DeleteCard(id types.ID) {
	s.apply("delete_card", func(cur Snapshot) (Snapshot, bool) {
		return cur.withoutCard(id)
	})
}

// EditCardContent replaces a card's content
func (s *Store) EditCardContent(id types.ID, content string) {
	s.apply("edit_card", func(cur Snapshot) (Snapshot, bool) {
		return cur.withCardContent(id, content)
	})
}

// MoveColumn relocates a column to the over column's index
func (s *Store) MoveColumn(activeID, overID types.ID) {
	s.apply("move_column", func(cur Snapshot) (Snapshot, bool) {
		return cur.MoveColumn(activeID, overID)
	})
}

// MoveCard moves a card onto another card or onto a column body.
// See Snapshot.MoveCard for placement rules.
func (s *Store) MoveCard(activeID, overID types.ID, overIsColumn bool) {
	s.apply("move_card", func(cur Snapshot) (Snapshot, bool) {
		return cur.MoveCard(activeID, overID, overIsColumn)
	})
}

// Update applies fn to the committed snapshot as one transition.
// fn must not retain or modify the snapshot it receives; it reports whether
// it produced a change. Returns true when a new snapshot was committed.
func (s *Store) Update(op string, fn func(Snapshot) (Snapshot, bool)) bool {
	return s.apply(op, fn)
}

// apply commits fn's result, assigns the next version and publishes a change event
func (s *Store) apply(op string, fn func(Snapshot) (Snapshot, bool)) bool {
	s.mu.Lock()
	cur := s.snap
	next, changed := fn(cur)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("board op had no effect", "op", op, "version", cur.version)
		return false
	}

	next.version = cur.version + 1
	if s.debug {
		if err := next.Validate(); err != nil {
			s.mu.Unlock()
			panic(fmt.Errorf("%s: %w", op, err))
		}
	}
	s.snap = next
	s.mu.Unlock()

	s.logger.Debug("board changed",
		"op", op,
		"version", next.version,
		"columns", len(next.columns),
		"cards", len(next.cards))

	s.publish(op, next.version)
	return true
}

// publish sends a board change event; failures are logged, never returned
func (s *Store) publish(op string, version uint64) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.SendEvent(events.Event{
		Type:    events.EventBoardChanged,
		Op:      op,
		Version: version,
	}); err != nil {
		s.logger.Warn("failed to publish board event", "op", op, "version", version, "error", err)
	}
}

// ordinal fills a "%d" placeholder with n; formats without one are used as-is
func ordinal(format string, n int) string {
	if !strings.Contains(format, "%d") {
		return format
	}
	return fmt.Sprintf(format, n)
}
