package board

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// recordingPublisher captures events sent by the store
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) SendEvent(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	return nil, nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Op)
	}
	return out
}

func TestStore_CreateColumnDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := store.CreateColumn()
	second := store.CreateColumn()

	assert.Equal(t, "Column 1", first.Title)
	assert.Equal(t, "Column 2", second.Title)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []types.ID{first.ID, second.ID}, columnIDs(store.Snapshot().Columns()))
	assert.Equal(t, uint64(2), store.Version())
}

func TestStore_CustomFormats(t *testing.T) {
	t.Parallel()

	store := NewStore(WithFormats("Lane %d", "Untitled"))
	col := store.CreateColumn()
	card, err := store.CreateCard(col.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lane 1", col.Title)
	assert.Equal(t, "Untitled", card.Content)
}

func TestStore_IdentifiersUniqueAcrossKinds(t *testing.T) {
	t.Parallel()

	store := NewStore(WithIDGenerator(ids.UUIDs{}))
	seen := make(map[types.ID]struct{})

	for range 5 {
		col := store.CreateColumn()
		seen[col.ID] = struct{}{}
		for range 3 {
			card, err := store.CreateCard(col.ID)
			require.NoError(t, err)
			seen[card.ID] = struct{}{}
		}
	}

	assert.Len(t, seen, 20)
	assert.NoError(t, store.Snapshot().Validate())
}

func TestStore_CreateCardRequiresColumn(t *testing.T) {
	t.Parallel()

	store := NewStore()
	before := store.Version()

	_, err := store.CreateCard("missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Equal(t, before, store.Version())
	assert.Zero(t, store.Snapshot().CardCount())
}

func TestStore_CreateCardAppendsGlobally(t *testing.T) {
	t.Parallel()

	store := NewStore()
	x := store.CreateColumn()
	y := store.CreateColumn()

	a, err := store.CreateCard(y.ID)
	require.NoError(t, err)
	b, err := store.CreateCard(x.ID)
	require.NoError(t, err)

	assert.Equal(t, "Task 1", a.Content)
	assert.Equal(t, "Task 2", b.Content)
	assert.Equal(t, []types.ID{a.ID, b.ID}, cardIDs(store.Snapshot().Cards()))
}

func TestStore_DeleteColumnCascades(t *testing.T) {
	t.Parallel()

	rec := &recordingPublisher{}
	store := NewStore(WithEventPublisher(rec), WithDebugAssertions(true))
	x := store.CreateColumn()
	y := store.CreateColumn()
	for range 3 {
		_, err := store.CreateCard(x.ID)
		require.NoError(t, err)
	}
	keep, err := store.CreateCard(y.ID)
	require.NoError(t, err)

	store.DeleteColumn(x.ID)

	snap := store.Snapshot()
	assert.Empty(t, snap.CardsIn(x.ID))
	assert.Equal(t, []types.ID{keep.ID}, cardIDs(snap.Cards()))
	assert.Equal(t, []types.ID{y.ID}, columnIDs(snap.Columns()))
	assert.NoError(t, snap.Validate())

	// One transition, one event, for column and cards together
	ops := rec.ops()
	assert.Equal(t, "delete_column", ops[len(ops)-1])
	assert.Equal(t, 1, countOf(ops, "delete_column"))
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	rec := &recordingPublisher{}
	store := NewStore(WithEventPublisher(rec))
	col := store.CreateColumn()
	card, err := store.CreateCard(col.ID)
	require.NoError(t, err)

	store.DeleteCard(card.ID)
	version := store.Version()
	store.DeleteCard(card.ID)
	assert.Equal(t, version, store.Version())

	store.DeleteColumn(col.ID)
	version = store.Version()
	store.DeleteColumn(col.ID)
	store.DeleteColumn("never-existed")
	assert.Equal(t, version, store.Version())

	assert.Equal(t, []string{"create_column", "create_card", "delete_card", "delete_column"}, rec.ops())
}

func TestStore_RenameAndEdit(t *testing.T) {
	t.Parallel()

	store := NewStore()
	col := store.CreateColumn()
	card, err := store.CreateCard(col.ID)
	require.NoError(t, err)

	store.RenameColumn(col.ID, "Doing")
	store.EditCardContent(card.ID, "Write docs")
	store.RenameColumn("missing", "x")
	store.EditCardContent("missing", "x")

	snap := store.Snapshot()
	gotCol, _ := snap.Column(col.ID)
	gotCard, _ := snap.Card(card.ID)
	assert.Equal(t, "Doing", gotCol.Title)
	assert.Equal(t, "Write docs", gotCard.Content)
	assert.Equal(t, uint64(4), snap.Version())
}

func TestStore_SnapshotsAreStable(t *testing.T) {
	t.Parallel()

	store := NewStore()
	col := store.CreateColumn()
	card, err := store.CreateCard(col.ID)
	require.NoError(t, err)

	held := store.Snapshot()
	store.EditCardContent(card.ID, "edited")
	store.DeleteColumn(col.ID)

	got, ok := held.Card(card.ID)
	require.True(t, ok)
	assert.Equal(t, "Task 1", got.Content)
	assert.Equal(t, 1, held.ColumnCount())
}

func TestStore_MoveCardScenarios(t *testing.T) {
	t.Parallel()

	setup := func() (*Store, models.Column, models.Column, []models.Card) {
		store := NewStore(WithDebugAssertions(true))
		x := store.CreateColumn()
		y := store.CreateColumn()
		c1, _ := store.CreateCard(x.ID)
		c2, _ := store.CreateCard(x.ID)
		c3, _ := store.CreateCard(y.ID)
		return store, x, y, []models.Card{c1, c2, c3}
	}

	t.Run("onto card in other column", func(t *testing.T) {
		store, x, y, c := setup()
		store.MoveCard(c[0].ID, c[2].ID, false)

		snap := store.Snapshot()
		assert.Equal(t, []types.ID{c[1].ID}, cardIDs(snap.CardsIn(x.ID)))
		assert.Equal(t, []types.ID{c[0].ID, c[2].ID}, cardIDs(snap.CardsIn(y.ID)))
		moved, _ := snap.Card(c[0].ID)
		assert.Equal(t, y.ID, moved.ColumnID)
	})

	t.Run("onto column body", func(t *testing.T) {
		store, x, y, c := setup()
		store.MoveCard(c[0].ID, y.ID, true)

		snap := store.Snapshot()
		assert.Equal(t, []types.ID{c[0].ID, c[1].ID, c[2].ID}, cardIDs(snap.Cards()))
		assert.Equal(t, []types.ID{c[1].ID}, cardIDs(snap.CardsIn(x.ID)))
		assert.Equal(t, []types.ID{c[0].ID, c[2].ID}, cardIDs(snap.CardsIn(y.ID)))
	})

	t.Run("self move", func(t *testing.T) {
		store, _, _, c := setup()
		version := store.Version()
		store.MoveCard(c[0].ID, c[0].ID, false)
		store.MoveCard(c[0].ID, c[0].ID, true)
		assert.Equal(t, version, store.Version())
	})
}

func TestStore_MoveColumn(t *testing.T) {
	t.Parallel()

	store := NewStore()
	a, b, c, d := store.CreateColumn(), store.CreateColumn(), store.CreateColumn(), store.CreateColumn()

	store.MoveColumn(b.ID, d.ID)
	assert.Equal(t, []types.ID{a.ID, c.ID, d.ID, b.ID}, columnIDs(store.Snapshot().Columns()))

	version := store.Version()
	store.MoveColumn(a.ID, a.ID)
	store.MoveColumn(a.ID, "missing")
	assert.Equal(t, version, store.Version())
}

func TestStore_UpdateCommitsOnce(t *testing.T) {
	t.Parallel()

	rec := &recordingPublisher{}
	store := NewStore(WithEventPublisher(rec))
	x := store.CreateColumn()
	y := store.CreateColumn()
	card, err := store.CreateCard(x.ID)
	require.NoError(t, err)

	committed := store.Update("drag", func(s Snapshot) (Snapshot, bool) {
		s, a := s.MoveCard(card.ID, y.ID, true)
		s, b := s.MoveColumn(y.ID, x.ID)
		return s, a || b
	})
	require.True(t, committed)

	snap := store.Snapshot()
	assert.Equal(t, []types.ID{y.ID, x.ID}, columnIDs(snap.Columns()))
	assert.Equal(t, []types.ID{card.ID}, cardIDs(snap.CardsIn(y.ID)))
	assert.Equal(t, uint64(4), snap.Version())
	assert.Equal(t, "drag", rec.ops()[len(rec.ops())-1])

	assert.False(t, store.Update("noop", func(s Snapshot) (Snapshot, bool) { return s, false }))
}

func TestStore_DebugAssertionsPanicOnViolation(t *testing.T) {
	t.Parallel()

	store := NewStore(WithDebugAssertions(true))
	col := store.CreateColumn()

	assert.Panics(t, func() {
		store.Update("corrupt", func(s Snapshot) (Snapshot, bool) {
			next := s
			next.cards = append(next.Cards(), models.Card{ID: "orphan", ColumnID: "nowhere"})
			return next, true
		})
	})

	// The violating snapshot was never committed
	assert.Zero(t, store.Snapshot().CardCount())
	_, ok := store.Snapshot().Column(col.ID)
	assert.True(t, ok)
}

func countOf(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}
