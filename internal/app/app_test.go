package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestNew(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.Board)
	require.NotNil(t, app.Drag)
	require.NotNil(t, app.Events)
	assert.Equal(t, drag.Idle, app.Drag.State())

	col := app.Board.CreateColumn()
	assert.Equal(t, types.ID("1"), col.ID)
	assert.Equal(t, "Column 1", col.Title)
}

func TestNew_UsesBoardConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board.ColumnTitle = "Lane %d"
	cfg.Board.CardContent = "Item %d"
	cfg.Board.IDStrategy = ids.StrategyUUID

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	col := app.Board.CreateColumn()
	card, err := app.Board.CreateCard(col.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lane 1", col.Title)
	assert.Equal(t, "Item 1", card.Content)
	assert.Len(t, col.ID.String(), 36)
	assert.NotEqual(t, col.ID, card.ID)
}

func TestNew_RejectsUnknownStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Board.IDStrategy = "snowflake"

	_, err := New(cfg)
	assert.ErrorIs(t, err, ids.ErrUnknownStrategy)
}

func TestNew_SharesBusBetweenBoardAndDrag(t *testing.T) {
	app, err := New(nil, WithEventBuffer(8))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := app.Events.Listen(ctx)
	require.NoError(t, err)

	col := app.Board.CreateColumn()
	require.NoError(t, app.Drag.DragStart(drag.Target{ID: col.ID}))

	var got []events.EventType
	for len(got) < 2 {
		select {
		case ev := <-ch:
			got = append(got, ev.Type)
		case <-time.After(time.Second):
			t.Fatalf("timed out, got %v", got)
		}
	}
	assert.Equal(t, []events.EventType{events.EventBoardChanged, events.EventDragStarted}, got)
}

func TestClose_LeavesExternalPublisherOpen(t *testing.T) {
	bus := events.NewBus(0)
	app, err := New(nil, WithEventPublisher(bus))
	require.NoError(t, err)

	require.NoError(t, app.Close())
	assert.NoError(t, bus.SendEvent(events.Event{Type: events.EventBoardChanged}))
	require.NoError(t, bus.Close())
}

func TestClose_CancelsActiveDrag(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)

	col := app.Board.CreateColumn()
	require.NoError(t, app.Drag.DragStart(drag.Target{ID: col.ID}))
	require.Equal(t, drag.DraggingColumn, app.Drag.State())

	require.NoError(t, app.Close())
	assert.Equal(t, drag.Idle, app.Drag.State())
}
