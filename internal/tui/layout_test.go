package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestComputeLayout_HitTesting(t *testing.T) {
	t.Parallel()

	snap := board.NewSnapshot(
		[]models.Column{{ID: "x"}, {ID: "y"}},
		[]models.Card{{ID: "1", ColumnID: "x"}, {ID: "2", ColumnID: "x"}},
	)
	l := computeLayout(lanes(snap), 0, 120, 30)

	tests := []struct {
		name string
		x, y int
		want drag.Target
	}{
		{name: "header row", x: 5, y: 0, want: drag.Target{}},
		{name: "column title", x: 5, y: boardTop + 1, want: drag.Target{Kind: types.KindColumn, ID: "x"}},
		{name: "first card", x: 5, y: boardTop + 2, want: drag.Target{Kind: types.KindCard, ID: "1"}},
		{name: "second card", x: 5, y: boardTop + 2 + cardHeight, want: drag.Target{Kind: types.KindCard, ID: "2"}},
		{name: "column body below cards", x: 5, y: 20, want: drag.Target{Kind: types.KindColumn, ID: "x"}},
		{name: "column border beside card", x: 0, y: boardTop + 3, want: drag.Target{Kind: types.KindColumn, ID: "x"}},
		{name: "gap between lanes", x: columnWidth, y: 5, want: drag.Target{}},
		{name: "second lane", x: columnWidth + columnGap, y: 5, want: drag.Target{Kind: types.KindColumn, ID: "y"}},
		{name: "past last lane", x: 100, y: 5, want: drag.Target{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, l.at(tt.x, tt.y))
		})
	}
}

func TestComputeLayout_OffsetAndOverflow(t *testing.T) {
	t.Parallel()

	cols := []models.Column{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	var cards []models.Card
	for _, id := range []types.ID{"1", "2", "3", "4", "5"} {
		cards = append(cards, models.Card{ID: id, ColumnID: "a"})
	}
	ls := lanes(board.NewSnapshot(cols, cards))

	// 2 lanes across, 3 cards down
	l := computeLayout(ls, 1, 2*columnWidth+columnGap, boardTop+footerHeight+3+3*cardHeight)

	_, ok := l.find("a")
	assert.False(t, ok, "scrolled past")
	b, ok := l.find("b")
	require.True(t, ok)
	assert.Equal(t, 0, b.x)
	_, ok = l.find("c")
	assert.True(t, ok)
	_, ok = l.find("d")
	assert.False(t, ok, "beyond the screen")

	l = computeLayout(ls, 0, 200, boardTop+footerHeight+3+3*cardHeight)
	_, ok = l.find("3")
	assert.True(t, ok)
	_, ok = l.find("4")
	assert.False(t, ok, "cards that do not fit are not targets")
}

func TestLanes_OrphanLaneIsNotADropTarget(t *testing.T) {
	t.Parallel()

	snap := board.NewSnapshot(
		[]models.Column{{ID: "x"}},
		[]models.Card{{ID: "1", ColumnID: "gone"}},
	)
	ls := lanes(snap)
	require.Len(t, ls, 2)
	assert.True(t, ls[1].orphan)

	l := computeLayout(ls, 0, 120, 30)
	card, ok := l.find("1")
	require.True(t, ok, "orphaned cards can still be dragged out")
	assert.Equal(t, columnWidth+columnGap+2, card.x)

	// Below the orphan card there is no lane target
	assert.True(t, l.at(card.x, 20).None())
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, distance(3, 3, 3, 3))
	assert.Equal(t, 2, distance(0, 0, 2, -1))
	assert.Equal(t, 4, distance(5, 1, 1, 2))
}
