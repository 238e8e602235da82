package tui

import (
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// lane is one rendered column. The orphan lane collects cards whose column
// is gone; it has no column of its own and cannot be a drop target.
type lane struct {
	column models.Column
	cards  []models.Card
	orphan bool
}

// lanes returns the board's lanes in display order, with the orphan lane last
func lanes(view board.Snapshot) []lane {
	out := make([]lane, 0, view.ColumnCount()+1)
	for _, col := range view.Columns() {
		out = append(out, lane{column: col, cards: view.CardsIn(col.ID)})
	}
	if orphans := view.Orphans(); len(orphans) > 0 {
		out = append(out, lane{cards: orphans, orphan: true})
	}
	return out
}

// hitbox is a screen rectangle mapped to a drag target
type hitbox struct {
	target     drag.Target
	x, y, w, h int
}

func (b hitbox) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// layout is the board's screen geometry. Cards are listed before the lane
// that holds them, so a point over a card resolves to the card.
type layout struct {
	boxes []hitbox
}

// at returns the target under a screen cell, or the zero Target
func (l layout) at(x, y int) drag.Target {
	for _, b := range l.boxes {
		if b.contains(x, y) {
			return b.target
		}
	}
	return drag.Target{}
}

// find returns the hitbox of id
func (l layout) find(id types.ID) (hitbox, bool) {
	for _, b := range l.boxes {
		if b.target.ID == id {
			return b, true
		}
	}
	return hitbox{}, false
}

// visibleLanes is how many lanes fit across width
func visibleLanes(width int) int {
	n := (width + columnGap) / (columnWidth + columnGap)
	return max(n, 1)
}

// visibleCards is how many cards fit in a lane of the given screen height
func visibleCards(height int) int {
	// border top and bottom plus the title row
	n := (laneHeight(height) - 3) / cardHeight
	return max(n, 0)
}

// laneHeight is a lane's total height for a terminal of the given height
func laneHeight(height int) int {
	return max(height-boardTop-footerHeight, 4)
}

// computeLayout places the lanes starting at lane offset
func computeLayout(ls []lane, offset, width, height int) layout {
	var l layout
	shown := visibleLanes(width)
	fit := visibleCards(height)

	for i := offset; i < len(ls) && i < offset+shown; i++ {
		ln := ls[i]
		x := (i - offset) * (columnWidth + columnGap)

		for j, card := range ln.cards {
			if j >= fit {
				break
			}
			l.boxes = append(l.boxes, hitbox{
				target: drag.Target{Kind: types.KindCard, ID: card.ID},
				x:      x + 2,
				y:      boardTop + 2 + j*cardHeight,
				w:      columnWidth - 4,
				h:      cardHeight,
			})
		}

		if ln.orphan {
			continue
		}
		l.boxes = append(l.boxes, hitbox{
			target: drag.Target{Kind: types.KindColumn, ID: ln.column.ID},
			x:      x,
			y:      boardTop,
			w:      columnWidth,
			h:      laneHeight(height),
		})
	}
	return l
}
