// Package search finds cards by fuzzy-matching their content.
package search

import (
	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// Match is a card that matched a query
type Match struct {
	Card models.Card
	// MatchedIndexes are the byte offsets in Card.Content that matched
	MatchedIndexes []int
	Score          int
}

// cardSource adapts a card slice to fuzzy.Source
type cardSource []models.Card

func (c cardSource) String(i int) string { return c[i].Content }

func (c cardSource) Len() int { return len(c) }

// Cards returns the cards of s matching query, best match first.
// An empty query matches nothing.
func Cards(s board.Snapshot, query string) []Match {
	if query == "" {
		return nil
	}

	cards := cardSource(s.Cards())
	found := fuzzy.FindFrom(query, cards)

	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{
			Card:           cards[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}
	return matches
}
