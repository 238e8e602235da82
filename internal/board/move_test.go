package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward shifts intervening left", from: 1, to: 3, want: []string{"A", "C", "D", "B"}},
		{name: "backward to front", from: 3, to: 0, want: []string{"D", "A", "B", "C"}},
		{name: "adjacent swap", from: 0, to: 1, want: []string{"B", "A", "C", "D"}},
		{name: "same index", from: 2, to: 2, want: []string{"A", "B", "C", "D"}},
		{name: "negative from", from: -1, to: 2, want: []string{"A", "B", "C", "D"}},
		{name: "to out of range", from: 0, to: 4, want: []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []string{"A", "B", "C", "D"}
			got := Move(in, tt.from, tt.to)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"A", "B", "C", "D"}, in, "input must not be modified")
		})
	}
}

func TestMove_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Move([]int{}, 0, 0))
	assert.Empty(t, Move[int](nil, 0, 1))
}
