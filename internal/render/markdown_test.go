package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
)

func TestMarkdown(t *testing.T) {
	t.Parallel()

	snap := board.NewSnapshot(
		[]models.Column{{ID: "x", Title: "To do"}, {ID: "y", Title: "Done"}},
		[]models.Card{
			{ID: "1", ColumnID: "x", Content: "write *tests*"},
			{ID: "2", ColumnID: "y", Content: "ship"},
			{ID: "3", ColumnID: "x", Content: "review"},
		},
	)

	want := "# Board (version 0)\n" +
		"\n## To do\n\n" +
		"- write \\*tests\\* `1`\n" +
		"- review `3`\n" +
		"\n## Done\n\n" +
		"- ship `2`\n"
	assert.Equal(t, want, Markdown(snap))
}

func TestMarkdown_EmptyAndOrphans(t *testing.T) {
	t.Parallel()

	snap := board.NewSnapshot(
		[]models.Column{{ID: "x", Title: "Lonely"}},
		[]models.Card{{ID: "9", ColumnID: "gone", Content: "lost"}},
	)

	out := Markdown(snap)
	assert.Contains(t, out, "## Lonely\n\n_empty_\n")
	assert.Contains(t, out, "## Orphaned\n\n- lost `9` (column `gone`)\n")

	assert.Contains(t, Markdown(board.NewSnapshot(nil, nil)), "_No columns_")
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	snap := board.NewSnapshot(
		[]models.Column{{ID: "x", Title: "Backlog"}},
		[]models.Card{{ID: "1", ColumnID: "x", Content: "plan"}},
	)

	out, err := Terminal(snap, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "plan")

	again, err := Terminal(snap, 60)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
