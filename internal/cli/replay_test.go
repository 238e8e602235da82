package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/testutil"
)

const dragScript = `
name: cross column drag
steps:
  - {op: create_column, as: todo, title: To do}
  - {op: create_column, as: done, title: Done}
  - {op: create_card, column: todo, as: t1, content: write tests}
  - {op: drag_start, card: t1}
  - {op: drag_over, target: done, kind: column}
  - {op: drag_end}
  - {op: expect, cards: {todo: [], done: [t1]}}
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "script.yaml", content)
}

func runReplayCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, ReplayCmd(), args...)
}

func TestReplay_HumanReadable(t *testing.T) {
	testutil.Isolate(t)

	out, _, err := runReplayCmd(t, writeScript(t, dragScript))
	require.NoError(t, err)

	assert.Contains(t, out, "after 7 steps")
	assert.Contains(t, out, "1. To do (ID: 1)\n     (empty)")
	assert.Contains(t, out, "2. Done (ID: 2)\n     - write tests (ID: 3)")
}

func TestReplay_JSON(t *testing.T) {
	testutil.Isolate(t)

	out, _, err := runReplayCmd(t, writeScript(t, dragScript), "--json")
	require.NoError(t, err)

	var result struct {
		Success bool        `json:"success"`
		Data    BoardOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.True(t, result.Success)
	assert.True(t, result.Data.Changed)
	assert.Equal(t, 7, result.Data.Steps)
	require.Len(t, result.Data.Columns, 2)
	assert.Empty(t, result.Data.Columns[0].Cards)
	require.Len(t, result.Data.Columns[1].Cards, 1)
	assert.Equal(t, "write tests", result.Data.Columns[1].Cards[0].Content)
}

func TestReplay_Quiet(t *testing.T) {
	testutil.Isolate(t)

	out, _, err := runReplayCmd(t, writeScript(t, dragScript), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1:\n2: 3\n", out)
}

func TestReplay_Markdown(t *testing.T) {
	testutil.Isolate(t)

	out, _, err := runReplayCmd(t, writeScript(t, dragScript), "--markdown", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "write tests")
}

func TestReplay_ExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		script string
		args   []string
		code   int
	}{
		{
			name:   "failed expectation",
			script: "steps:\n  - {op: create_column, as: a}\n  - {op: expect, columns: [b]}\n",
			code:   ExitValidation,
		},
		{
			name:   "unknown op",
			script: "steps:\n  - {op: fly}\n",
			code:   ExitDataErr,
		},
		{
			name:   "card in missing column",
			script: "steps:\n  - {op: create_card, column: nope}\n",
			code:   ExitNotFound,
		},
		{
			name:   "conflicting flags",
			script: dragScript,
			args:   []string{"--quiet", "--markdown"},
			code:   ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)

			args := append([]string{writeScript(t, tt.script)}, tt.args...)
			_, stderr, err := runReplayCmd(t, args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCode(err))
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestReplay_MissingFile(t *testing.T) {
	testutil.Isolate(t)

	out, _, err := runReplayCmd(t, filepath.Join(t.TempDir(), "nope.yaml"), "--json")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Contains(t, out, `"code":"NOT_FOUND"`)
	assert.Equal(t, false, testutil.ParseJSON(t, out)["success"])
}

func TestReplay_InvalidConfig(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("SWIMLANE_BOARD_ID_STRATEGY", "snowflake")

	_, _, err := runReplayCmd(t, writeScript(t, dragScript))
	require.Error(t, err)
	assert.Equal(t, ExitValidation, ExitCode(err))
}
