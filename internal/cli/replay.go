package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/render"
	"github.com/thenoetrevino/swimlane/internal/script"
)

// ReplayCmd returns the replay command
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Run a gesture script and print the resulting board",
		Long: `Run a YAML gesture script against a fresh board and print the result.

Examples:
  # Human-readable board
  swimlane replay drag.yaml

  # JSON output for agents
  swimlane replay drag.yaml --json

  # Quiet mode (column id, then its card ids, one column per line)
  swimlane replay drag.yaml --quiet

  # Rendered markdown
  swimlane replay drag.yaml --markdown
`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	cmd.Flags().Bool("markdown", false, "Render the board as markdown")
	cmd.Flags().Int("width", 80, "Word wrap width for --markdown")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	markdown, _ := cmd.Flags().GetBool("markdown")
	width, _ := cmd.Flags().GetInt("width")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	if countTrue(jsonOutput, quietMode, markdown) > 1 {
		err := errors.New("--json, --quiet and --markdown are mutually exclusive")
		return fail(formatter, &ExitError{Code: ExitUsage, Err: err})
	}

	s, err := script.Load(args[0])
	if err != nil {
		return fail(formatter, err)
	}

	cliInstance, err := FromCommand(cmd)
	if err != nil {
		return fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	runner := script.NewRunner(cliInstance.App.Board, cliInstance.App.Drag, cliInstance.Logger)
	res, err := runner.Run(cmd.Context(), s)
	if err != nil {
		return fail(formatter, err)
	}

	snap := cliInstance.App.Board.Snapshot()
	out := NewBoardOutput(snap, res)

	switch {
	case quietMode:
		_, err = fmt.Fprintln(formatter.out(), out.IDLines())
		return err
	case markdown:
		rendered, renderErr := render.Terminal(snap, width)
		if renderErr != nil {
			cliInstance.Logger.Warn("markdown rendering failed", "error", renderErr)
		}
		_, err = fmt.Fprintln(formatter.out(), rendered)
		return err
	default:
		return formatter.Success(out)
	}
}

// fail reports err through the formatter and wraps it with its exit code
func fail(f *OutputFormatter, err error) error {
	if fmtErr := f.Error(errorCode(err), err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitCode(err), Err: err}
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
