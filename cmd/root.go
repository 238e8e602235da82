package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/cli"
)

// NewRootCmd builds the command tree. Running the root opens the board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swimlane",
		Short: "Swimlane - a drag-and-drop kanban board for the terminal",
		Long: `Swimlane is a kanban board for the terminal. Drag cards between columns
and reorder columns with the mouse, or replay scripted gestures.`,
		Args:          cobra.NoArgs,
		RunE:          cli.RunTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/swimlane/config.yaml)")

	rootCmd.AddCommand(cli.TUICmd())
	rootCmd.AddCommand(cli.ReplayCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	return rootCmd
}

// Execute runs the root command and returns the exit code
func Execute(ctx context.Context) int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Commands that return an ExitError have already reported it
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			rootCmd.PrintErrln("Error:", err)
		}
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}
