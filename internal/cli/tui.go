package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/tui"
)

// TUICmd returns the command that opens the interactive board
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Open the full-screen board. Drag cards and column titles with the
mouse; keys are configured under key_mappings in the config file.`,
		Args: cobra.NoArgs,
		RunE: RunTUI,
	}
}

// RunTUI opens the interactive board; the root command runs it by default
func RunTUI(cmd *cobra.Command, _ []string) error {
	cliInstance, err := FromCommand(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	cliInstance.Logger.Info("starting tui")
	return tui.Run(cmd.Context(), cliInstance.App)
}
