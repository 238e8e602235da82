package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with the board and drag coordinator
	Config *config.Config
	Logger *slog.Logger

	logFile io.Closer
	ctx     context.Context
}

// NewCLI loads configuration, opens the log file and builds the application
// container. An empty configPath uses the default config location.
func NewCLI(ctx context.Context, configPath string) (*CLI, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:     application,
		Config:  cfg,
		Logger:  logger,
		logFile: logFile,
		ctx:     ctx,
	}, nil
}

// FromCommand builds a CLI using the command's context and --config flag
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	configPath, _ := cmd.Flags().GetString("config")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx, configPath)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	err := c.App.Close()
	if c.logFile != nil {
		if closeErr := c.logFile.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
