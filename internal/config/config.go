package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/swimlane/internal/config/colors"
	"github.com/thenoetrevino/swimlane/internal/ids"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override (e.g. SWIMLANE_LOG_LEVEL)
const EnvPrefix = "SWIMLANE_"

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Board       BoardConfig        `yaml:"board" envPrefix:"BOARD_"`
	Drag        DragConfig         `yaml:"drag" envPrefix:"DRAG_"`
	Log         LogConfig          `yaml:"log" envPrefix:"LOG_"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// BoardConfig controls how new columns and cards are created
type BoardConfig struct {
	ColumnTitle     string `yaml:"column_title" env:"COLUMN_TITLE"`
	CardContent     string `yaml:"card_content" env:"CARD_CONTENT"`
	IDStrategy      string `yaml:"id_strategy" env:"ID_STRATEGY"`
	DebugAssertions bool   `yaml:"debug_assertions" env:"DEBUG_ASSERTIONS"`
}

// DragConfig controls the terminal gesture layer
type DragConfig struct {
	// ActivationDistance is how many cells the pointer must travel before a
	// press becomes a drag. Zero starts the drag on press.
	ActivationDistance int `yaml:"activation_distance" env:"ACTIVATION_DISTANCE"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	Path  string `yaml:"path" env:"PATH"`
}

// DefaultActivationDistance is the drag threshold when none is configured
const DefaultActivationDistance = 1

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := base()
	cfg.applyDefaults()
	return cfg
}

// base is the starting point files and env are layered onto. Values that
// may legitimately be zero are preset here instead of in applyDefaults.
func base() *Config {
	return &Config{
		Drag: DragConfig{ActivationDistance: DefaultActivationDistance},
	}
}

// loadThemeFile loads and merges theme from SWIMLANE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvPrefix + "THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Fall back to defaults if we can't determine config path
		return finish(base())
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path.
// A missing file yields the defaults; env overrides apply either way.
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return finish(base())
	}
	if err != nil {
		return nil, err
	}

	config := base()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return finish(config)
}

// finish layers theme file, env overrides and defaults onto a parsed config
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects settings the rest of the program cannot honour
func (c *Config) Validate() error {
	if _, err := ids.New(c.Board.IDStrategy); err != nil {
		return fmt.Errorf("%w: board.id_strategy: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Drag.ActivationDistance < 0 {
		return fmt.Errorf("%w: drag.activation_distance must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseLevel maps a level name onto slog levels; empty means info
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", name)
	}
}

// Path returns where Load reads the config file from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "swimlane", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "swimlane", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.ColumnTitle == "" {
		c.Board.ColumnTitle = "Column %d"
	}
	if c.Board.CardContent == "" {
		c.Board.CardContent = "Task %d"
	}
	if c.Board.IDStrategy == "" {
		c.Board.IDStrategy = ids.StrategySequence
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
