package app

import (
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	eventBuffer int
	ids         ids.Generator
	logger      *slog.Logger
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithEventBuffer sets the per-listener buffer of the bus App creates
func WithEventBuffer(n int) Option {
	return func(cfg *appConfig) {
		cfg.eventBuffer = n
	}
}

// WithIDGenerator overrides the generator chosen by board.id_strategy
func WithIDGenerator(gen ids.Generator) Option {
	return func(cfg *appConfig) {
		cfg.ids = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
