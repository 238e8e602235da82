package app

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/ids"
)

// App holds the board, the drag coordinator and the event bus they share.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Event system for live updates
	Events events.EventPublisher

	Board *board.Store
	Drag  *drag.Coordinator

	ownsEvents bool
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}

	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	if ac.ids == nil {
		gen, err := ids.New(cfg.Board.IDStrategy)
		if err != nil {
			return nil, err
		}
		ac.ids = gen
	}

	a := &App{Config: cfg, Logger: ac.logger}

	if ac.eventClient != nil {
		a.Events = ac.eventClient
	} else {
		a.Events = events.NewBus(ac.eventBuffer)
		a.ownsEvents = true
	}

	a.Board = board.NewStore(
		board.WithIDGenerator(ac.ids),
		board.WithEventPublisher(a.Events),
		board.WithLogger(a.Logger.With("component", "board")),
		board.WithDebugAssertions(cfg.Board.DebugAssertions),
		board.WithFormats(cfg.Board.ColumnTitle, cfg.Board.CardContent),
	)
	a.Drag = drag.New(a.Board,
		drag.WithEventPublisher(a.Events),
		drag.WithLogger(a.Logger.With("component", "drag")),
	)

	a.Logger.Debug("app initialized", "id_strategy", cfg.Board.IDStrategy, "debug_assertions", cfg.Board.DebugAssertions)
	return a, nil
}

// Close performs cleanup of application resources.
// A publisher passed in with WithEventPublisher is left open for its owner.
func (a *App) Close() error {
	var errs []error
	if a.Drag.State() != drag.Idle {
		a.Drag.DragCancel()
	}
	if a.ownsEvents {
		if bus, ok := a.Events.(*events.Bus); ok {
			m := bus.Metrics()
			a.Logger.Debug("event bus closing",
				"sent", m.EventsSent,
				"dropped", m.EventsDropped,
				"uptime", m.Uptime)
		}
		if err := a.Events.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
