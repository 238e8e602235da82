package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/swimlane/internal/app"
)

// Run starts the full-screen board and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, a *app.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, a),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
