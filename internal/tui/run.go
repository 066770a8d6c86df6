package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthside/duebook/internal/store"
)

// Run starts the calendar interface and blocks until the user quits.
func Run(ctx context.Context, s *store.Store) error {
	p := tea.NewProgram(New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run calendar: %w", err)
	}
	return nil
}
