package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ch/internal/domain"
)

// Run shows the launcher until the user confirms a command or quits.
// The terminal is restored before Run returns.
func Run(ctx context.Context, catalog *domain.Catalog, opts ...tea.ProgramOption) (string, bool, error) {
	model := NewModel(catalog)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("run terminal ui: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return "", false, nil
	}
	cmd, has := m.Resolved()
	return cmd, has, nil
}
