package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser and blocks until the user quits. The undo
// coordinator is stopped on the way out so a still-armed window cannot
// fire after teardown.
func Run(cfg Config) error {
	defer cfg.Undo.Stop()

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
