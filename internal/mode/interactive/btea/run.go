// ABOUTME: Entry point for the Bubble Tea front-end
// ABOUTME: Creates the tea.Program with alt screen and mouse reporting and blocks until exit

package btea

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/cellar-go/internal/mode/interactive"
)

// Run starts the Bubble Tea app. Blocks until the user quits or ctx ends.
func Run(ctx context.Context, deps interactive.Deps) error {
	m := NewAppModel(deps)
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
