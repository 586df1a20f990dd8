// ABOUTME: lipgloss styles for surface frames, the dismiss control and the backdrop
// ABOUTME: DefaultStyles is used unless the controller is built with WithStyles

package overlay

import "github.com/charmbracelet/lipgloss"

// Styles controls how frames and the backdrop are drawn.
type Styles struct {
	Border      lipgloss.Style
	Title       lipgloss.Style
	CloseButton lipgloss.Style
	Backdrop    lipgloss.Style
	ScrollMark  lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		CloseButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Backdrop:    lipgloss.NewStyle().Faint(true),
		ScrollMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	}
}
