// ABOUTME: Shared plumbing for feature surfaces: controller lookup, self-close, styles
// ABOUTME: Every surface opens through the controller found in the context

package surfaces

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	focusStyle = lipgloss.NewStyle().Reverse(true)
)

// base carries what every surface needs to close itself.
type base struct {
	ctrl *overlay.Controller
	id   overlay.SurfaceID
}

func (b *base) close() {
	b.ctrl.Close(b.id)
}

func (b *base) Invalidate() {}

func controller(ctx context.Context) (*overlay.Controller, error) {
	c, err := overlay.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening surface: %w", err)
	}
	return c, nil
}

// renderLayout draws a layout without a frame, for callers that render a
// surface directly.
func renderLayout(l overlay.SurfaceLayout, out *tui.RenderBuffer, w int) {
	for _, c := range []tui.Component{l.Header, l.Content, l.Footer} {
		if c != nil {
			c.Render(out, w)
		}
	}
}

// lineFunc adapts a render function into a component.
type lineFunc func(w int) []string

func (f lineFunc) Render(out *tui.RenderBuffer, w int) { out.WriteLines(f(w)) }
func (lineFunc) Invalidate() {}
