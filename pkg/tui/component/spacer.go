// ABOUTME: Vertical spacer that renders blank lines between surface rows

package component

import "github.com/mauromedda/cellar-go/pkg/tui"

// Spacer renders a fixed number of empty lines.
type Spacer struct {
	Height int
}

// NewSpacer creates a spacer of height lines.
func NewSpacer(height int) *Spacer {
	return &Spacer{Height: height}
}

func (s *Spacer) Render(out *tui.RenderBuffer, _ int) {
	for range s.Height {
		out.WriteLine("")
	}
}

func (s *Spacer) Invalidate() {}
