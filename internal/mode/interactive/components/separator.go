// ABOUTME: Separator renders a dim horizontal rule, optionally with an inline label
// ABOUTME: Divides the catalogue header, list and status bar in the raw front-end

package components

import (
	"strings"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Separator is a thin horizontal rule rendered as dim box-drawing characters.
type Separator struct {
	label string
}

// NewSeparator creates a plain rule.
func NewSeparator() *Separator { return &Separator{} }

// NewLabeledSeparator creates a rule with label near its left end.
func NewLabeledSeparator(label string) *Separator { return &Separator{label: label} }

// Render writes a single dim line of width w.
func (s *Separator) Render(out *tui.RenderBuffer, w int) {
	if w <= 0 {
		out.WriteLine("")
		return
	}
	line := strings.Repeat("─", w)
	if s.label != "" && width.VisibleWidth(s.label)+6 <= w {
		head := "── " + s.label + " "
		line = head + strings.Repeat("─", w-width.VisibleWidth(head))
	}
	out.WriteLine("\x1b[2m" + line + "\x1b[0m")
}

func (s *Separator) Invalidate() {}
