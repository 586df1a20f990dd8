// ABOUTME: Word-wrapped static text with an optional lipgloss style
// ABOUTME: Wrapping is cached per width

package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Text renders static text wrapped to the available width.
type Text struct {
	content string
	style   *lipgloss.Style

	cachedWidth int
	cached      []string
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content, cachedWidth: -1}
}

// NewStyledText creates a Text whose lines are rendered with style.
func NewStyledText(content string, style lipgloss.Style) *Text {
	return &Text{content: content, style: &style, cachedWidth: -1}
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	t.content = content
	t.cachedWidth = -1
}

// Content returns the unwrapped text.
func (t *Text) Content() string {
	return t.content
}

// Render writes the wrapped lines into the buffer.
func (t *Text) Render(out *tui.RenderBuffer, w int) {
	if t.cachedWidth != w {
		t.cached = width.Wrap(t.content, w)
		if t.style != nil {
			for i, l := range t.cached {
				t.cached[i] = t.style.Render(l)
			}
		}
		t.cachedWidth = w
	}
	out.WriteLines(t.cached)
}

// Invalidate drops the wrap cache.
func (t *Text) Invalidate() {
	t.cachedWidth = -1
}
