// ABOUTME: Markdown component rendered through glamour
// ABOUTME: Output is cached per width; falls back to wrapped raw text if glamour fails

package component

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Markdown renders markdown with terminal styling.
type Markdown struct {
	content string
	style   string

	cachedWidth int
	cached      []string
}

// NewMarkdown creates a Markdown component. The glamour style is picked
// from the terminal background.
func NewMarkdown(content string) *Markdown {
	return &Markdown{content: content, cachedWidth: -1}
}

// NewMarkdownWithStyle uses a named glamour style such as "dark" or "notty".
func NewMarkdownWithStyle(content, style string) *Markdown {
	return &Markdown{content: content, style: style, cachedWidth: -1}
}

// SetContent replaces the markdown source.
func (md *Markdown) SetContent(content string) {
	md.content = content
	md.cachedWidth = -1
}

func (md *Markdown) Invalidate() {
	md.cachedWidth = -1
}

func (md *Markdown) Render(out *tui.RenderBuffer, w int) {
	if md.cachedWidth != w {
		md.cached = md.renderLines(w)
		md.cachedWidth = w
	}
	out.WriteLines(md.cached)
}

func (md *Markdown) renderLines(w int) []string {
	if md.content == "" || w <= 0 {
		return nil
	}
	styleOpt := glamour.WithAutoStyle()
	if md.style != "" {
		styleOpt = glamour.WithStandardStyle(md.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(w))
	if err != nil {
		return width.Wrap(md.content, w)
	}
	rendered, err := r.Render(md.content)
	if err != nil {
		return width.Wrap(md.content, w)
	}
	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = width.Truncate(strings.TrimRight(l, " "), w)
	}
	return lines
}
