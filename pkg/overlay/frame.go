// ABOUTME: Surface frame: rounded border, pinned header/footer, scrollable content
// ABOUTME: Draws the "[x]" dismiss control into the top border when enabled

package overlay

import (
	"strings"
	"sync"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

const (
	closeGlyph = "[x]"
	// border plus one space of padding on each side
	frameChrome = 4
)

// frame wraps one surface's layout. It owns the content scroll offset and
// nothing else; the surface content stays owned by the caller.
type frame struct {
	layout      SurfaceLayout
	closeButton bool
	title       string
	styles      Styles

	mu      sync.Mutex
	scroll  int
	total   int
	visible int
}

func newFrame(layout SurfaceLayout, opts surfaceOptions, styles Styles) *frame {
	return &frame{
		layout:      layout,
		closeButton: opts.closeButton,
		title:       opts.title,
		styles:      styles,
	}
}

// scrollBy moves the content region by delta rows and reports whether
// the offset changed.
func (f *frame) scrollBy(delta int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev := f.scroll
	f.scroll += delta
	f.clampLocked()
	return f.scroll != prev
}

func (f *frame) offset() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scroll
}

func (f *frame) clampLocked() {
	if maxOff := f.total - f.visible; f.scroll > maxOff {
		f.scroll = maxOff
	}
	if f.scroll < 0 {
		f.scroll = 0
	}
}

func renderRegion(c tui.Component, w int) []string {
	if c == nil {
		return nil
	}
	return tui.RenderLines(c, w)
}

// render draws the frame at outer width w using at most maxHeight rows when
// the header and footer leave room. closeCol is the column of the dismiss
// control within the first row, or -1.
func (f *frame) render(w, maxHeight int) (lines []string, closeCol int) {
	inner := w - frameChrome
	if inner < 1 {
		return nil, -1
	}

	header := renderRegion(f.layout.Header, inner)
	content := renderRegion(f.layout.Content, inner)
	footer := renderRegion(f.layout.Footer, inner)

	chrome := 2
	if f.layout.Header != nil {
		chrome++
	}
	if f.layout.Footer != nil {
		chrome++
	}
	avail := max(maxHeight-chrome-len(header)-len(footer), 1)

	f.mu.Lock()
	f.total = len(content)
	f.visible = min(len(content), avail)
	f.clampLocked()
	scroll, visible := f.scroll, f.visible
	f.mu.Unlock()

	top, closeCol := f.topBorder(w)
	lines = append(lines, top)
	for _, l := range header {
		lines = append(lines, f.body(l, inner, ""))
	}
	if f.layout.Header != nil {
		lines = append(lines, f.separator(w))
	}
	for i := 0; i < visible; i++ {
		mark := ""
		switch {
		case i == 0 && scroll > 0:
			mark = "▲"
		case i == visible-1 && scroll+visible < len(content):
			mark = "▼"
		}
		lines = append(lines, f.body(content[scroll+i], inner, mark))
	}
	if f.layout.Footer != nil {
		lines = append(lines, f.separator(w))
	}
	for _, l := range footer {
		lines = append(lines, f.body(l, inner, ""))
	}
	lines = append(lines, f.styles.Border.Render("╰"+strings.Repeat("─", w-2)+"╯"))
	return lines, closeCol
}

func (f *frame) topBorder(w int) (string, int) {
	span := w - 2
	closeCol := -1
	var b strings.Builder
	b.WriteString(f.styles.Border.Render("╭"))

	used := 0
	reserve := 0
	if f.closeButton && span >= len(closeGlyph)+2 {
		reserve = len(closeGlyph) + 1
	}
	if f.title != "" && span-reserve > 4 {
		title := width.Truncate(f.title, span-reserve-4)
		b.WriteString(f.styles.Border.Render("─ "))
		b.WriteString(f.styles.Title.Render(title))
		b.WriteString(f.styles.Border.Render(" "))
		used = 3 + width.VisibleWidth(title)
	}
	if fill := span - used - reserve; fill > 0 {
		b.WriteString(f.styles.Border.Render(strings.Repeat("─", fill)))
	}
	if reserve > 0 {
		closeCol = 1 + span - reserve
		b.WriteString(f.styles.CloseButton.Render(closeGlyph))
		b.WriteString(f.styles.Border.Render("─"))
	}
	b.WriteString(f.styles.Border.Render("╮"))
	return b.String(), closeCol
}

func (f *frame) separator(w int) string {
	return f.styles.Border.Render("├" + strings.Repeat("─", w-2) + "┤")
}

func (f *frame) body(line string, inner int, mark string) string {
	right := f.styles.Border.Render("│")
	if mark != "" {
		right = f.styles.ScrollMark.Render(mark)
	}
	return f.styles.Border.Render("│") + " " + width.PadRight(line, inner) + " " + right
}
