// ABOUTME: Viewport is a fixed-height scrollable window onto a child Component
// ABOUTME: Its ScrollStyle (overflow + right padding) is what the overlay scroll lock snapshots

package tui

import (
	"strings"
	"sync"

	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Overflow controls whether a Viewport scrolls.
type Overflow int

const (
	// OverflowAuto scrolls and draws a scrollbar gutter when content is taller
	// than the viewport.
	OverflowAuto Overflow = iota
	// OverflowHidden freezes the scroll offset and hides the scrollbar.
	OverflowHidden
)

// String returns the CSS-like keyword for o.
func (o Overflow) String() string {
	if o == OverflowHidden {
		return "hidden"
	}
	return "auto"
}

// ScrollStyle is the mutable style of a scrollable page.
type ScrollStyle struct {
	Overflow     Overflow
	PaddingRight int
}

// ScrollbarWidth is the gutter an OverflowAuto viewport reserves on the right.
const ScrollbarWidth = 1

// Viewport shows at most Height rows of its child starting at the scroll
// offset. It is safe for concurrent use.
type Viewport struct {
	mu     sync.Mutex
	child  Component
	height int
	offset int
	total  int
	style  ScrollStyle
}

// NewViewport wraps child in a viewport of the given height.
func NewViewport(child Component, height int) *Viewport {
	return &Viewport{child: child, height: height}
}

// SetHeight changes the number of visible rows.
func (v *Viewport) SetHeight(h int) {
	v.mu.Lock()
	v.height = h
	v.clampLocked()
	v.mu.Unlock()
}

// Height returns the number of visible rows.
func (v *Viewport) Height() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.height
}

// ScrollStyle returns the current style.
func (v *Viewport) ScrollStyle() ScrollStyle {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.style
}

// SetScrollStyle replaces the current style.
func (v *Viewport) SetScrollStyle(s ScrollStyle) {
	v.mu.Lock()
	v.style = s
	v.mu.Unlock()
}

// ScrollBy moves the offset by delta rows. It reports false, leaving the
// offset untouched, when overflow is hidden.
func (v *Viewport) ScrollBy(delta int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.style.Overflow == OverflowHidden {
		return false
	}
	v.offset += delta
	v.clampLocked()
	return true
}

// ScrollTo sets the offset so row is visible.
func (v *Viewport) ScrollTo(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.style.Overflow == OverflowHidden {
		return
	}
	switch {
	case row < v.offset:
		v.offset = row
	case row >= v.offset+v.height:
		v.offset = row - v.height + 1
	}
	v.clampLocked()
}

// Offset returns the first visible row.
func (v *Viewport) Offset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

func (v *Viewport) clampLocked() {
	maxOff := v.total - v.height
	if v.offset > maxOff {
		v.offset = maxOff
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// Render draws the visible window. The child is laid out at the width left
// after the scrollbar gutter (auto overflow) and the right padding, so a
// locked viewport with padding equal to the gutter keeps its layout.
func (v *Viewport) Render(out *RenderBuffer, w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	gutter := 0
	if v.style.Overflow == OverflowAuto {
		gutter = ScrollbarWidth
	}
	inner := w - gutter - v.style.PaddingRight
	if inner <= 0 || v.height <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	v.child.Render(buf, inner)
	v.total = buf.Len()
	v.clampLocked()

	thumbStart, thumbEnd := v.thumbLocked()
	pad := strings.Repeat(" ", v.style.PaddingRight)
	for row := 0; row < v.height; row++ {
		line := ""
		if i := v.offset + row; i < buf.Len() {
			line = buf.Lines[i]
		}
		line = width.PadRight(line, inner)
		if gutter > 0 {
			if row >= thumbStart && row < thumbEnd {
				line += "┃"
			} else {
				line += " "
			}
		}
		out.WriteLine(line + pad)
	}
}

// thumbLocked returns the scrollbar thumb rows, empty when nothing scrolls.
func (v *Viewport) thumbLocked() (int, int) {
	if v.total <= v.height || v.height <= 0 {
		return 0, 0
	}
	size := max(v.height*v.height/v.total, 1)
	start := v.offset * v.height / v.total
	if start+size > v.height {
		start = v.height - size
	}
	return start, start + size
}

// Invalidate invalidates the child.
func (v *Viewport) Invalidate() {
	v.child.Invalidate()
}
