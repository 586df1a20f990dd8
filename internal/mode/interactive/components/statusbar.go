// ABOUTME: Two-line status bar: summary with right-aligned counters, then key hints
// ABOUTME: Safe to update from the input goroutine while the render loop draws it

package components

import (
	"strings"
	"sync"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// StatusBar displays status information at the bottom of the screen.
type StatusBar struct {
	mu    sync.Mutex
	left  string
	right string
	hint  string
}

// NewStatusBar creates an empty StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSummary sets the first line's left and right-aligned parts.
func (s *StatusBar) SetSummary(left, right string) {
	s.mu.Lock()
	s.left, s.right = left, right
	s.mu.Unlock()
}

// SetHint sets the key hint line.
func (s *StatusBar) SetHint(hint string) {
	s.mu.Lock()
	s.hint = hint
	s.mu.Unlock()
}

// Summary returns the first line's parts.
func (s *StatusBar) Summary() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.left, s.right
}

// Render writes the two lines. The right part is dropped before the left
// one is truncated.
func (s *StatusBar) Render(out *tui.RenderBuffer, w int) {
	s.mu.Lock()
	left, right, hint := s.left, s.right, s.hint
	s.mu.Unlock()

	if w <= 0 {
		return
	}
	line := width.Truncate(left, w)
	if gap := w - width.VisibleWidth(left) - width.VisibleWidth(right); right != "" && gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	}
	out.WriteLine(line)
	out.WriteLine("\x1b[2m" + width.Truncate(hint, w) + "\x1b[0m")
}

func (s *StatusBar) Invalidate() {}
