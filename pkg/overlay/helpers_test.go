// ABOUTME: Shared fixtures for overlay tests: static content, key recorder, fake scroll host
// ABOUTME: Every controller built here is released on test cleanup

package overlay

import (
	"strings"
	"sync"
	"testing"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

type staticLines []string

func (s staticLines) Render(out *tui.RenderBuffer, w int) {
	for _, l := range s {
		out.WriteLine(width.Truncate(l, w))
	}
}

func (staticLines) Invalidate() {}

type keyRecorder struct {
	staticLines
	mu   sync.Mutex
	keys []string
}

func (k *keyRecorder) HandleKey(name string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys = append(k.keys, name)
	return true
}

func (k *keyRecorder) got() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.keys...)
}

type fakeHost struct {
	mu     sync.Mutex
	style  tui.ScrollStyle
	reads  int
	writes []tui.ScrollStyle
}

func (h *fakeHost) ScrollStyle() tui.ScrollStyle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reads++
	return h.style
}

func (h *fakeHost) SetScrollStyle(s tui.ScrollStyle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style = s
	h.writes = append(h.writes, s)
}

func newTestController(t *testing.T, opts ...ControllerOption) *Controller {
	t.Helper()
	c := New(opts...)
	t.Cleanup(c.Release)
	return c
}

func plain(lines []string) string {
	return width.StripANSI(strings.Join(lines, "\n"))
}
