// ABOUTME: Full-screen TUI engine: row-level differential rendering plus layer compositing
// ABOUTME: Render requests coalesce through a buffered channel; output uses CSI 2026 synchronized updates

package tui

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// TUI renders a root container plus any number of layers on top of it.
type TUI struct {
	root   *Container
	writer io.Writer

	mu       sync.Mutex
	width    int
	height   int
	layers   []Layer
	prev     []string
	full     bool
	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// New creates an engine writing to w with the given screen size.
func New(w io.Writer, termWidth, termHeight int) *TUI {
	return &TUI{
		root:     NewContainer(),
		writer:   w,
		width:    termWidth,
		height:   termHeight,
		full:     true,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Container returns the root container.
func (t *TUI) Container() *Container {
	return t.root
}

// AddLayer stacks l above the root and every previously added layer.
// Adding the same layer twice is a no-op.
func (t *TUI) AddLayer(l Layer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.layers {
		if existing == l {
			return
		}
	}
	t.layers = append(t.layers, l)
}

// Size returns the current screen size.
func (t *TUI) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize updates the screen size and schedules a full redraw.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width, t.height = w, h
	t.full = true
	t.mu.Unlock()
	t.root.Invalidate()
	t.RequestRender()
}

// RequestRender schedules a render; concurrent requests coalesce.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default:
	}
}

// Start runs the render loop in a goroutine until Stop.
func (t *TUI) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	go t.loop()
}

// Stop ends the render loop. Safe to call more than once.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
		close(t.stopCh)
	})
}

// RenderOnce renders synchronously.
func (t *TUI) RenderOnce() {
	t.render()
}

// Frame returns the lines of the most recent frame.
func (t *TUI) Frame() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.prev))
	copy(out, t.prev)
	return out
}

func (t *TUI) loop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.renderCh:
			t.render()
		}
	}
}

func (t *TUI) render() {
	t.mu.Lock()
	w, h := t.width, t.height
	prev := t.prev
	full := t.full
	layers := make([]Layer, len(t.layers))
	copy(layers, t.layers)
	t.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	lines := ComposeScreen(t.root, layers, w, h)
	cursorRow, cursorCol := extractCursor(lines)

	var b strings.Builder
	if full || len(prev) != len(lines) {
		b.WriteString("\x1b[H\x1b[2J")
		prev = nil
	}
	for row, line := range lines {
		if row < len(prev) && prev[row] == line {
			continue
		}
		moveTo(&b, row, 0)
		b.WriteString("\x1b[2K")
		b.WriteString(line)
	}
	if cursorRow >= 0 {
		moveTo(&b, cursorRow, cursorCol)
		b.WriteString("\x1b[?25h")
	} else {
		b.WriteString("\x1b[?25l")
	}

	if b.Len() > 0 {
		_, _ = io.WriteString(t.writer, "\x1b[?2026h"+b.String()+"\x1b[?2026l")
	}

	t.mu.Lock()
	t.prev = lines
	t.full = false
	t.mu.Unlock()
}

// ComposeScreen renders root at w and applies layers in order, returning
// exactly h lines. Both front-ends share it.
func ComposeScreen(root Component, layers []Layer, w, h int) []string {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	root.Render(buf, w)

	lines := make([]string, h)
	for i := 0; i < h && i < buf.Len(); i++ {
		lines[i] = buf.Lines[i]
	}
	for _, l := range layers {
		lines = l.Composite(lines, w, h)
	}
	return lines
}

// extractCursor strips the first CursorMarker and returns its position,
// or (-1, -1) when no component asked for the cursor.
func extractCursor(lines []string) (int, int) {
	for i, line := range lines {
		idx := strings.Index(line, CursorMarker)
		if idx < 0 {
			continue
		}
		before := line[:idx]
		lines[i] = before + line[idx+len(CursorMarker):]
		return i, width.VisibleWidth(before)
	}
	return -1, -1
}

// moveTo emits an absolute cursor position (0-based arguments).
func moveTo(b *strings.Builder, row, col int) {
	var num [20]byte
	b.WriteString("\x1b[")
	b.Write(strconv.AppendInt(num[:0], int64(row+1), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(col+1), 10))
	b.WriteByte('H')
}
