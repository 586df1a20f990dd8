// ABOUTME: Pooled line buffer components render into; recycled via sync.Pool
// ABOUTME: The engine and the overlay mount layer acquire one per frame

package tui

import "sync"

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{Lines: make([]string, 0, 64)}
	},
}

// AcquireBuffer takes an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns buf to the pool. buf must not be used afterwards.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer collects rendered lines.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends one line.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends several lines.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// Reset empties the buffer, keeping its capacity.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}

// RenderLines renders c at width into a fresh slice. Convenience for callers
// that need to own the lines beyond the lifetime of a pooled buffer.
func RenderLines(c Component, width int) []string {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	c.Render(buf, width)
	out := make([]string, len(buf.Lines))
	copy(out, buf.Lines)
	return out
}
