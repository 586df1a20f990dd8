// ABOUTME: VirtualTerminal implements Terminal for tests without a real tty
// ABOUTME: Captures output, serves queued input and tracks raw-mode transitions

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is an in-memory Terminal. Input queued with Feed is
// returned by Read; Close makes Read return io.EOF once the queue drains.
type VirtualTerminal struct {
	mu       sync.Mutex
	cond     *sync.Cond
	out      bytes.Buffer
	input    []string
	closed   bool
	width    int
	height   int
	rawMode  bool
	resizeFn func(width, height int)
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	v := &VirtualTerminal{width: width, height: height}
	v.cond = sync.NewCond(&v.mu)
	return v
}

// EnterRawMode records raw mode.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rawMode = true
	return nil
}

// ExitRawMode records leaving raw mode.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rawMode = false
	return nil
}

// Size returns the configured dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height, nil
}

// Read blocks until input is fed or the terminal is closed. Each fed chunk
// is returned by exactly one Read, mirroring how a tty delivers a keypress.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.input) == 0 && !v.closed {
		v.cond.Wait()
	}
	if len(v.input) == 0 {
		return 0, io.EOF
	}
	chunk := v.input[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		v.input[0] = chunk[n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends to the captured output.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, err := v.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resizeFn = fn
}

// Feed queues input chunks for Read.
func (v *VirtualTerminal) Feed(chunks ...string) {
	v.mu.Lock()
	v.input = append(v.input, chunks...)
	v.mu.Unlock()
	v.cond.Broadcast()
}

// Close makes Read return io.EOF after queued input is consumed.
func (v *VirtualTerminal) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.cond.Broadcast()
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.out.String()
}

// IsRawMode reports whether raw mode is active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rawMode
}

// SetSize changes the dimensions and fires the resize callback.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width, v.height = width, height
	fn := v.resizeFn
	v.mu.Unlock()
	if fn != nil {
		fn(width, height)
	}
}
