// ABOUTME: Terminal interface for raw mode, size queries, input and output
// ABOUTME: Implemented by ProcessTerminal (real tty) and VirtualTerminal (tests)

package terminal

import "io"

// Terminal abstracts the tty the raw-mode front-end draws on.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	OnResize(fn func(width, height int))
}
