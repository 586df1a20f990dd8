// ABOUTME: SIGWINCH listener for ProcessTerminal on unix platforms
// ABOUTME: Re-queries the size and calls the registered resize callback

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for range sigCh {
			t.notifyResize()
		}
	}()
}
