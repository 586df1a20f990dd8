// ABOUTME: Panic recovery helpers that put the terminal back into cooked mode
// ABOUTME: Disables mouse reporting and shows the cursor before reporting the panic

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

const restoreSeq = "\x1b[?1006l\x1b[?1002l\x1b[?1000l\x1b[?25h"

// RestoreOnPanic is deferred in main. On panic it restores t, prints the
// panic with its stack and exits with status 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine is deferred in goroutines that run while the terminal is
// raw. It restores t and reports the panic but leaves shutdown to main.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

func restore(t Terminal) {
	_, _ = t.Write([]byte(restoreSeq))
	_ = t.ExitRawMode()
}
