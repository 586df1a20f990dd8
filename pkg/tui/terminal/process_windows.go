// ABOUTME: Windows stub for ProcessTerminal resize handling
// ABOUTME: Windows consoles do not deliver SIGWINCH

//go:build windows

package terminal

func (t *ProcessTerminal) startResizeListener() {}
