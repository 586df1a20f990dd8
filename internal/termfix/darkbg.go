// ABOUTME: Fixes the lipgloss background guess before Bubble Tea can query the terminal
// ABOUTME: Blank-imported by cmd/cellar ahead of every package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

// The catalogue styles assume a dark terminal. Setting the background here
// also stops Bubble Tea's init from sending OSC 10/11 queries, whose late
// replies would arrive as stray key input. This package must not import
// bubbletea so that its init runs first.
func init() {
	lipgloss.SetHasDarkBackground(true)
}
