// ABOUTME: Core TUI contracts: Component, KeyHandler, Focusable, Layer
// ABOUTME: Every renderable element and every compositing layer implements one of these

package tui

// CursorMarker is a zero-width marker a component embeds in its output to
// request the hardware cursor at that position. The engine strips it.
const CursorMarker = "\x1b_cellar:c\x07"

// Component is the base interface for all renderable elements.
type Component interface {
	// Render writes the component's lines into out. Lines must not exceed
	// width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate drops cached render state.
	Invalidate()
}

// KeyHandler is implemented by components that consume keyboard input.
// name is a canonical key name such as "esc", "enter", "ctrl+w" or a single
// printable rune. HandleKey reports whether the key was consumed.
type KeyHandler interface {
	HandleKey(name string) bool
}

// Focusable is implemented by components that participate in focus cycling.
type Focusable interface {
	SetFocused(focused bool)
	IsFocused() bool
}

// Layer composites content on top of already rendered screen lines.
// base always holds exactly height lines; the returned slice must too.
type Layer interface {
	Composite(base []string, width, height int) []string
}
