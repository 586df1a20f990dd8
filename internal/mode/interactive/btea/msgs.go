// ABOUTME: Custom tea.Msg types and translation of Bubble Tea input into app input
// ABOUTME: Key names already match the app's canonical names; pasted runes are split

package btea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/cellar-go/pkg/overlay"
)

// flashTTL is how long a status flash stays on screen.
const flashTTL = 2 * time.Second

// flashExpiredMsg clears the flash set with the same sequence number.
type flashExpiredMsg struct{ seq int }

// keyNames converts a key message into canonical names. A multi-rune
// message, as produced by a paste, becomes one name per rune.
func keyNames(msg tea.KeyMsg) []string {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		names := make([]string, len(msg.Runes))
		for i, r := range msg.Runes {
			names[i] = string(r)
		}
		return names
	}
	return []string{msg.String()}
}

// pointerEvent converts a mouse message. ok is false for buttons the
// overlay layer ignores.
func pointerEvent(msg tea.MouseMsg) (overlay.PointerEvent, bool) {
	ev := overlay.PointerEvent{X: msg.X, Y: msg.Y}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Action = overlay.PointerWheelUp
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Action = overlay.PointerWheelDown
	case msg.Action == tea.MouseActionMotion:
		ev.Action = overlay.PointerMove
	case msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone:
		return ev, false
	case msg.Action == tea.MouseActionPress:
		ev.Action = overlay.PointerDown
	case msg.Action == tea.MouseActionRelease:
		ev.Action = overlay.PointerUp
	default:
		return ev, false
	}
	return ev, true
}
