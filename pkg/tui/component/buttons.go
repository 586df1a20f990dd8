// ABOUTME: Horizontal row of choice buttons for confirm dialogs and form footers
// ABOUTME: left/right/tab move the highlight; enter activates the highlighted button

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Button is one choice. OnPress runs when it is activated.
type Button struct {
	Label   string
	OnPress func()
}

// Buttons renders a row of buttons with one highlighted.
type Buttons struct {
	buttons  []Button
	selected int
	focused  bool

	normal lipgloss.Style
	active lipgloss.Style
}

// NewButtons creates a row with the first button highlighted.
func NewButtons(buttons ...Button) *Buttons {
	return &Buttons{
		buttons: buttons,
		focused: true,
		normal:  lipgloss.NewStyle().Faint(true),
		active:  lipgloss.NewStyle().Bold(true).Reverse(true),
	}
}

// Select highlights button i.
func (b *Buttons) Select(i int) {
	if i >= 0 && i < len(b.buttons) {
		b.selected = i
	}
}

// Selected returns the highlighted index.
func (b *Buttons) Selected() int {
	return b.selected
}

func (b *Buttons) SetFocused(focused bool) { b.focused = focused }
func (b *Buttons) IsFocused() bool         { return b.focused }
func (b *Buttons) Invalidate()             {}

// HandleKey moves the highlight or activates the highlighted button.
func (b *Buttons) HandleKey(name string) bool {
	if len(b.buttons) == 0 {
		return false
	}
	switch name {
	case "left", "shift+tab":
		b.selected = (b.selected - 1 + len(b.buttons)) % len(b.buttons)
	case "right", "tab":
		b.selected = (b.selected + 1) % len(b.buttons)
	case "enter", " ":
		if fn := b.buttons[b.selected].OnPress; fn != nil {
			fn()
		}
	default:
		return false
	}
	return true
}

// Render draws the buttons right-aligned on one line.
func (b *Buttons) Render(out *tui.RenderBuffer, w int) {
	parts := make([]string, len(b.buttons))
	for i, btn := range b.buttons {
		label := "[ " + btn.Label + " ]"
		if i == b.selected && b.focused {
			parts[i] = b.active.Render(label)
		} else {
			parts[i] = b.normal.Render(label)
		}
	}
	line := strings.Join(parts, "  ")
	if pad := w - width.VisibleWidth(line); pad > 0 {
		line = strings.Repeat(" ", pad) + line
	}
	out.WriteLine(width.Truncate(line, w))
}
