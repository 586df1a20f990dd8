// ABOUTME: Single-line text input driven by canonical key names
// ABOUTME: Horizontal scrolling keeps the cursor visible; Emacs-style ctrl bindings

package component

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Input is a single-line text field.
type Input struct {
	text        []rune
	cursor      int
	placeholder string
	focused     bool
	scrollOff   int
	onChange    func(string)

	placeholderStyle lipgloss.Style
}

// NewInput creates an empty Input.
func NewInput() *Input {
	return &Input{
		text:             make([]rune, 0, 32),
		placeholderStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Text returns the current value.
func (inp *Input) Text() string {
	return string(inp.text)
}

// SetText replaces the value and moves the cursor to the end.
func (inp *Input) SetText(s string) {
	inp.text = []rune(s)
	inp.cursor = len(inp.text)
	inp.changed()
}

// CursorPos returns the cursor position in runes.
func (inp *Input) CursorPos() int {
	return inp.cursor
}

// SetPlaceholder sets the text shown while the value is empty.
func (inp *Input) SetPlaceholder(p string) {
	inp.placeholder = p
}

// OnChange registers fn to run after every edit.
func (inp *Input) OnChange(fn func(string)) {
	inp.onChange = fn
}

func (inp *Input) SetFocused(focused bool) { inp.focused = focused }
func (inp *Input) IsFocused() bool         { return inp.focused }
func (inp *Input) Invalidate()             {}

// HandleKey edits the value. Keys it does not understand are not consumed,
// so forms can use them for navigation.
func (inp *Input) HandleKey(name string) bool {
	switch name {
	case "backspace", "ctrl+h":
		inp.backspace()
	case "delete", "ctrl+d":
		inp.delete()
	case "left", "ctrl+b":
		inp.cursor = max(inp.cursor-1, 0)
	case "right", "ctrl+f":
		inp.cursor = min(inp.cursor+1, len(inp.text))
	case "home", "ctrl+a":
		inp.cursor = 0
	case "end", "ctrl+e":
		inp.cursor = len(inp.text)
	case "ctrl+u":
		inp.text = append(inp.text[:0:0], inp.text[inp.cursor:]...)
		inp.cursor = 0
		inp.changed()
	case "ctrl+k":
		inp.text = inp.text[:inp.cursor]
		inp.changed()
	default:
		if utf8.RuneCountInString(name) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(name)
		if r < 0x20 {
			return false
		}
		inp.insert(r)
	}
	return true
}

func (inp *Input) insert(r rune) {
	inp.text = append(inp.text, 0)
	copy(inp.text[inp.cursor+1:], inp.text[inp.cursor:])
	inp.text[inp.cursor] = r
	inp.cursor++
	inp.changed()
}

func (inp *Input) backspace() {
	if inp.cursor == 0 {
		return
	}
	inp.text = append(inp.text[:inp.cursor-1], inp.text[inp.cursor:]...)
	inp.cursor--
	inp.changed()
}

func (inp *Input) delete() {
	if inp.cursor >= len(inp.text) {
		return
	}
	inp.text = append(inp.text[:inp.cursor], inp.text[inp.cursor+1:]...)
	inp.changed()
}

func (inp *Input) changed() {
	if inp.onChange != nil {
		inp.onChange(string(inp.text))
	}
}

// Render draws one line. When focused the cursor marker is embedded at the
// cursor column.
func (inp *Input) Render(out *tui.RenderBuffer, w int) {
	if w <= 0 {
		return
	}
	if len(inp.text) == 0 && inp.placeholder != "" {
		line := inp.placeholderStyle.Render(width.Truncate(inp.placeholder, w-1))
		if inp.focused {
			line = tui.CursorMarker + line
		}
		out.WriteLine(line)
		return
	}

	avail := w - 1
	if inp.cursor < inp.scrollOff {
		inp.scrollOff = inp.cursor
	}
	for inp.scrollOff < inp.cursor && width.VisibleWidth(string(inp.text[inp.scrollOff:inp.cursor])) > avail {
		inp.scrollOff++
	}

	before := string(inp.text[inp.scrollOff:inp.cursor])
	after := string(inp.text[inp.cursor:])
	var b strings.Builder
	b.WriteString(before)
	if inp.focused {
		b.WriteString(tui.CursorMarker)
	}
	b.WriteString(after)
	out.WriteLine(width.Truncate(b.String(), w))
}
