// ABOUTME: Vertical form of labeled single-line inputs with focus cycling
// ABOUTME: tab/shift+tab and up/down move focus; other keys edit the focused field

package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// Field is one labeled input.
type Field struct {
	Name  string
	Label string
	Input *Input
}

// Form stacks fields vertically, one focused at a time.
type Form struct {
	fields  []Field
	focus   int
	errText string

	labelStyle lipgloss.Style
	focusStyle lipgloss.Style
	errStyle   lipgloss.Style
}

// NewForm creates a form and focuses its first field.
func NewForm(fields ...Field) *Form {
	f := &Form{
		fields:     fields,
		labelStyle: lipgloss.NewStyle().Faint(true),
		focusStyle: lipgloss.NewStyle().Bold(true),
		errStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
	f.setFocus(0)
	return f
}

// AddField appends a field with a fresh Input.
func (f *Form) AddField(name, label, placeholder string) *Input {
	inp := NewInput()
	inp.SetPlaceholder(placeholder)
	f.fields = append(f.fields, Field{Name: name, Label: label, Input: inp})
	f.setFocus(f.focus)
	return inp
}

// Value returns the value of the named field, "" when absent.
func (f *Form) Value(name string) string {
	for _, fl := range f.fields {
		if fl.Name == name {
			return fl.Input.Text()
		}
	}
	return ""
}

// Values returns every field value keyed by name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		out[fl.Name] = fl.Input.Text()
	}
	return out
}

// Focused returns the name of the focused field.
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Name
}

// SetError shows msg under the fields; "" clears it.
func (f *Form) SetError(msg string) {
	f.errText = msg
}

func (f *Form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	f.focus = (i + len(f.fields)) % len(f.fields)
	for j := range f.fields {
		f.fields[j].Input.SetFocused(j == f.focus)
	}
}

func (f *Form) Invalidate() {}

// HandleKey moves focus or edits the focused field.
func (f *Form) HandleKey(name string) bool {
	if len(f.fields) == 0 {
		return false
	}
	switch name {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return true
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return true
	}
	return f.fields[f.focus].Input.HandleKey(name)
}

// Render draws "label: value" rows, labels padded to a common column.
func (f *Form) Render(out *tui.RenderBuffer, w int) {
	labelW := 0
	for _, fl := range f.fields {
		labelW = max(labelW, width.VisibleWidth(fl.Label))
	}
	labelW = min(labelW, w/2)
	for i, fl := range f.fields {
		style := f.labelStyle
		if i == f.focus {
			style = f.focusStyle
		}
		label := style.Render(width.PadRight(fl.Label, labelW))
		lines := tui.RenderLines(fl.Input, max(w-labelW-2, 1))
		value := ""
		if len(lines) > 0 {
			value = lines[0]
		}
		out.WriteLine(label + ": " + value)
	}
	if f.errText != "" {
		for _, l := range width.Wrap(f.errText, w) {
			out.WriteLine(f.errStyle.Render(l))
		}
	}
}
