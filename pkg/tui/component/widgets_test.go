// ABOUTME: Tests for Text, Buttons, Form and Spacer
// ABOUTME: Covers wrapping, button activation and form focus cycling

package component

import (
	"strings"
	"testing"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

func TestText_WrapsAndRewrapsOnWidthChange(t *testing.T) {
	t.Parallel()

	txt := NewText("delete this wine from the cellar")
	if got := tui.RenderLines(txt, 12); len(got) != 3 {
		t.Errorf("rows at 12 = %d (%q); want 3", len(got), got)
	}
	if got := tui.RenderLines(txt, 80); len(got) != 1 {
		t.Errorf("rows at 80 = %d; want 1", len(got))
	}
	txt.SetContent("a\nb")
	if got := tui.RenderLines(txt, 80); len(got) != 2 {
		t.Errorf("rows after SetContent = %d; want 2", len(got))
	}
}

func TestButtons_CycleAndPress(t *testing.T) {
	t.Parallel()

	var pressed string
	b := NewButtons(
		Button{Label: "Cancel", OnPress: func() { pressed = "cancel" }},
		Button{Label: "Delete", OnPress: func() { pressed = "delete" }},
	)

	b.HandleKey("right")
	b.HandleKey("enter")
	if pressed != "delete" {
		t.Errorf("pressed = %q; want delete", pressed)
	}

	b.HandleKey("tab")
	if b.Selected() != 0 {
		t.Errorf("Selected() = %d; want wrap to 0", b.Selected())
	}
	b.HandleKey("left")
	if b.Selected() != 1 {
		t.Errorf("Selected() = %d; want wrap to 1", b.Selected())
	}
	if b.HandleKey("x") {
		t.Error("HandleKey(x) = true; want false")
	}

	line := width.StripANSI(tui.RenderLines(b, 40)[0])
	if !strings.HasSuffix(line, "[ Cancel ]  [ Delete ]") || width.VisibleWidth(line) != 40 {
		t.Errorf("render = %q", line)
	}
}

func TestForm_FocusAndValues(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.AddField("name", "Name", "Barolo")
	f.AddField("vintage", "Vintage", "2019")

	typeKeys(f, "Rioja")
	f.HandleKey("tab")
	typeKeys(f, "2015")

	if f.Value("name") != "Rioja" || f.Value("vintage") != "2015" {
		t.Errorf("values = %v", f.Values())
	}
	f.HandleKey("tab")
	if f.Focused() != "name" {
		t.Errorf("Focused() = %q; want wrap to name", f.Focused())
	}
	f.HandleKey("shift+tab")
	if f.Focused() != "vintage" {
		t.Errorf("Focused() = %q; want vintage", f.Focused())
	}

	f.SetError("vintage must be a year")
	text := width.StripANSI(strings.Join(tui.RenderLines(f, 40), "\n"))
	for _, want := range []string{"Name", "Rioja", "Vintage", "2015", "vintage must be a year"} {
		if !strings.Contains(text, want) {
			t.Errorf("render lacks %q:\n%s", want, text)
		}
	}
}

func typeKeys(h tui.KeyHandler, s string) {
	for _, r := range s {
		h.HandleKey(string(r))
	}
}

func TestSpacer(t *testing.T) {
	t.Parallel()

	if got := tui.RenderLines(NewSpacer(2), 10); len(got) != 2 {
		t.Errorf("rows = %d; want 2", len(got))
	}
}
