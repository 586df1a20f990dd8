// ABOUTME: Tests for region resolution and frame drawing
// ABOUTME: Pinned header/footer, scrollable content, dismiss control placement, composite output

package overlay

import (
	"strings"
	"testing"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

type sectioned struct{ layout SurfaceLayout }

func (s sectioned) Layout() SurfaceLayout { return s.layout }
func (s sectioned) Render(out *tui.RenderBuffer, w int) { s.layout.Content.Render(out, w) }
func (sectioned) Invalidate() {}

func TestLayout_FirstMatchWins(t *testing.T) {
	t.Parallel()

	h1, h2 := staticLines{"h1"}, staticLines{"h2"}
	body := staticLines{"body"}
	l := Layout(Header(h1), Content(nil), Header(h2), Content(body), Section{Region: Region(9), Body: h2})

	if got := tui.RenderLines(l.Header, 10); got[0] != "h1" {
		t.Errorf("header = %v; want h1", got)
	}
	if got := tui.RenderLines(l.Content, 10); got[0] != "body" {
		t.Errorf("content = %v; want body", got)
	}
	if l.Footer != nil {
		t.Error("footer resolved from no footer section")
	}
}

func TestLayoutOf_PlainContentFillsContentRegion(t *testing.T) {
	t.Parallel()

	body := staticLines{"x"}
	l := layoutOf(body)
	if l.Header != nil || l.Footer != nil || l.Content == nil {
		t.Errorf("layoutOf(plain) = %+v", l)
	}
}

func TestFrame_HeaderAndFooterPinned(t *testing.T) {
	t.Parallel()

	content := make(staticLines, 20)
	for i := range content {
		content[i] = "line"
	}
	content[0] = "first"
	content[19] = "last"
	f := newFrame(Layout(Header(staticLines{"Title"}), Content(content), Footer(staticLines{"ok"})),
		surfaceOptions{closeButton: true}, DefaultStyles())

	lines, _ := f.render(30, 10)
	if len(lines) != 10 {
		t.Fatalf("rows = %d; want 10", len(lines))
	}
	for i, l := range lines {
		if w := width.VisibleWidth(l); w != 30 {
			t.Errorf("row %d width = %d; want 30", i, w)
		}
	}
	text := plain(lines)
	if !strings.Contains(text, "Title") || !strings.Contains(text, "ok") || !strings.Contains(text, "first") {
		t.Fatalf("frame missing regions:\n%s", text)
	}
	if !strings.Contains(text, "▼") {
		t.Error("no overflow marker while content is clipped")
	}

	f.scrollBy(100)
	lines, _ = f.render(30, 10)
	text = plain(lines)
	if strings.Contains(text, "first") || !strings.Contains(text, "last") {
		t.Errorf("scrolled frame:\n%s", text)
	}
	if !strings.Contains(text, "Title") || !strings.Contains(text, "ok") {
		t.Errorf("header or footer scrolled away:\n%s", text)
	}
}

func TestFrame_CloseControlAndTitle(t *testing.T) {
	t.Parallel()

	f := newFrame(SurfaceLayout{Content: staticLines{"x"}}, surfaceOptions{closeButton: true, title: "Delete"}, DefaultStyles())
	lines, closeCol := f.render(30, 10)
	top := width.StripANSI(lines[0])

	if !strings.Contains(top, "Delete") {
		t.Errorf("top border %q lacks title", top)
	}
	if got := width.SliceByColumn(top, closeCol, closeCol+3); got != closeGlyph {
		t.Errorf("at closeCol %d found %q; want %q", closeCol, got, closeGlyph)
	}

	f = newFrame(SurfaceLayout{Content: staticLines{"x"}}, surfaceOptions{}, DefaultStyles())
	lines, closeCol = f.render(30, 10)
	if closeCol != -1 || strings.Contains(plain(lines), closeGlyph) {
		t.Errorf("hidden control drawn at %d", closeCol)
	}
}

func TestFrame_MissingContentRendersEmptyRegion(t *testing.T) {
	t.Parallel()

	f := newFrame(Layout(Header(staticLines{"only header"})), surfaceOptions{}, DefaultStyles())
	lines, _ := f.render(30, 10)
	if len(lines) != 4 {
		t.Errorf("rows = %d; want 4 (border, header, separator, border)\n%s", len(lines), plain(lines))
	}
}

func TestFrame_TooNarrow(t *testing.T) {
	t.Parallel()

	f := newFrame(SurfaceLayout{Content: staticLines{"x"}}, surfaceOptions{}, DefaultStyles())
	if lines, _ := f.render(4, 10); lines != nil {
		t.Errorf("render(4) = %v; want nil", lines)
	}
}

func TestController_CompositeUsesSurfaceLayout(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	base := make([]string, 12)
	base[0] = "\x1b[1mbackground\x1b[0m"

	if got := c.Composite(base, 60, 12); got[0] != base[0] {
		t.Errorf("empty stack altered base: %q", got[0])
	}

	c.Open(sectioned{Layout(Header(staticLines{"Header"}), Content(staticLines{"Body"}))}, WithWidth(30))
	out := c.Composite(base, 60, 12)
	if len(out) != 12 {
		t.Fatalf("rows = %d; want 12", len(out))
	}
	text := plain(out)
	for _, want := range []string{"background", "Header", "Body", closeGlyph} {
		if !strings.Contains(text, want) {
			t.Errorf("composite lacks %q:\n%s", want, text)
		}
	}
	for i, l := range out {
		if w := width.VisibleWidth(l); w > 60 {
			t.Errorf("row %d width = %d; want <= 60", i, w)
		}
	}
}

func TestPlaceRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Position
		want int
	}{
		{PositionCenter, 7},
		{PositionTop, 1},
		{PositionBottom, 13},
	}
	for _, tt := range tests {
		if got := placeRow(tt.p, 24, 10); got != tt.want {
			t.Errorf("placeRow(%v) = %d; want %d", tt.p, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	if ParsePosition("top") != PositionTop || ParsePosition("bottom") != PositionBottom || ParsePosition("x") != PositionCenter {
		t.Error("ParsePosition mapping is wrong")
	}
}
