// ABOUTME: Tests for Separator: rule width, label placement and dim styling
// ABOUTME: Zero and negative widths must render one empty line without panicking

package components

import (
	"strings"
	"testing"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

func renderSeparator(s *Separator, w int) []string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	s.Render(buf, w)
	return append([]string(nil), buf.Lines...)
}

func TestSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		label string
		want  string
	}{
		{name: "plain", width: 12, want: strings.Repeat("─", 12)},
		{name: "one column", width: 1, want: "─"},
		{name: "zero", width: 0, want: ""},
		{name: "negative", width: -3, want: ""},
		{name: "labeled", width: 16, label: "wines", want: "── wines " + strings.Repeat("─", 7)},
		{name: "label too wide", width: 8, label: "wines", want: strings.Repeat("─", 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSeparator()
			if tt.label != "" {
				s = NewLabeledSeparator(tt.label)
			}
			lines := renderSeparator(s, tt.width)
			if len(lines) != 1 {
				t.Fatalf("lines = %d; want 1", len(lines))
			}
			if got := width.StripANSI(lines[0]); got != tt.want {
				t.Errorf("visible = %q; want %q", got, tt.want)
			}
			if tt.width > 0 && width.VisibleWidth(lines[0]) != tt.width {
				t.Errorf("width = %d; want %d", width.VisibleWidth(lines[0]), tt.width)
			}
		})
	}
}

func TestSeparator_Dim(t *testing.T) {
	t.Parallel()

	line := renderSeparator(NewSeparator(), 10)[0]
	if !strings.HasPrefix(line, "\x1b[2m") || !strings.HasSuffix(line, "\x1b[0m") {
		t.Errorf("line = %q; want wrapped in dim and reset", line)
	}
}
