// ABOUTME: Tests for StatusBar: right alignment, narrow widths and hint line
// ABOUTME: Output is compared with ANSI stripped

package components

import (
	"testing"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

func TestStatusBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		left      string
		right     string
		width     int
		wantFirst string
	}{
		{"aligned", "8 wines", "2 open", 20, "8 wines       2 open"},
		{"right dropped when tight", "8 wines", "2 open", 12, "8 wines"},
		{"left truncated", "a very long summary", "", 6, "a very"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sb := NewStatusBar()
			sb.SetSummary(tt.left, tt.right)
			sb.SetHint("q quit")
			lines := tui.RenderLines(sb, tt.width)
			if len(lines) != 2 {
				t.Fatalf("lines = %d; want 2", len(lines))
			}
			if got := width.StripANSI(lines[0]); got != tt.wantFirst {
				t.Errorf("first line = %q; want %q", got, tt.wantFirst)
			}
			if got := width.StripANSI(lines[1]); got != width.Truncate("q quit", tt.width) {
				t.Errorf("hint = %q", got)
			}
		})
	}
}

func TestStatusBar_ZeroWidth(t *testing.T) {
	t.Parallel()

	sb := NewStatusBar()
	sb.SetSummary("x", "y")
	if lines := tui.RenderLines(sb, 0); len(lines) != 0 {
		t.Errorf("lines = %d; want 0", len(lines))
	}
}
