// ABOUTME: Tests for the raw-terminal front-end over a VirtualTerminal
// ABOUTME: Covers quit, end of input, cancellation and the input dispatcher

package interactive

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui/key"
	"github.com/mauromedda/cellar-go/pkg/tui/terminal"
)

func runAsync(ctx context.Context, vt *terminal.VirtualTerminal) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, vt, Deps{Store: catalog.Sample(), MarkdownStyle: "notty"})
	}()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v; want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRun_QuitKey(t *testing.T) {
	vt := terminal.NewVirtualTerminal(80, 24)
	done := runAsync(context.Background(), vt)
	vt.Feed("q")
	wait(t, done)

	if vt.IsRawMode() {
		t.Error("raw mode still active after Run")
	}
	out := vt.Output()
	if !strings.Contains(out, key.EnableMouse) || !strings.Contains(out, key.DisableMouse) {
		t.Error("mouse reporting not toggled")
	}
}

func TestRun_EndOfInput(t *testing.T) {
	vt := terminal.NewVirtualTerminal(80, 24)
	done := runAsync(context.Background(), vt)
	vt.Close()
	wait(t, done)
}

func TestRun_ContextCancel(t *testing.T) {
	vt := terminal.NewVirtualTerminal(80, 24)
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, vt)
	cancel()
	wait(t, done)
	vt.Close()
}

func TestRun_OverlayConsumesQuitKey(t *testing.T) {
	vt := terminal.NewVirtualTerminal(80, 24)
	done := runAsync(context.Background(), vt)
	// open the add form, type q into it, then cancel and quit
	vt.Feed("a", "q", "\x1b", "q")
	wait(t, done)
}

func TestDispatch(t *testing.T) {
	app := newTestApp(t)

	if dispatch(app, "\r") {
		t.Fatal("enter quit")
	}
	if app.Controller().Len() != 1 {
		t.Fatalf("Len() = %d; want detail open", app.Controller().Len())
	}
	screen(app)

	// press and release on the backdrop in one read
	if dispatch(app, "\x1b[<0;1;1M\x1b[<0;1;1m") {
		t.Fatal("click quit")
	}
	if app.Controller().HasOpenSurfaces() {
		t.Error("backdrop click did not close the detail")
	}
	if !dispatch(app, "x\x1b[Zq") {
		t.Error("q in a batched read did not quit")
	}
}

func TestPointerEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   key.Mouse
		want overlay.PointerAction
	}{
		{key.Mouse{Action: key.MousePress}, overlay.PointerDown},
		{key.Mouse{Action: key.MouseRelease}, overlay.PointerUp},
		{key.Mouse{Action: key.MouseMotion}, overlay.PointerMove},
		{key.Mouse{Action: key.MouseWheelUp}, overlay.PointerWheelUp},
		{key.Mouse{Action: key.MouseWheelDown}, overlay.PointerWheelDown},
	}
	for _, tt := range tests {
		ev := pointerEvent(key.Mouse{X: 3, Y: 4, Action: tt.in.Action})
		if ev.Action != tt.want || ev.X != 3 || ev.Y != 4 {
			t.Errorf("pointerEvent(%v) = %+v; want action %v at 3,4", tt.in.Action, ev, tt.want)
		}
	}
}
