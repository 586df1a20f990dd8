// ABOUTME: Raw-terminal front-end: pkg/tui engine with the overlay mount point as a layer
// ABOUTME: One goroutine reads the tty; an errgroup dispatches input and stops the engine

package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/key"
	"github.com/mauromedda/cellar-go/pkg/tui/terminal"
)

// errQuit ends the dispatch loop on a quit key or end of input.
var errQuit = errors.New("quit")

// Run drives the catalogue on term until a quit key, end of input or ctx
// cancellation.
func Run(ctx context.Context, term terminal.Terminal, deps Deps) error {
	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.ExitRawMode() }()

	w, h, err := term.Size()
	if err != nil {
		log.Debug("interactive: terminal size: %v; using 80x24", err)
		w, h = 80, 24
	}
	engine := tui.New(term, w, h)
	app := NewApp(deps, overlay.WithRenderFunc(engine.RequestRender))
	defer app.Close()

	app.Resize(h)
	engine.Container().Add(app)
	engine.AddLayer(app.Layer(overlay.GetOrCreateMountPoint()))
	term.OnResize(func(w, h int) {
		app.Resize(h)
		engine.SetSize(w, h)
	})

	_, _ = io.WriteString(term, key.EnableMouse)
	defer func() { _, _ = io.WriteString(term, key.DisableMouse+"\x1b[?25h") }()

	engine.Start()
	defer engine.Stop()
	engine.RequestRender()

	chunks, readErr := readInput(term)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case err := <-readErr:
				if errors.Is(err, io.EOF) {
					return errQuit
				}
				return fmt.Errorf("reading terminal: %w", err)
			case data := <-chunks:
				if dispatch(app, data) {
					return errQuit
				}
				engine.RequestRender()
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		engine.Stop()
		return nil
	})

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readInput copies terminal reads onto a channel. The goroutine exits on
// the first read error, which it reports on the second channel.
func readInput(term terminal.Terminal) (<-chan string, <-chan error) {
	chunks := make(chan string, 16)
	errs := make(chan error, 1)
	go func() {
		defer terminal.RecoverGoroutine(term)
		buf := make([]byte, 4096)
		for {
			n, err := term.Read(buf)
			if n > 0 {
				chunks <- string(buf[:n])
			}
			if err != nil {
				errs <- err
				return
			}
		}
	}()
	return chunks, errs
}

// dispatch feeds one read to the app and reports whether it asked to quit.
func dispatch(app *App, data string) bool {
	for _, ev := range key.Split(data) {
		if m, ok := key.ParseMouse(ev); ok {
			app.HandlePointer(pointerEvent(m))
			continue
		}
		k := key.Parse(ev)
		if k.Type == key.KeyUnknown {
			log.Debug("interactive: unknown input %q", ev)
			continue
		}
		if app.HandleKey(k.Name()) {
			return true
		}
	}
	return false
}

func pointerEvent(m key.Mouse) overlay.PointerEvent {
	ev := overlay.PointerEvent{X: m.X, Y: m.Y}
	switch m.Action {
	case key.MousePress:
		ev.Action = overlay.PointerDown
	case key.MouseRelease:
		ev.Action = overlay.PointerUp
	case key.MouseMotion:
		ev.Action = overlay.PointerMove
	case key.MouseWheelUp:
		ev.Action = overlay.PointerWheelUp
	case key.MouseWheelDown:
		ev.Action = overlay.PointerWheelDown
	}
	return ev
}
