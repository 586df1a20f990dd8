// ABOUTME: App wires the catalogue page, the overlay controller and the feature surfaces
// ABOUTME: Both front-ends feed it canonical key names and pointer events and draw its screen

package interactive

import (
	"context"
	"fmt"
	"sync"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/internal/config"
	"github.com/mauromedda/cellar-go/internal/eventbus"
	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/internal/surfaces"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
)

// pageScrollRows is how far the mouse wheel moves the page.
const pageScrollRows = 3

// Deps bundles the App's dependencies.
type Deps struct {
	Store    *catalog.Store
	Settings *config.Settings
	Keys     *config.Keybindings
	// MarkdownStyle names the glamour style of the detail surface; empty
	// picks one from the terminal background.
	MarkdownStyle string
}

// App is the front-end independent application. Its methods are safe for
// concurrent use: the raw front-end renders on one goroutine while input
// arrives on another.
type App struct {
	mu sync.Mutex

	store   *catalog.Store
	keys    *config.Keybindings
	mdStyle string
	page    *Page
	ctrl    *overlay.Controller
	events  *eventbus.Bus[overlay.Event]
	ctx     context.Context

	unsubscribe []func()
}

// NewApp builds the app. Extra controller options, such as a render
// callback, are applied after the ones derived from settings.
func NewApp(deps Deps, opts ...overlay.ControllerOption) *App {
	if deps.Settings == nil {
		deps.Settings = config.Defaults()
	}
	if deps.Keys == nil {
		deps.Keys = config.KeybindingsFrom(deps.Settings)
	}
	if deps.Store == nil {
		deps.Store = catalog.Sample()
	}

	a := &App{
		store:   deps.Store,
		keys:    deps.Keys,
		mdStyle: deps.MarkdownStyle,
		page:    NewPage(deps.Store, deps.Keys),
		events:  eventbus.New[overlay.Event](),
	}

	s := deps.Settings
	base := []overlay.ControllerOption{
		overlay.WithScrollHost(a.page.Viewport()),
		overlay.WithGutter(s.Gutter()),
		overlay.WithKeymap(deps.Keys.OverlayKeymap()),
		overlay.WithBus(a.events),
		overlay.WithDefaultCloseButton(s.CloseButton()),
		overlay.WithDefaultPosition(overlay.ParsePosition(s.Overlay.Position)),
	}
	if s.Overlay.MaxWidth > 0 {
		base = append(base, overlay.WithMaxWidth(s.Overlay.MaxWidth))
	}
	a.ctrl = overlay.New(append(base, opts...)...)
	a.ctx = overlay.WithController(context.Background(), a.ctrl)

	a.unsubscribe = append(a.unsubscribe,
		a.store.Subscribe(func(catalog.Change) { a.page.Reload() }),
		a.events.Subscribe(func(ev overlay.Event) {
			log.Debug("app: surface %s %s depth=%d reason=%s", ev.ID, ev.Kind, ev.Depth, ev.Reason)
		}),
	)
	return a
}

// Close releases the controller and store subscriptions.
func (a *App) Close() {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.ctrl.Release()
}

// Controller returns the overlay controller.
func (a *App) Controller() *overlay.Controller {
	return a.ctrl
}

// Context carries the controller for code that opens surfaces.
func (a *App) Context() context.Context {
	return a.ctx
}

// Events publishes surface lifecycle events.
func (a *App) Events() *eventbus.Bus[overlay.Event] {
	return a.events
}

// Page returns the catalogue page.
func (a *App) Page() *Page {
	return a.page
}

// Resize sizes the page for a screen of h rows.
func (a *App) Resize(h int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.page.SetHeight(h)
}

// HandleKey processes one canonical key name and reports whether the app
// should quit. While surfaces are open every key belongs to the overlay
// layer except ctrl+c and the close-all binding.
func (a *App) HandleKey(name string) (quit bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name == "ctrl+c" {
		return true
	}
	if a.ctrl.HasOpenSurfaces() {
		if a.keys.Matches(config.ActionCloseAll, name) {
			a.ctrl.CloseAll()
			return false
		}
		a.ctrl.HandleKey(name)
		return false
	}
	if a.page.Searching() {
		a.page.handleSearchKey(name)
		return false
	}

	kb := a.keys
	switch {
	case kb.Matches(config.ActionQuit, name):
		return true
	case kb.Matches(config.ActionSearch, name):
		a.page.StartSearch()
	case kb.Matches(config.ActionDetail, name):
		a.openDetail()
	case kb.Matches(config.ActionAdd, name):
		a.report(surfaces.OpenWineAdd(a.ctx, a.store, func(w catalog.Wine) { a.page.SelectWine(w.ID) }))
	case kb.Matches(config.ActionDelete, name):
		a.confirmDelete()
	case kb.Matches(config.ActionReview, name):
		a.openReview()
	case kb.Matches(config.ActionFilter, name):
		_, hi := a.store.PriceRange()
		a.report(surfaces.OpenWineFilter(a.ctx, a.page.Filter(), hi, a.page.SetFilter))
	case kb.Matches(config.ActionScrollUp, name):
		a.page.Viewport().ScrollBy(-a.pageRows())
	case kb.Matches(config.ActionScrollDown, name):
		a.page.Viewport().ScrollBy(a.pageRows())
	default:
		a.page.moveSelection(name)
	}
	return false
}

func (a *App) pageRows() int {
	return max(a.page.Viewport().Height()-1, 1)
}

func (a *App) report(_ overlay.SurfaceID, err error) {
	if err != nil {
		log.Warn("app: %v", err)
	}
}

func (a *App) selected() (catalog.Wine, bool) {
	id, ok := a.page.SelectedWine()
	if !ok {
		return catalog.Wine{}, false
	}
	w, err := a.store.Get(id)
	if err != nil {
		log.Warn("app: %v", err)
		return catalog.Wine{}, false
	}
	return w, true
}

func (a *App) openDetail() {
	w, ok := a.selected()
	if !ok {
		return
	}
	a.report(surfaces.OpenWineDetail(a.ctx, a.store, w.ID, surfaces.DetailOptions{
		Keys:          a.keys,
		MarkdownStyle: a.mdStyle,
	}))
}

func (a *App) openReview() {
	w, ok := a.selected()
	if !ok {
		return
	}
	a.report(surfaces.OpenReviewEditor(a.ctx, a.store, w, nil, nil))
}

func (a *App) confirmDelete() {
	w, ok := a.selected()
	if !ok {
		return
	}
	prompt := fmt.Sprintf("Delete %q? This cannot be undone.", w.Name)
	a.report(surfaces.OpenDeleteConfirm(a.ctx, prompt, func() {
		if err := a.store.Delete(w.ID); err != nil {
			log.Warn("app: delete wine %d: %v", w.ID, err)
		}
	}, nil))
}

// HandlePointer processes one mouse event. Events the overlay layer does
// not own scroll the page on wheel.
func (a *App) HandlePointer(ev overlay.PointerEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctrl.HandlePointer(ev) {
		return
	}
	switch ev.Action {
	case overlay.PointerWheelUp:
		a.page.Viewport().ScrollBy(-pageScrollRows)
	case overlay.PointerWheelDown:
		a.page.Viewport().ScrollBy(pageScrollRows)
	}
}

// Render draws the page. It implements tui.Component so the raw engine can
// use the App as its root.
func (a *App) Render(out *tui.RenderBuffer, w int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.page.Render(out, w)
}

func (a *App) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.page.Invalidate()
}

// Layer wraps l so it composites under the App's lock.
func (a *App) Layer(l tui.Layer) tui.Layer {
	return lockedLayer{mu: &a.mu, layer: l}
}

type lockedLayer struct {
	mu    *sync.Mutex
	layer tui.Layer
}

func (l lockedLayer) Composite(base []string, w, h int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.layer.Composite(base, w, h)
}

// Screen renders the page with the mount point on top, exactly h lines.
func (a *App) Screen(w, h int) []string {
	a.Resize(h)
	return tui.ComposeScreen(a, []tui.Layer{a.Layer(overlay.GetOrCreateMountPoint())}, w, h)
}
