// ABOUTME: Tests for App: key routing between page and overlay, surfaces flows, pointer and scroll lock
// ABOUTME: Screens are composed through the shared mount point, so these tests run sequentially

package interactive

import (
	"strings"
	"testing"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(Deps{Store: catalog.Sample(), MarkdownStyle: "notty"})
	t.Cleanup(app.Close)
	app.Resize(24)
	return app
}

func keys(app *App, names ...string) bool {
	quit := false
	for _, n := range names {
		quit = app.HandleKey(n) || quit
	}
	return quit
}

func screen(app *App) string {
	return width.StripANSI(strings.Join(app.Screen(80, 24), "\n"))
}

func TestApp_ScreenShowsCatalogue(t *testing.T) {
	app := newTestApp(t)

	out := screen(app)
	for _, want := range []string{"Cellar", "Barolo Cannubi", "8 of 8 wines", "enter detail"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if got := len(app.Screen(80, 24)); got != 24 {
		t.Errorf("Screen lines = %d; want 24", got)
	}
}

func TestApp_DetailOpensAndEscClosesOnlyTop(t *testing.T) {
	app := newTestApp(t)
	ctrl := app.Controller()

	keys(app, "enter")
	if ctrl.Len() != 1 {
		t.Fatalf("Len() = %d; want 1 after enter", ctrl.Len())
	}
	keys(app, "r")
	if ctrl.Len() != 2 {
		t.Fatalf("Len() = %d; want 2 after r", ctrl.Len())
	}
	keys(app, "esc")
	if ctrl.Len() != 1 {
		t.Errorf("Len() = %d; want 1 after esc", ctrl.Len())
	}
	keys(app, "esc")
	if ctrl.HasOpenSurfaces() {
		t.Error("surfaces open after second esc")
	}
}

func TestApp_PageKeysBlockedWhileCovered(t *testing.T) {
	app := newTestApp(t)

	keys(app, "a")
	before, _ := app.Page().SelectedWine()
	if quit := keys(app, "q", "down"); quit {
		t.Fatal("q quit while the add form was open")
	}
	after, _ := app.Page().SelectedWine()
	if before != after {
		t.Errorf("page selection moved under the overlay: %d -> %d", before, after)
	}
	if !keys(app, "ctrl+c") {
		t.Error("ctrl+c did not quit while covered")
	}
}

func TestApp_QuitFromPage(t *testing.T) {
	app := newTestApp(t)
	if !keys(app, "q") {
		t.Error("q did not quit from the page")
	}
}

func TestApp_CloseAll(t *testing.T) {
	app := newTestApp(t)

	keys(app, "enter", "r")
	if app.Controller().Len() != 2 {
		t.Fatalf("Len() = %d; want 2", app.Controller().Len())
	}
	keys(app, "ctrl+x")
	if app.Controller().HasOpenSurfaces() {
		t.Error("ctrl+x left surfaces open")
	}
}

func TestApp_DeleteFromPage(t *testing.T) {
	app := newTestApp(t)

	keys(app, "down")
	id, _ := app.Page().SelectedWine()
	keys(app, "d", "right", "enter")

	if app.Controller().HasOpenSurfaces() {
		t.Error("confirm still open")
	}
	if _, err := app.store.Get(id); err == nil {
		t.Errorf("wine %d still in store", id)
	}
	if out := screen(app); !strings.Contains(out, "7 of 7 wines") {
		t.Errorf("page not reloaded:\n%s", out)
	}
}

func TestApp_DeleteFromDetail(t *testing.T) {
	app := newTestApp(t)

	keys(app, "enter", "d")
	if app.Controller().Len() != 2 {
		t.Fatalf("Len() = %d; want detail + confirm", app.Controller().Len())
	}
	keys(app, "right", "enter")
	if app.Controller().HasOpenSurfaces() {
		t.Errorf("surfaces still open: %v", app.Controller().IDs())
	}
	if app.store.Len() != 7 {
		t.Errorf("store Len() = %d; want 7", app.store.Len())
	}
}

func TestApp_SearchMode(t *testing.T) {
	app := newTestApp(t)

	keys(app, "/", "c", "h", "a", "b")
	if !app.Page().Searching() || app.Page().Query() != "chab" {
		t.Fatalf("searching=%v query=%q", app.Page().Searching(), app.Page().Query())
	}
	items := app.Page().list.VisibleItems()
	if len(items) == 0 || items[0].Label != "Chablis Premier Cru" {
		t.Errorf("items = %+v; want Chablis first", items)
	}
	keys(app, "enter")
	if app.Page().Searching() {
		t.Error("enter did not leave search mode")
	}
	keys(app, "/", "esc")
	if app.Page().Query() != "" || len(app.Page().list.VisibleItems()) != 8 {
		t.Errorf("esc did not clear the search: %q", app.Page().Query())
	}
}

func TestApp_FilterApplies(t *testing.T) {
	app := newTestApp(t)

	// toggle white, then apply
	keys(app, "f", "down", " ", "enter")
	f := app.Page().Filter()
	if len(f.Types) != 1 || f.Types[0] != catalog.TypeWhite {
		t.Fatalf("filter = %+v; want white only", f)
	}
	for _, item := range app.Page().list.VisibleItems() {
		if !strings.Contains(item.Description, "white") {
			t.Errorf("non-white wine listed: %+v", item)
		}
	}
	if out := screen(app); !strings.Contains(out, "filter: white") {
		t.Errorf("status missing filter summary:\n%s", out)
	}
}

func TestApp_ScrollLockFollowsStack(t *testing.T) {
	app := newTestApp(t)
	view := app.Page().Viewport()

	keys(app, "enter")
	if got := view.ScrollStyle().Overflow; got != tui.OverflowHidden {
		t.Errorf("overflow = %v; want hidden while covered", got)
	}
	keys(app, "esc")
	if got := view.ScrollStyle(); got != (tui.ScrollStyle{}) {
		t.Errorf("style = %+v; want restored", got)
	}
}

func TestApp_BackdropClickClosesTop(t *testing.T) {
	app := newTestApp(t)

	keys(app, "enter")
	screen(app)
	app.HandlePointer(overlay.PointerEvent{X: 0, Y: 0, Action: overlay.PointerDown})
	app.HandlePointer(overlay.PointerEvent{X: 0, Y: 0, Action: overlay.PointerUp})
	if app.Controller().HasOpenSurfaces() {
		t.Error("backdrop click did not close the detail")
	}
}

func TestApp_WheelScrollsPageWhenUncovered(t *testing.T) {
	store := catalog.NewStore(nil)
	for i := range 30 {
		if _, err := store.Add(catalog.Wine{Name: strings.Repeat("x", i+1), Region: "r", Type: catalog.TypeRed}); err != nil {
			t.Fatal(err)
		}
	}
	app := NewApp(Deps{Store: store})
	t.Cleanup(app.Close)
	screen(app)

	app.HandlePointer(overlay.PointerEvent{Action: overlay.PointerWheelDown})
	if got := app.Page().Viewport().Offset(); got != pageScrollRows {
		t.Errorf("Offset() = %d; want %d", got, pageScrollRows)
	}
}
