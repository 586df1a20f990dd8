// ABOUTME: Catalogue page: search line, scrollable wine list and status bar
// ABOUTME: Its Viewport is the scroll host the overlay controller locks

package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/internal/config"
	"github.com/mauromedda/cellar-go/internal/mode/interactive/components"
	"github.com/mauromedda/cellar-go/internal/surfaces"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/component"
)

// pageChrome is the number of rows around the list viewport.
const pageChrome = 6

var titleStyle = lipgloss.NewStyle().Bold(true)

// Page is the background the overlay stack covers. It is not safe for
// concurrent use; App serialises access.
type Page struct {
	store *catalog.Store
	keys  *config.Keybindings

	title  *component.Text
	search *component.Input
	list   *component.SelectList
	view   *tui.Viewport
	status *components.StatusBar
	root   *tui.Container

	filter    catalog.Filter
	searching bool
}

// NewPage builds the page over store.
func NewPage(store *catalog.Store, keys *config.Keybindings) *Page {
	p := &Page{
		store:  store,
		keys:   keys,
		title:  component.NewStyledText("Cellar", titleStyle),
		search: component.NewInput(),
		list:   component.NewSelectList(nil),
		status: components.NewStatusBar(),
	}
	p.search.SetPlaceholder("press " + firstKey(keys, config.ActionSearch) + " to search")
	p.search.OnChange(func(string) { p.Reload() })
	p.view = tui.NewViewport(p.list, 10)
	p.root = tui.NewContainer(
		p.title,
		p.search,
		components.NewLabeledSeparator("wines"),
		p.view,
		components.NewSeparator(),
		p.status,
	)
	p.status.SetHint(p.hint())
	p.Reload()
	return p
}

func firstKey(kb *config.Keybindings, a config.KeyAction) string {
	if ks := kb.Keys(a); len(ks) > 0 {
		return ks[0]
	}
	return "-"
}

func (p *Page) hint() string {
	k := func(a config.KeyAction) string { return firstKey(p.keys, a) }
	return fmt.Sprintf("%s detail · %s add · %s delete · %s review · %s filter · %s search · %s quit",
		k(config.ActionDetail), k(config.ActionAdd), k(config.ActionDelete),
		k(config.ActionReview), k(config.ActionFilter), k(config.ActionSearch), k(config.ActionQuit))
}

// Viewport returns the scrollable list area.
func (p *Page) Viewport() *tui.Viewport {
	return p.view
}

// SetHeight sizes the list to fill a screen of h rows.
func (p *Page) SetHeight(h int) {
	rows := max(h-pageChrome, 1)
	p.view.SetHeight(rows)
}

// Reload re-runs the search, keeping the selected wine when it is still
// listed.
func (p *Page) Reload() {
	prev, hadPrev := p.SelectedWine()
	wines := p.store.Search(p.search.Text(), p.filter)
	items := make([]component.ListItem, len(wines))
	sel := 0
	for i, w := range wines {
		items[i] = component.ListItem{
			Label:       w.Name,
			Description: describe(w),
			Value:       strconv.Itoa(w.ID),
		}
		if hadPrev && w.ID == prev {
			sel = i
		}
	}
	p.list.SetMaxHeight(max(len(items), 1))
	p.list.SetItems(items)
	p.list.Select(sel)
	p.view.ScrollTo(p.list.SelectedIndex())
	p.updateSummary(len(wines))
}

func describe(w catalog.Wine) string {
	return fmt.Sprintf("%s · %s · %s · %s",
		w.Region, strings.ToLower(string(w.Type)), surfaces.FormatPrice(w.Price), surfaces.Stars(w.Rating()))
}

func (p *Page) updateSummary(shown int) {
	left := fmt.Sprintf("%d of %d wines", shown, p.store.Len())
	p.status.SetSummary(left, describeFilter(p.filter))
}

func describeFilter(f catalog.Filter) string {
	if f.IsZero() {
		return ""
	}
	var parts []string
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = strings.ToLower(string(t))
		}
		parts = append(parts, strings.Join(types, "/"))
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		hi := "∞"
		if f.MaxPrice > 0 {
			hi = surfaces.FormatPrice(f.MaxPrice)
		}
		parts = append(parts, surfaces.FormatPrice(f.MinPrice)+"–"+hi)
	}
	if f.MinRating > 0 {
		parts = append(parts, fmt.Sprintf("≥%.1f★", f.MinRating))
	}
	return "filter: " + strings.Join(parts, ", ")
}

// Filter returns the active filter.
func (p *Page) Filter() catalog.Filter {
	return p.filter
}

// SetFilter replaces the filter and reloads.
func (p *Page) SetFilter(f catalog.Filter) {
	p.filter = f
	p.Reload()
}

// Query returns the search text.
func (p *Page) Query() string {
	return p.search.Text()
}

// Searching reports whether keys go to the search line.
func (p *Page) Searching() bool {
	return p.searching
}

// StartSearch focuses the search line.
func (p *Page) StartSearch() {
	p.searching = true
	p.search.SetFocused(true)
}

// handleSearchKey edits the search line. enter keeps the query, esc clears
// it; both leave search mode.
func (p *Page) handleSearchKey(name string) {
	switch name {
	case "enter":
	case "esc":
		p.search.SetText("")
	case "up", "down":
		p.moveSelection(name)
		return
	default:
		p.search.HandleKey(name)
		return
	}
	p.searching = false
	p.search.SetFocused(false)
}

// SelectedWine returns the id of the highlighted wine.
func (p *Page) SelectedWine() (int, bool) {
	item, ok := p.list.SelectedItem()
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(item.Value)
	return id, err == nil
}

// SelectWine highlights the wine with id when listed.
func (p *Page) SelectWine(id int) {
	for i, item := range p.list.VisibleItems() {
		if item.Value == strconv.Itoa(id) {
			p.list.Select(i)
			p.view.ScrollTo(i)
			return
		}
	}
}

func (p *Page) moveSelection(name string) bool {
	if !p.list.HandleKey(name) {
		return false
	}
	p.view.ScrollTo(p.list.SelectedIndex())
	return true
}

// Render draws the page.
func (p *Page) Render(out *tui.RenderBuffer, w int) {
	p.root.Render(out, w)
}

func (p *Page) Invalidate() {
	p.root.Invalidate()
}
