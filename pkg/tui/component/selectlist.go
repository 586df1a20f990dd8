// ABOUTME: Filterable scrollable list with accent-insensitive fuzzy matching
// ABOUTME: Up/down/home/end navigate; the owning surface decides what enter does

package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/fuzzy"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// ListItem is one entry. Value is opaque to the list.
type ListItem struct {
	Label       string
	Description string
	Value       string
}

// SelectList is a filterable, scrollable list of items.
type SelectList struct {
	items     []ListItem
	visible   []ListItem
	selected  int
	scrollOff int
	maxHeight int
	filter    string

	selectedStyle lipgloss.Style
	descStyle     lipgloss.Style
	emptyText     string
}

// NewSelectList creates a SelectList with the given items.
func NewSelectList(items []ListItem) *SelectList {
	sl := &SelectList{
		items:         items,
		maxHeight:     10,
		selectedStyle: lipgloss.NewStyle().Bold(true).Reverse(true),
		descStyle:     lipgloss.NewStyle().Faint(true),
		emptyText:     "no matches",
	}
	sl.applyFilter()
	return sl
}

// SetItems replaces the items, keeping the current filter.
func (sl *SelectList) SetItems(items []ListItem) {
	sl.items = items
	sl.selected, sl.scrollOff = 0, 0
	sl.applyFilter()
}

// SetFilter refilters by fuzzy pattern f.
func (sl *SelectList) SetFilter(f string) {
	sl.filter = f
	sl.selected, sl.scrollOff = 0, 0
	sl.applyFilter()
}

// SetMaxHeight limits the number of rows drawn.
func (sl *SelectList) SetMaxHeight(h int) {
	sl.maxHeight = max(h, 1)
	sl.adjustScroll()
}

// Select highlights visible item i, clamped to the visible range.
func (sl *SelectList) Select(i int) {
	sl.selected = max(min(i, len(sl.visible)-1), 0)
	sl.adjustScroll()
}

// SelectedIndex returns the index within the visible items.
func (sl *SelectList) SelectedIndex() int {
	return sl.selected
}

// SelectedItem returns the highlighted item, false when nothing is visible.
func (sl *SelectList) SelectedItem() (ListItem, bool) {
	if len(sl.visible) == 0 {
		return ListItem{}, false
	}
	return sl.visible[sl.selected], true
}

// VisibleItems returns the filtered items.
func (sl *SelectList) VisibleItems() []ListItem {
	return sl.visible
}

func (sl *SelectList) Invalidate() {}

// HandleKey moves the selection.
func (sl *SelectList) HandleKey(name string) bool {
	switch name {
	case "up", "ctrl+p":
		sl.selected = max(sl.selected-1, 0)
	case "down", "ctrl+n":
		sl.selected = max(min(sl.selected+1, len(sl.visible)-1), 0)
	case "home":
		sl.selected = 0
	case "end":
		sl.selected = max(len(sl.visible)-1, 0)
	default:
		return false
	}
	sl.adjustScroll()
	return true
}

func (sl *SelectList) adjustScroll() {
	if sl.selected < sl.scrollOff {
		sl.scrollOff = sl.selected
	}
	if sl.selected >= sl.scrollOff+sl.maxHeight {
		sl.scrollOff = sl.selected - sl.maxHeight + 1
	}
}

func (sl *SelectList) applyFilter() {
	labels := make([]string, len(sl.items))
	for i, item := range sl.items {
		labels[i] = item.Label
	}
	matches := fuzzy.Find(sl.filter, labels)
	sl.visible = make([]ListItem, len(matches))
	for i, m := range matches {
		sl.visible[i] = sl.items[m.Index]
	}
}

// Render draws the visible window of items.
func (sl *SelectList) Render(out *tui.RenderBuffer, w int) {
	if len(sl.visible) == 0 {
		out.WriteLine(sl.descStyle.Render(width.Truncate("  "+sl.emptyText, w)))
		return
	}
	end := min(sl.scrollOff+sl.maxHeight, len(sl.visible))
	for i := sl.scrollOff; i < end; i++ {
		out.WriteLine(sl.formatItem(sl.visible[i], w, i == sl.selected))
	}
}

func (sl *SelectList) formatItem(item ListItem, w int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	label := width.Truncate(prefix+item.Label, w)
	if selected {
		label = sl.selectedStyle.Render(label)
	}
	rest := w - width.VisibleWidth(prefix+item.Label) - 2
	if item.Description == "" || rest < 4 {
		return label
	}
	return label + "  " + sl.descStyle.Render(width.Truncate(item.Description, rest))
}
