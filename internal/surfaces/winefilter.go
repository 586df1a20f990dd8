// ABOUTME: Wine filter surface: type toggles, price range and minimum rating
// ABOUTME: up/down pick a row, space toggles, left/right adjust, enter applies

package surfaces

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/component"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

const (
	priceStep  = 1000
	ratingStep = 0.5
)

type filterRow int

const (
	rowRed filterRow = iota
	rowWhite
	rowSparkling
	rowMinPrice
	rowMaxPrice
	rowRating
	filterRows
)

// WineFilter edits a catalog.Filter.
type WineFilter struct {
	base
	filter   catalog.Filter
	initial  catalog.Filter
	maxPrice int
	row      filterRow
	onApply  func(catalog.Filter)
}

// OpenWineFilter opens the filter editor seeded with current. maxPrice bounds
// the price sliders. onApply receives the edited filter after the surface
// closes.
func OpenWineFilter(ctx context.Context, current catalog.Filter, maxPrice int, onApply func(catalog.Filter)) (overlay.SurfaceID, error) {
	ctrl, err := controller(ctx)
	if err != nil {
		return "", err
	}
	current.Types = slices.Clone(current.Types)
	s := &WineFilter{filter: current, initial: current, maxPrice: maxPrice, onApply: onApply}
	if s.filter.MaxPrice == 0 {
		s.filter.MaxPrice = maxPrice
	}
	s.ctrl = ctrl
	s.id = ctrl.Open(s, overlay.WithTitle("Filter"), overlay.WithWidth(48))
	return s.id, nil
}

// Filter returns the filter being edited.
func (s *WineFilter) Filter() catalog.Filter {
	return s.filter
}

func (s *WineFilter) Layout() overlay.SurfaceLayout {
	return overlay.Layout(
		overlay.Header(component.NewStyledText("Filter wines", titleStyle)),
		overlay.Content(lineFunc(s.lines)),
		overlay.Footer(component.NewStyledText("space toggle · ←/→ adjust · ctrl+r reset · enter apply", hintStyle)),
	)
}

func (s *WineFilter) Render(out *tui.RenderBuffer, w int) {
	renderLayout(s.Layout(), out, w)
}

func (s *WineFilter) lines(w int) []string {
	var out []string
	add := func(row filterRow, text string) {
		line := width.Truncate(text, w)
		if row == s.row {
			line = focusStyle.Render(width.PadRight(line, w))
		}
		out = append(out, line)
	}
	out = append(out, labelStyle.Render("WINE TYPES"))
	for i, t := range catalog.WineTypes {
		mark := "[ ]"
		if slices.Contains(s.filter.Types, t) {
			mark = "[x]"
		}
		add(rowRed+filterRow(i), fmt.Sprintf(" %s %s", mark, strings.ToLower(string(t))))
	}
	out = append(out, "", labelStyle.Render("PRICE"))
	add(rowMinPrice, fmt.Sprintf(" min %s", formatPrice(s.filter.MinPrice)))
	add(rowMaxPrice, fmt.Sprintf(" max %s", formatPrice(s.filter.MaxPrice)))
	out = append(out, "", labelStyle.Render("RATING"))
	add(rowRating, fmt.Sprintf(" at least %s %.1f", stars(int(s.filter.MinRating+0.5)), s.filter.MinRating))
	return out
}

func (s *WineFilter) HandleKey(name string) bool {
	switch name {
	case "up", "shift+tab":
		s.row = (s.row - 1 + filterRows) % filterRows
	case "down", "tab":
		s.row = (s.row + 1) % filterRows
	case " ":
		if s.row <= rowSparkling {
			s.filter.ToggleType(catalog.WineTypes[s.row])
		}
	case "left":
		s.adjust(-1)
	case "right":
		s.adjust(1)
	case "ctrl+r":
		s.filter = catalog.Filter{MaxPrice: s.maxPrice}
	case "enter":
		s.apply()
	default:
		return false
	}
	return true
}

func (s *WineFilter) adjust(dir int) {
	switch s.row {
	case rowMinPrice:
		s.filter.MinPrice = clamp(s.filter.MinPrice+dir*priceStep, 0, s.filter.MaxPrice)
	case rowMaxPrice:
		s.filter.MaxPrice = clamp(s.filter.MaxPrice+dir*priceStep, s.filter.MinPrice, s.maxPrice)
	case rowRating:
		s.filter.MinRating = min(max(s.filter.MinRating+float64(dir)*ratingStep, 0), 5)
	}
}

func (s *WineFilter) apply() {
	f := s.filter
	if f.MaxPrice >= s.maxPrice {
		f.MaxPrice = 0
	}
	s.close()
	if s.onApply != nil {
		s.onApply(f)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
