// ABOUTME: Catalogue filter: wine types, price range and minimum rating
// ABOUTME: The zero Filter matches every wine

package catalog

import "slices"

// Filter selects wines. Empty Types means every type; MaxPrice 0 means no
// upper bound.
type Filter struct {
	Types     []WineType
	MinPrice  int
	MaxPrice  int
	MinRating float64
}

// IsZero reports whether f matches everything.
func (f Filter) IsZero() bool {
	return len(f.Types) == 0 && f.MinPrice == 0 && f.MaxPrice == 0 && f.MinRating == 0
}

// Match reports whether w passes f.
func (f Filter) Match(w *Wine) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, w.Type) {
		return false
	}
	if w.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && w.Price > f.MaxPrice {
		return false
	}
	return w.Rating() >= f.MinRating
}

// ToggleType adds t to the type set, or removes it when present.
func (f *Filter) ToggleType(t WineType) {
	if i := slices.Index(f.Types, t); i >= 0 {
		f.Types = slices.Delete(f.Types, i, i+1)
		return
	}
	f.Types = append(f.Types, t)
}
