// ABOUTME: Review editor surface for adding or editing a tasting note
// ABOUTME: Rating, four flavour scales, aroma tags, author and text; enter saves

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

type reviewRow int

const (
	rowStars reviewRow = iota
	rowLightBold
	rowSmoothTannic
	rowDrySweet
	rowSoftAcidic
	rowAroma
	rowAuthor
	rowText
	reviewRows
)

var flavorLabels = map[reviewRow]string{
	rowLightBold:    "light / bold",
	rowSmoothTannic: "smooth / tannic",
	rowDrySweet:     "dry / sweet",
	rowSoftAcidic:   "soft / acidic",
}

// ReviewEditor adds a review, or edits one when opened with an existing review.
type ReviewEditor struct {
	base
	store   *catalog.Store
	wineID  int
	review  catalog.Review
	editing bool
	row     reviewRow
	aroma   int
	author  *component.Input
	text    *component.Input
	errText string
	onSaved func(catalog.Review)
}

// OpenReviewEditor opens the editor for wine. existing, when non-nil, is
// edited in place; otherwise a new review is added. onSaved, which may be
// nil, runs after a successful save.
func OpenReviewEditor(ctx context.Context, store *catalog.Store, wine catalog.Wine, existing *catalog.Review, onSaved func(catalog.Review)) (overlay.SurfaceID, error) {
	ctrl, err := controller(ctx)
	if err != nil {
		return "", err
	}
	e := &ReviewEditor{
		store:   store,
		wineID:  wine.ID,
		review:  catalog.Review{Rating: 3, Flavor: catalog.Flavor{LightBold: 5, SmoothTannic: 5, DrySweet: 5, SoftAcidic: 5}},
		author:  component.NewInput(),
		text:    component.NewInput(),
		onSaved: onSaved,
	}
	e.ctrl = ctrl
	e.author.SetPlaceholder("your name")
	e.text.SetPlaceholder("tasting note")
	title := "Review " + wine.Name
	if existing != nil {
		e.editing = true
		e.review = *existing
		e.review.Aroma = slices.Clone(existing.Aroma)
		e.author.SetText(existing.Author)
		e.text.SetText(existing.Content)
		title = "Edit review"
	}
	e.id = ctrl.Open(e, overlay.WithTitle(title))
	return e.id, nil
}

// Review returns the review as currently edited.
func (e *ReviewEditor) Review() catalog.Review {
	r := e.review
	r.Aroma = slices.Clone(r.Aroma)
	r.Author = strings.TrimSpace(e.author.Text())
	r.Content = strings.TrimSpace(e.text.Text())
	return r
}

func (e *ReviewEditor) Layout() overlay.SurfaceLayout {
	return overlay.Layout(
		overlay.Header(component.NewStyledText(fmt.Sprintf("Rating %s", stars(e.review.Rating)), titleStyle)),
		overlay.Content(lineFunc(e.lines)),
		overlay.Footer(component.NewStyledText("↑/↓ field · ←/→ adjust · space aroma · enter save", hintStyle)),
	)
}

func (e *ReviewEditor) Render(out *tui.RenderBuffer, w int) {
	renderLayout(e.Layout(), out, w)
}

func (e *ReviewEditor) lines(w int) []string {
	var out []string
	mark := func(row reviewRow, s string) string {
		if row == e.row {
			return focusStyle.Render(s)
		}
		return s
	}
	out = append(out, mark(rowStars, "rating  ")+" "+stars(e.review.Rating))
	for row := rowLightBold; row <= rowSoftAcidic; row++ {
		out = append(out, mark(row, width.PadRight(flavorLabels[row], 16))+" "+scale(e.flavor(row)))
	}
	out = append(out, mark(rowAroma, "aroma"))
	var tags []string
	for i, a := range catalog.Aromas {
		tag := strings.ToLower(a)
		if slices.Contains(e.review.Aroma, a) {
			tag = "+" + tag
		}
		if e.row == rowAroma && i == e.aroma {
			tag = focusStyle.Render(tag)
		}
		tags = append(tags, tag)
	}
	out = append(out, width.Wrap(strings.Join(tags, " "), w)...)
	e.author.SetFocused(e.row == rowAuthor)
	e.text.SetFocused(e.row == rowText)
	out = append(out, mark(rowAuthor, "author")+" "+firstLine(e.author, max(w-7, 1)))
	out = append(out, mark(rowText, "note")+"   "+firstLine(e.text, max(w-7, 1)))
	if e.errText != "" {
		out = append(out, width.Wrap(e.errText, w)...)
	}
	return out
}

func firstLine(c tui.Component, w int) string {
	lines := tui.RenderLines(c, w)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

func (e *ReviewEditor) flavor(row reviewRow) int {
	switch row {
	case rowLightBold:
		return e.review.Flavor.LightBold
	case rowSmoothTannic:
		return e.review.Flavor.SmoothTannic
	case rowDrySweet:
		return e.review.Flavor.DrySweet
	case rowSoftAcidic:
		return e.review.Flavor.SoftAcidic
	}
	return 0
}

func (e *ReviewEditor) setFlavor(row reviewRow, v int) {
	v = min(max(v, 0), catalog.FlavorMax)
	switch row {
	case rowLightBold:
		e.review.Flavor.LightBold = v
	case rowSmoothTannic:
		e.review.Flavor.SmoothTannic = v
	case rowDrySweet:
		e.review.Flavor.DrySweet = v
	case rowSoftAcidic:
		e.review.Flavor.SoftAcidic = v
	}
}

func (e *ReviewEditor) HandleKey(name string) bool {
	switch name {
	case "enter":
		e.save()
		return true
	case "up", "shift+tab":
		e.row = (e.row - 1 + reviewRows) % reviewRows
		return true
	case "down", "tab":
		e.row = (e.row + 1) % reviewRows
		return true
	}
	switch e.row {
	case rowAuthor:
		return e.author.HandleKey(name)
	case rowText:
		return e.text.HandleKey(name)
	}
	delta := 0
	switch name {
	case "left":
		delta = -1
	case "right":
		delta = 1
	case " ":
		if e.row != rowAroma {
			return false
		}
		e.toggleAroma(catalog.Aromas[e.aroma])
		return true
	default:
		return false
	}
	switch {
	case e.row == rowStars:
		e.review.Rating = min(max(e.review.Rating+delta, 1), 5)
	case e.row == rowAroma:
		e.aroma = (e.aroma + delta + len(catalog.Aromas)) % len(catalog.Aromas)
	default:
		e.setFlavor(e.row, e.flavor(e.row)+delta)
	}
	return true
}

func (e *ReviewEditor) toggleAroma(a string) {
	if i := slices.Index(e.review.Aroma, a); i >= 0 {
		e.review.Aroma = slices.Delete(e.review.Aroma, i, i+1)
		return
	}
	e.review.Aroma = append(e.review.Aroma, a)
}

func (e *ReviewEditor) save() {
	r := e.Review()
	if r.Author == "" && !e.editing {
		e.errText = "author is required"
		return
	}
	var err error
	if e.editing {
		err = e.store.UpdateReview(e.wineID, r)
	} else {
		r, err = e.store.AddReview(e.wineID, r)
	}
	if err != nil {
		e.errText = err.Error()
		return
	}
	e.close()
	if e.onSaved != nil {
		e.onSaved(r)
	}
}
