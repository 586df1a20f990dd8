// ABOUTME: Wine detail surface: markdown description, rating histogram and reviews
// ABOUTME: Opens nested review and delete surfaces; refreshes on store changes

package surfaces

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/internal/config"
	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/component"
)

// DetailOptions configures OpenWineDetail.
type DetailOptions struct {
	Keys *config.Keybindings
	// MarkdownStyle names a glamour style; empty picks one from the terminal.
	MarkdownStyle string
	// OnDeleted runs after the wine was deleted from the store.
	OnDeleted func(id int)
}

// WineDetail shows one wine.
type WineDetail struct {
	base
	ctx    context.Context
	store  *catalog.Store
	wineID int
	opts   DetailOptions
	header *component.Text
	body   *component.Markdown
}

// OpenWineDetail opens the detail of the wine with wineID.
func OpenWineDetail(ctx context.Context, store *catalog.Store, wineID int, opts DetailOptions) (overlay.SurfaceID, error) {
	ctrl, err := controller(ctx)
	if err != nil {
		return "", err
	}
	wine, err := store.Get(wineID)
	if err != nil {
		return "", err
	}
	if opts.Keys == nil {
		opts.Keys = config.NewKeybindings()
	}
	d := &WineDetail{
		ctx:    ctx,
		store:  store,
		wineID: wineID,
		opts:   opts,
		header: component.NewStyledText("", titleStyle),
	}
	if opts.MarkdownStyle != "" {
		d.body = component.NewMarkdownWithStyle("", opts.MarkdownStyle)
	} else {
		d.body = component.NewMarkdown("")
	}
	d.ctrl = ctrl
	d.show(wine)
	unsubscribe := store.Subscribe(func(c catalog.Change) {
		if c.WineID == wineID && c.Kind != catalog.WineDeleted {
			d.refresh()
		}
	})
	d.id = ctrl.Open(d, overlay.WithTitle(wine.Name), overlay.WithOnClose(unsubscribe))
	return d.id, nil
}

func (d *WineDetail) refresh() {
	w, err := d.store.Get(d.wineID)
	if err != nil {
		log.Debug("surfaces: detail refresh for wine %d: %v", d.wineID, err)
		return
	}
	d.show(w)
}

func (d *WineDetail) show(w catalog.Wine) {
	d.header.SetContent(fmt.Sprintf("%s · %s · %s · %s",
		w.Region, strings.ToLower(string(w.Type)), formatPrice(w.Price), Stars(w.Rating())))
	d.body.SetContent(DetailMarkdown(w))
}

// DetailMarkdown renders the wine as markdown.
func DetailMarkdown(w catalog.Wine) string {
	var b strings.Builder
	if w.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", w.Description)
	}
	b.WriteString("## Ratings\n\n")
	dist := w.RatingDistribution()
	total := len(w.Reviews)
	for star := 5; star >= 1; star-- {
		n := dist[star-1]
		bar := ""
		if total > 0 {
			bar = strings.Repeat("█", n*20/total)
		}
		fmt.Fprintf(&b, "    %d★ %-20s %d\n", star, bar, n)
	}
	fmt.Fprintf(&b, "\n## Reviews (%d)\n\n", total)
	if total == 0 {
		b.WriteString("_No reviews yet._\n")
	}
	for _, r := range w.Reviews {
		fmt.Fprintf(&b, "**%s** %s  \n", r.Author, stars(r.Rating))
		if !r.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "_%s_  \n", r.CreatedAt.Format("2006-01-02"))
		}
		if len(r.Aroma) > 0 {
			fmt.Fprintf(&b, "aroma: %s  \n", strings.ToLower(strings.Join(r.Aroma, ", ")))
		}
		if r.Content != "" {
			fmt.Fprintf(&b, "\n%s\n", r.Content)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (d *WineDetail) Layout() overlay.SurfaceLayout {
	return overlay.Layout(
		overlay.Header(d.header),
		overlay.Content(d.body),
		overlay.Footer(component.NewStyledText(d.hint(), hintStyle)),
	)
}

func (d *WineDetail) hint() string {
	key := func(a config.KeyAction) string {
		if ks := d.opts.Keys.Keys(a); len(ks) > 0 {
			return ks[0]
		}
		return "-"
	}
	return fmt.Sprintf("%s review · %s delete · pgup/pgdown scroll · esc close",
		key(config.ActionReview), key(config.ActionDelete))
}

func (d *WineDetail) Render(out *tui.RenderBuffer, w int) {
	renderLayout(d.Layout(), out, w)
}

func (d *WineDetail) HandleKey(name string) bool {
	switch {
	case d.opts.Keys.Matches(config.ActionReview, name):
		d.openReview()
	case d.opts.Keys.Matches(config.ActionDelete, name):
		d.confirmDelete()
	default:
		return false
	}
	return true
}

func (d *WineDetail) openReview() {
	w, err := d.store.Get(d.wineID)
	if err != nil {
		log.Warn("surfaces: review for wine %d: %v", d.wineID, err)
		return
	}
	if _, err := OpenReviewEditor(d.ctx, d.store, w, nil, nil); err != nil {
		log.Warn("surfaces: %v", err)
	}
}

func (d *WineDetail) confirmDelete() {
	w, err := d.store.Get(d.wineID)
	if err != nil {
		return
	}
	prompt := fmt.Sprintf("Delete %q? This cannot be undone.", w.Name)
	_, err = OpenDeleteConfirm(d.ctx, prompt, func() {
		if err := d.store.Delete(d.wineID); err != nil {
			log.Warn("surfaces: delete wine %d: %v", d.wineID, err)
			return
		}
		d.close()
		if d.opts.OnDeleted != nil {
			d.opts.OnDeleted(d.wineID)
		}
	}, nil)
	if err != nil {
		log.Warn("surfaces: %v", err)
	}
}
