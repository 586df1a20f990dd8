// ABOUTME: Wine add form surface: name, price, region and type
// ABOUTME: enter validates and adds to the store; errors stay on the form

package surfaces

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/component"
)

// WineAdd collects a new wine.
type WineAdd struct {
	base
	store   *catalog.Store
	form    *component.Form
	onAdded func(catalog.Wine)
}

// OpenWineAdd opens the form. onAdded, which may be nil, receives the stored
// wine after the surface closes.
func OpenWineAdd(ctx context.Context, store *catalog.Store, onAdded func(catalog.Wine)) (overlay.SurfaceID, error) {
	ctrl, err := controller(ctx)
	if err != nil {
		return "", err
	}
	s := &WineAdd{store: store, form: component.NewForm(), onAdded: onAdded}
	s.ctrl = ctrl
	s.form.AddField("name", "Name", "Wine name")
	s.form.AddField("price", "Price", "0")
	s.form.AddField("region", "Region", "Region, Country")
	s.form.AddField("type", "Type", "red | white | sparkling")
	s.id = ctrl.Open(s, overlay.WithTitle("Add wine"))
	return s.id, nil
}

func (s *WineAdd) Layout() overlay.SurfaceLayout {
	return overlay.Layout(
		overlay.Header(component.NewStyledText("New wine", titleStyle)),
		overlay.Content(s.form),
		overlay.Footer(component.NewStyledText("tab next field · enter add · esc cancel", hintStyle)),
	)
}

func (s *WineAdd) Render(out *tui.RenderBuffer, w int) {
	renderLayout(s.Layout(), out, w)
}

func (s *WineAdd) HandleKey(name string) bool {
	if name == "enter" {
		s.submit()
		return true
	}
	return s.form.HandleKey(name)
}

func (s *WineAdd) submit() {
	w, err := s.wine()
	if err == nil {
		w, err = s.store.Add(w)
	}
	if err != nil {
		s.form.SetError(strings.TrimPrefix(err.Error(), catalog.ErrInvalid.Error()+": "))
		return
	}
	s.close()
	if s.onAdded != nil {
		s.onAdded(w)
	}
}

func (s *WineAdd) wine() (catalog.Wine, error) {
	w := catalog.Wine{
		Name:   strings.TrimSpace(s.form.Value("name")),
		Region: strings.TrimSpace(s.form.Value("region")),
	}
	if p := strings.TrimSpace(s.form.Value("price")); p != "" {
		price, err := strconv.Atoi(p)
		if err != nil {
			return w, errors.New("price must be a whole number")
		}
		w.Price = price
	}
	t, err := catalog.ParseWineType(s.form.Value("type"))
	if err != nil {
		return w, err
	}
	w.Type = t
	return w, nil
}
