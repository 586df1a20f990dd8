// ABOUTME: Headless print mode: lists the catalogue as text, JSON, or stream-JSON
// ABOUTME: Used when stdout is not a terminal or when -print is given

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/internal/surfaces"
)

// Output formats.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatStreamJSON = "stream-json"
)

// Config configures a listing.
type Config struct {
	OutputFormat string // "text" (default), "json", "stream-json"
	Query        string // fuzzy name/region query; empty lists everything
	Filter       catalog.Filter
}

// Run writes the wines matching cfg to w and returns how many it wrote.
func Run(w io.Writer, store *catalog.Store, cfg Config) (int, error) {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = FormatText
	}
	f, err := newFormatter(cfg.OutputFormat, w)
	if err != nil {
		return 0, err
	}

	wines := store.Search(cfg.Query, cfg.Filter)
	f.start(len(wines), store.Len())
	for i := range wines {
		if err := f.wine(&wines[i]); err != nil {
			return i, fmt.Errorf("writing wine %d: %w", wines[i].ID, err)
		}
	}
	if err := f.end(); err != nil {
		return len(wines), fmt.Errorf("writing listing: %w", err)
	}
	return len(wines), nil
}

type formatter interface {
	start(shown, total int)
	wine(w *catalog.Wine) error
	end() error
}

func newFormatter(format string, w io.Writer) (formatter, error) {
	switch format {
	case FormatText:
		return &textFormatter{w: w}, nil
	case FormatJSON:
		return &jsonFormatter{w: w}, nil
	case FormatStreamJSON:
		return &streamJSONFormatter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// textFormatter writes one aligned line per wine and a count footer.
type textFormatter struct {
	w            io.Writer
	shown, total int
}

func (f *textFormatter) start(shown, total int) { f.shown, f.total = shown, total }

func (f *textFormatter) wine(w *catalog.Wine) error {
	_, err := fmt.Fprintf(f.w, "%4d  %-32s  %-10s  %10s  %s  %s\n",
		w.ID, truncate(w.Name, 32), strings.ToLower(string(w.Type)),
		surfaces.FormatPrice(w.Price), surfaces.Stars(w.Rating()), w.Region)
	return err
}

func (f *textFormatter) end() error {
	_, err := fmt.Fprintf(f.w, "%d of %d wines\n", f.shown, f.total)
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// jsonWine is the wire form of a wine in both JSON formats.
type jsonWine struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Type    string  `json:"type"`
	Price   int     `json:"price"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

func toJSON(w *catalog.Wine) jsonWine {
	return jsonWine{
		ID:      w.ID,
		Name:    w.Name,
		Region:  w.Region,
		Type:    string(w.Type),
		Price:   w.Price,
		Rating:  w.Rating(),
		Reviews: len(w.Reviews),
	}
}

// jsonFormatter collects every wine and writes a single JSON object at the end.
type jsonFormatter struct {
	w     io.Writer
	out   jsonOutput
	wines []jsonWine
}

type jsonOutput struct {
	Total int        `json:"total"`
	Wines []jsonWine `json:"wines"`
}

func (f *jsonFormatter) start(shown, total int) {
	f.out.Total = total
	f.wines = make([]jsonWine, 0, shown)
}

func (f *jsonFormatter) wine(w *catalog.Wine) error {
	f.wines = append(f.wines, toJSON(w))
	return nil
}

func (f *jsonFormatter) end() error {
	f.out.Wines = f.wines
	data, err := json.Marshal(f.out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

// streamJSONFormatter writes one JSON line per event.
type streamJSONFormatter struct {
	enc          *json.Encoder
	shown, total int
}

type streamEvent struct {
	Type  string    `json:"type"`
	Wine  *jsonWine `json:"wine,omitempty"`
	Shown int       `json:"shown,omitempty"`
	Total int       `json:"total,omitempty"`
}

func (f *streamJSONFormatter) start(shown, total int) {
	f.shown, f.total = shown, total
	_ = f.enc.Encode(streamEvent{Type: "start", Total: total})
}

func (f *streamJSONFormatter) wine(w *catalog.Wine) error {
	jw := toJSON(w)
	return f.enc.Encode(streamEvent{Type: "wine", Wine: &jw})
}

func (f *streamJSONFormatter) end() error {
	return f.enc.Encode(streamEvent{Type: "end", Shown: f.shown, Total: f.total})
}
