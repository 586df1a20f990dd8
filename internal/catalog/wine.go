// ABOUTME: Wine and review types with validation
// ABOUTME: Flavour scales run 0..10; review ratings 1..5

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// WineType is the wine style.
type WineType string

const (
	TypeRed       WineType = "RED"
	TypeWhite     WineType = "WHITE"
	TypeSparkling WineType = "SPARKLING"
)

// WineTypes lists every type in display order.
var WineTypes = []WineType{TypeRed, TypeWhite, TypeSparkling}

// ParseWineType accepts any case.
func ParseWineType(s string) (WineType, error) {
	t := WineType(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(WineTypes, t) {
		return "", fmt.Errorf("unknown wine type %q", s)
	}
	return t, nil
}

// Aromas lists the aroma tags a review may carry.
var Aromas = []string{
	"CHERRY", "BERRY", "OAK", "VANILLA", "PEPPER", "BAKING", "GRASS",
	"APPLE", "PEACH", "CITRUS", "TROPICAL", "MINERAL", "FLOWER", "TOBACCO",
	"EARTH", "CHOCOLATE", "SPICE", "CARAMEL", "LEATHER",
}

// FlavorMax is the top of every flavour scale.
const FlavorMax = 10

// Flavor scores the four tasting axes.
type Flavor struct {
	LightBold    int `yaml:"light_bold"`
	SmoothTannic int `yaml:"smooth_tannic"`
	DrySweet     int `yaml:"dry_sweet"`
	SoftAcidic   int `yaml:"soft_acidic"`
}

// Review is one tasting note.
type Review struct {
	ID        int       `yaml:"id"`
	Author    string    `yaml:"author"`
	CreatedAt time.Time `yaml:"created_at"`
	Rating    int       `yaml:"rating"`
	Aroma     []string  `yaml:"aroma,omitempty"`
	Content   string    `yaml:"content"`
	Flavor    Flavor    `yaml:"flavor"`
}

// Wine is one catalogue entry.
type Wine struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Region      string   `yaml:"region"`
	Type        WineType `yaml:"type"`
	Price       int      `yaml:"price"`
	Description string   `yaml:"description,omitempty"`
	Reviews     []Review `yaml:"reviews,omitempty"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the fields a user can enter.
func (w *Wine) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return invalid("wine name is required")
	}
	if strings.TrimSpace(w.Region) == "" {
		return invalid("wine region is required")
	}
	if !slices.Contains(WineTypes, w.Type) {
		return invalid("wine type %q is not one of RED, WHITE, SPARKLING", w.Type)
	}
	if w.Price < 0 {
		return invalid("price must not be negative")
	}
	return nil
}

// Validate checks rating, aromas and flavour ranges.
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return invalid("rating must be between 1 and 5, got %d", r.Rating)
	}
	for _, a := range r.Aroma {
		if !slices.Contains(Aromas, a) {
			return invalid("unknown aroma %q", a)
		}
	}
	for name, v := range map[string]int{
		"light/bold":    r.Flavor.LightBold,
		"smooth/tannic": r.Flavor.SmoothTannic,
		"dry/sweet":     r.Flavor.DrySweet,
		"soft/acidic":   r.Flavor.SoftAcidic,
	} {
		if v < 0 || v > FlavorMax {
			return invalid("%s must be between 0 and %d, got %d", name, FlavorMax, v)
		}
	}
	return nil
}

// Rating is the mean review rating, 0 without reviews.
func (w *Wine) Rating() float64 {
	if len(w.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range w.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(w.Reviews))
}

// RatingDistribution counts reviews per star, index 0 holding one-star.
func (w *Wine) RatingDistribution() [5]int {
	var d [5]int
	for _, r := range w.Reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			d[r.Rating-1]++
		}
	}
	return d
}

func (w Wine) clone() Wine {
	w.Reviews = slices.Clone(w.Reviews)
	for i := range w.Reviews {
		w.Reviews[i].Aroma = slices.Clone(w.Reviews[i].Aroma)
	}
	return w
}
