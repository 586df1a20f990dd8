// ABOUTME: Display helpers shared by the surfaces: prices, stars and flavour bars
// ABOUTME: Prices use locale digit grouping from x/text

package surfaces

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mauromedda/cellar-go/internal/catalog"
)

var priceFmt = message.NewPrinter(language.English)

func formatPrice(p int) string {
	return priceFmt.Sprintf("%d", p)
}

// FormatPrice renders a price with digit grouping.
func FormatPrice(p int) string { return formatPrice(p) }

// stars renders n of five stars.
func stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// Stars renders a rating as five stars, rounding to the nearest whole star.
func Stars(rating float64) string { return stars(int(rating + 0.5)) }

// scale renders a 0..FlavorMax value as a bar.
func scale(v int) string {
	v = min(max(v, 0), catalog.FlavorMax)
	return strings.Repeat("■", v) + strings.Repeat("□", catalog.FlavorMax-v)
}
