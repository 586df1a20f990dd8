// ABOUTME: Accent- and case-insensitive fuzzy matching over sahilm/fuzzy
// ABOUTME: Folds "Château" and "chateau" to the same key before matching

package fuzzy

import (
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is one ranked result. Index points into the caller's items.
type Match struct {
	Str   string
	Index int
	Score int
}

// Fold strips diacritics and case-folds s.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

type foldedSource []string

func (f foldedSource) String(i int) string { return f[i] }
func (f foldedSource) Len() int            { return len(f) }

// Find ranks items against pattern, best first. An empty pattern matches
// every item in its original order.
func Find(pattern string, items []string) []Match {
	if pattern == "" {
		out := make([]Match, len(items))
		for i, s := range items {
			out[i] = Match{Str: s, Index: i}
		}
		return out
	}

	folded := make(foldedSource, len(items))
	for i, s := range items {
		folded[i] = Fold(s)
	}
	results := fuzzy.FindFrom(Fold(pattern), folded)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: items[r.Index], Index: r.Index, Score: r.Score}
	}
	return matches
}
