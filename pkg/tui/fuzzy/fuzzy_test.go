// ABOUTME: Tests for folded fuzzy matching
// ABOUTME: Accents and case must not affect matching; results map back to original items

package fuzzy

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Château Margaux", "chateau margaux"},
		{"GEWÜRZTRAMINER", "gewurztraminer"},
		{"Rioja", "rioja"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFind_IgnoresAccents(t *testing.T) {
	t.Parallel()

	items := []string{"Barolo", "Château Latour", "Chablis"}
	matches := Find("chateau", items)

	if len(matches) != 1 {
		t.Fatalf("matches = %v; want one", matches)
	}
	if matches[0].Index != 1 || matches[0].Str != "Château Latour" {
		t.Errorf("match = %+v; want Château Latour at 1", matches[0])
	}
}

func TestFind_EmptyPatternKeepsOrder(t *testing.T) {
	t.Parallel()

	items := []string{"b", "a"}
	matches := Find("", items)
	if len(matches) != 2 || matches[0].Str != "b" || matches[1].Index != 1 {
		t.Errorf("matches = %+v", matches)
	}
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()

	if got := Find("zzz", []string{"Merlot", "Syrah"}); len(got) != 0 {
		t.Errorf("matches = %v; want none", got)
	}
}
