// ABOUTME: Column-oriented operations on styled text: slice, truncate, pad
// ABOUTME: Escape sequences are carried through untouched so styling survives

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const reset = "\x1b[0m"

// SliceByColumn returns the part of s covering visible columns [start, end).
// A wide grapheme straddling either edge is dropped. Escape sequences are
// always kept so the slice renders with the styling in effect.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			next := skipSequence(s, i)
			b.WriteString(s[i:next])
			i = next
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := clusterWidth(cluster)
		if col >= start && col+w <= end {
			b.WriteString(cluster)
		}
		col += w
		i += len(s[i:]) - len(rest)
	}
	return b.String()
}

// Truncate cuts s to at most maxCols visible columns. When styled text is
// cut, a reset is appended so the style does not bleed into what follows.
func Truncate(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxCols {
		return s
	}
	out := SliceByColumn(s, 0, maxCols)
	if strings.ContainsRune(out, '\x1b') {
		out += reset
	}
	return out
}

// PadRight pads s with spaces to exactly cols visible columns, truncating
// when s is wider.
func PadRight(s string, cols int) string {
	w := VisibleWidth(s)
	if w > cols {
		return Truncate(s, cols)
	}
	return s + strings.Repeat(" ", cols-w)
}
