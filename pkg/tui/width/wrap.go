// ABOUTME: Word wrapping for plain text into fixed-width lines
// ABOUTME: Words longer than the width are hard-broken at column boundaries

package width

import "strings"

// Wrap splits text into lines of at most maxCols visible columns, breaking on
// spaces. Existing newlines are honoured. Input is expected to be unstyled.
func Wrap(text string, maxCols int) []string {
	if maxCols <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxCols)...)
	}
	return lines
}

func wrapParagraph(para string, maxCols int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, word := range words {
		ww := VisibleWidth(word)
		for ww > maxCols {
			if curW > 0 {
				flush()
			}
			lines = append(lines, SliceByColumn(word, 0, maxCols))
			word = SliceByColumn(word, maxCols, ww)
			ww = VisibleWidth(word)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= maxCols:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
