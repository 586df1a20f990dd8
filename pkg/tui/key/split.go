// ABOUTME: Split breaks a raw stdin read into individual input events
// ABOUTME: Handles CSI, SS3, Alt-prefixed bytes, SGR mouse reports and multi-byte UTF-8

package key

import "unicode/utf8"

// Split separates data into events suitable for Parse or ParseMouse. A read
// from a terminal in raw mode frequently carries several events at once, for
// example when keys are pasted or the terminal batches mouse reports.
func Split(data string) []string {
	var out []string
	for i := 0; i < len(data); {
		n := eventLen(data[i:])
		out = append(out, data[i:i+n])
		i += n
	}
	return out
}

func eventLen(s string) int {
	if s[0] != 0x1b {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	if len(s) == 1 {
		return 1
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if c := s[i]; c >= 0x40 && c <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case 'O':
		if len(s) >= 3 {
			return 3
		}
		return len(s)
	case 0x1b:
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[1:])
	return 1 + size
}
