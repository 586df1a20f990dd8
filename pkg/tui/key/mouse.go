// ABOUTME: SGR (1006) mouse report parsing: ESC [ < b ; x ; y (M|m)
// ABOUTME: Coordinates are converted to 0-based cells; press, release, motion and wheel are distinguished

package key

import (
	"strconv"
	"strings"
)

// MouseAction classifies a mouse report.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseWheelUp
	MouseWheelDown
)

// Mouse is one parsed mouse report.
type Mouse struct {
	X, Y   int // 0-based cell coordinates
	Button int // 0 left, 1 middle, 2 right
	Action MouseAction
}

// Terminal modes enabling SGR mouse reporting with button tracking.
const (
	EnableMouse  = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	DisableMouse = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"
)

// IsMouse reports whether data looks like an SGR mouse report.
func IsMouse(data string) bool {
	return strings.HasPrefix(data, "\x1b[<")
}

// ParseMouse decodes an SGR mouse report.
func ParseMouse(data string) (Mouse, bool) {
	if !IsMouse(data) || len(data) < 9 {
		return Mouse{}, false
	}
	final := data[len(data)-1]
	if final != 'M' && final != 'm' {
		return Mouse{}, false
	}
	parts := strings.Split(data[3:len(data)-1], ";")
	if len(parts) != 3 {
		return Mouse{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Mouse{}, false
		}
		nums[i] = n
	}
	code := nums[0]
	m := Mouse{X: nums[1] - 1, Y: nums[2] - 1, Button: code & 0x03}
	switch {
	case code&64 != 0:
		m.Button = 0
		if code&0x01 == 0 {
			m.Action = MouseWheelUp
		} else {
			m.Action = MouseWheelDown
		}
	case code&32 != 0:
		m.Action = MouseMotion
	case final == 'm':
		m.Action = MouseRelease
	default:
		m.Action = MousePress
	}
	return m, true
}
