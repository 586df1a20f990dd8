// ABOUTME: Key type and Parse for raw terminal keyboard input
// ABOUTME: Name() yields canonical binding names shared with the config layer ("esc", "ctrl+w")

package key

import "unicode/utf8"

// Key is one parsed keyboard event.
type Key struct {
	Type  KeyType
	Rune  rune // printable rune, or the letter for KeyCtrl
	Alt   bool
	Shift bool
}

// KeyType enumerates the keys the parser recognises.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyCtrl         // Ctrl+<letter>; Rune holds the lowercase letter
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyUnknown
)

// legacySequences maps CSI and SS3 encodings to keys.
var legacySequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},
	"\x1bOA":  {Type: KeyUp},
	"\x1bOB":  {Type: KeyDown},
	"\x1bOC":  {Type: KeyRight},
	"\x1bOD":  {Type: KeyLeft},
	"\x1bOH":  {Type: KeyHome},
	"\x1bOF":  {Type: KeyEnd},
}

// Parse turns one input event (as produced by Split) into a Key.
func Parse(data string) Key {
	switch {
	case data == "":
		return Key{Type: KeyUnknown}
	case len(data) == 1:
		return parseByte(data[0])
	case data[0] == 0x1b:
		return parseEscape(data)
	}
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: KeyCtrl, Rune: rune('a' + b - 1)}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscape(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	if len(data) == 2 {
		k := parseByte(data[1])
		if k.Type != KeyUnknown && k.Type != KeyEscape {
			k.Alt = true
			return k
		}
	}
	return Key{Type: KeyUnknown}
}

var typeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "esc",
	KeyUnknown:   "unknown",
}

// Name returns the canonical binding name of k. The vocabulary matches what
// Bubble Tea reports for tea.KeyMsg so one keybinding table serves both
// front-ends.
func (k Key) Name() string {
	var base string
	switch k.Type {
	case KeyRune:
		if k.Rune == ' ' {
			base = " "
		} else {
			base = string(k.Rune)
		}
	case KeyCtrl:
		base = "ctrl+" + string(k.Rune)
	default:
		base = typeNames[k.Type]
	}
	if k.Alt {
		return "alt+" + base
	}
	return base
}

// String implements fmt.Stringer.
func (k Key) String() string { return k.Name() }
