// ABOUTME: Keybindings for overlay actions and catalogue actions
// ABOUTME: Built from defaults overridden by the keybindings section of the settings

package config

import (
	"slices"
	"sort"

	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/pkg/overlay"
)

// KeyAction is an action that can be bound to keys.
type KeyAction string

const (
	ActionCancel     KeyAction = "cancel"
	ActionDismiss    KeyAction = "dismiss"
	ActionScrollUp   KeyAction = "scroll_up"
	ActionScrollDown KeyAction = "scroll_down"

	ActionQuit     KeyAction = "quit"
	ActionDetail   KeyAction = "detail"
	ActionAdd      KeyAction = "add"
	ActionDelete   KeyAction = "delete"
	ActionFilter   KeyAction = "filter"
	ActionSearch   KeyAction = "search"
	ActionReview   KeyAction = "review"
	ActionCloseAll KeyAction = "close_all"
)

// Keybindings maps actions to canonical key names.
type Keybindings struct {
	bindings map[KeyAction][]string
}

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	return &Keybindings{bindings: map[KeyAction][]string{
		ActionCancel:     {"esc"},
		ActionDismiss:    {"ctrl+w"},
		ActionScrollUp:   {"pgup"},
		ActionScrollDown: {"pgdown"},

		ActionQuit:     {"q", "ctrl+c"},
		ActionDetail:   {"enter"},
		ActionAdd:      {"a"},
		ActionDelete:   {"d", "delete"},
		ActionFilter:   {"f"},
		ActionSearch:   {"/"},
		ActionReview:   {"r"},
		ActionCloseAll: {"ctrl+x"},
	}}
}

// KeybindingsFrom applies the settings' overrides to the defaults.
// Unknown action names are logged and ignored.
func KeybindingsFrom(s *Settings) *Keybindings {
	kb := NewKeybindings()
	if s == nil {
		return kb
	}
	names := make([]string, 0, len(s.Keybindings))
	for name := range s.Keybindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		action := KeyAction(name)
		if _, ok := kb.bindings[action]; !ok {
			log.Warn("config: unknown keybinding action %q ignored", name)
			continue
		}
		kb.bindings[action] = slices.Clone(s.Keybindings[name])
	}
	return kb
}

// Keys returns the keys bound to action.
func (kb *Keybindings) Keys(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.bindings[action]
}

// Matches reports whether key is bound to action.
func (kb *Keybindings) Matches(action KeyAction, key string) bool {
	return slices.Contains(kb.Keys(action), key)
}

// OverlayKeymap returns the bindings the overlay controller needs.
func (kb *Keybindings) OverlayKeymap() overlay.Keymap {
	return overlay.Keymap{
		Cancel:     kb.Keys(ActionCancel),
		Dismiss:    kb.Keys(ActionDismiss),
		ScrollUp:   kb.Keys(ActionScrollUp),
		ScrollDown: kb.Keys(ActionScrollDown),
	}
}
