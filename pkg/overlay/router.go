// ABOUTME: Keyboard router: forwards keys to the topmost surface only
// ABOUTME: Two states, detached (empty stack) and attached to the current top

package overlay

import (
	"slices"
	"sync"

	"github.com/mauromedda/cellar-go/pkg/tui"
)

// RouterState is the keyboard router's attachment state.
type RouterState int

const (
	StateDetached RouterState = iota
	StateAttached
)

func (s RouterState) String() string {
	if s == StateAttached {
		return "attached"
	}
	return "detached"
}

// Keymap lists the canonical key names bound to each surface action.
type Keymap struct {
	Cancel     []string
	Dismiss    []string
	ScrollUp   []string
	ScrollDown []string
}

// DefaultKeymap binds esc to cancel, ctrl+w to dismiss and page keys to
// content scrolling.
func DefaultKeymap() Keymap {
	return Keymap{
		Cancel:     []string{"esc"},
		Dismiss:    []string{"ctrl+w"},
		ScrollUp:   []string{"pgup"},
		ScrollDown: []string{"pgdown"},
	}
}

type keyAction int

const (
	actionForward keyAction = iota
	actionCancel
	actionDismiss
	actionScrollUp
	actionScrollDown
)

func (k Keymap) action(name string) keyAction {
	switch {
	case slices.Contains(k.Cancel, name):
		return actionCancel
	case slices.Contains(k.Dismiss, name):
		return actionDismiss
	case slices.Contains(k.ScrollUp, name):
		return actionScrollUp
	case slices.Contains(k.ScrollDown, name):
		return actionScrollDown
	}
	return actionForward
}

// KeyRouter tracks which surface keys go to. The controller retargets it
// after every mutation; it never holds the controller lock while
// dispatching.
type KeyRouter struct {
	ctrl   *Controller
	keymap Keymap

	mu     sync.Mutex
	state  RouterState
	target SurfaceID
}

func newKeyRouter(c *Controller, k Keymap) *KeyRouter {
	return &KeyRouter{ctrl: c, keymap: k}
}

// retarget attaches to top, or detaches when the stack is empty.
func (r *KeyRouter) retarget(top SurfaceID, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !ok {
		r.state, r.target = StateDetached, ""
		return
	}
	r.state, r.target = StateAttached, top
}

// State returns the current state.
func (r *KeyRouter) State() RouterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Target returns the surface keys are routed to, empty when detached.
func (r *KeyRouter) Target() SurfaceID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

// HandleKey dispatches one key. It reports whether the overlay layer owns
// the key, which is true whenever any surface is open: the page behind the
// stack never sees keys while it is covered.
func (r *KeyRouter) HandleKey(name string) bool {
	if r.State() == StateDetached {
		return false
	}

	c := r.ctrl
	switch r.keymap.action(name) {
	case actionCancel:
		c.closeTop(ReasonCancelKey)
		return true
	case actionDismiss:
		if top, ok := c.topEntry(); ok && top.frame.closeButton {
			c.closeWith(top.ID, ReasonDismiss)
		}
		return true
	case actionScrollUp:
		c.ScrollTop(-1)
		return true
	case actionScrollDown:
		c.ScrollTop(1)
		return true
	}

	top, ok := c.topEntry()
	if !ok {
		return true
	}
	if h, ok := top.Content.(tui.KeyHandler); ok && h.HandleKey(name) {
		c.render()
	}
	return true
}
