// ABOUTME: Scroll-lock coordinator: locks the page while any surface is open
// ABOUTME: Snapshots the page style once per lock period and restores it exactly once

package overlay

import "github.com/mauromedda/cellar-go/pkg/tui"

// ScrollHost is the page whose scrolling is frozen while surfaces are open.
// tui.Viewport implements it.
type ScrollHost interface {
	ScrollStyle() tui.ScrollStyle
	SetScrollStyle(tui.ScrollStyle)
}

// ScrollLock derives the page's lock state from stack occupancy.
type ScrollLock struct {
	host   ScrollHost
	gutter int
	locked bool
	saved  tui.ScrollStyle
}

// NewScrollLock returns a lock for host. gutter is the width a visible
// scrollbar occupies; it is added to the right padding while locked so the
// page does not reflow. host may be nil, in which case only the state is
// tracked.
func NewScrollLock(host ScrollHost, gutter int) *ScrollLock {
	return &ScrollLock{host: host, gutter: gutter}
}

// Sync re-evaluates the lock for a stack of n surfaces.
func (l *ScrollLock) Sync(n int) {
	switch {
	case n > 0 && !l.locked:
		l.locked = true
		if l.host == nil {
			return
		}
		l.saved = l.host.ScrollStyle()
		lockedStyle := tui.ScrollStyle{
			Overflow:     tui.OverflowHidden,
			PaddingRight: l.saved.PaddingRight,
		}
		if l.saved.Overflow == tui.OverflowAuto {
			lockedStyle.PaddingRight += l.gutter
		}
		l.host.SetScrollStyle(lockedStyle)
	case n == 0 && l.locked:
		l.locked = false
		if l.host == nil {
			return
		}
		l.host.SetScrollStyle(l.saved)
		l.saved = tui.ScrollStyle{}
	}
}

// Locked reports whether the page is currently locked.
func (l *ScrollLock) Locked() bool {
	return l.locked
}
