// ABOUTME: Pointer handling for the topmost surface: backdrop and dismiss-control clicks
// ABOUTME: A click counts only when press and release land on the same target

package overlay

// PointerAction is a mouse event kind.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerUp
	PointerMove
	PointerWheelUp
	PointerWheelDown
)

// PointerEvent is a mouse event in zero-based screen cells.
type PointerEvent struct {
	X, Y   int
	Action PointerAction
}

// PointerTarget is what a pointer event landed on.
type PointerTarget int

const (
	TargetNone PointerTarget = iota
	TargetBackdrop
	TargetSurface
	TargetCloseButton
)

// surfaceRect is where a frame was last drawn.
type surfaceRect struct {
	row, col      int
	width, height int
	closeCol      int
}

func (r surfaceRect) hit(x, y int) PointerTarget {
	if r.closeCol >= 0 && y == r.row && x >= r.closeCol && x < r.closeCol+len(closeGlyph) {
		return TargetCloseButton
	}
	if y >= r.row && y < r.row+r.height && x >= r.col && x < r.col+r.width {
		return TargetSurface
	}
	return TargetBackdrop
}

type pointerState struct {
	pressed bool
	target  PointerTarget
	id      SurfaceID
}

// HandlePointer dispatches a mouse event against the topmost surface and
// reports whether the overlay layer owns it. A press and release both on
// the backdrop close the top surface; the same on the dismiss control
// closes it when the control is shown. A drag that starts inside the frame
// and ends outside closes nothing.
func (c *Controller) HandlePointer(ev PointerEvent) bool {
	c.mustInit()

	c.mu.Lock()
	top, ok := c.stack.top()
	if !ok {
		c.pointer = pointerState{}
		c.mu.Unlock()
		return false
	}
	target := TargetSurface
	if r, ok := c.rects[top.ID]; ok {
		target = r.hit(ev.X, ev.Y)
	}

	var reason CloseReason
	switch ev.Action {
	case PointerDown:
		c.pointer = pointerState{pressed: true, target: target, id: top.ID}
	case PointerUp:
		p := c.pointer
		c.pointer = pointerState{}
		if p.pressed && p.id == top.ID && p.target == target {
			switch target {
			case TargetBackdrop:
				reason = ReasonBackdrop
			case TargetCloseButton:
				reason = ReasonDismiss
			}
		}
	}
	c.mu.Unlock()

	switch {
	case reason != ReasonNone:
		c.closeWith(top.ID, reason)
	case ev.Action == PointerWheelUp && target == TargetSurface:
		c.ScrollTop(-1)
	case ev.Action == PointerWheelDown && target == TargetSurface:
		c.ScrollTop(1)
	}
	return true
}
