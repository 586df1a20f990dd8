// ABOUTME: Lifecycle events published on the controller's event bus
// ABOUTME: Close events carry the path that removed the surface

package overlay

// EventKind distinguishes opened from closed events.
type EventKind int

const (
	EventOpened EventKind = iota
	EventClosed
)

func (k EventKind) String() string {
	if k == EventOpened {
		return "opened"
	}
	return "closed"
}

// CloseReason records which path removed a surface.
type CloseReason int

const (
	ReasonNone CloseReason = iota
	ReasonClose
	ReasonCloseAll
	ReasonCancelKey
	ReasonBackdrop
	ReasonDismiss
)

func (r CloseReason) String() string {
	switch r {
	case ReasonClose:
		return "close"
	case ReasonCloseAll:
		return "close-all"
	case ReasonCancelKey:
		return "cancel-key"
	case ReasonBackdrop:
		return "backdrop"
	case ReasonDismiss:
		return "dismiss"
	}
	return "none"
}

// Event describes one stack mutation. Depth is the stack size after it.
type Event struct {
	Kind   EventKind
	ID     SurfaceID
	Depth  int
	Reason CloseReason
}
