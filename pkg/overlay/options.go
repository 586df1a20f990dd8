// ABOUTME: Functional options for Open (per surface) and New (per controller)
// ABOUTME: Surface defaults come from the controller, usually fed by config

package overlay

import (
	"github.com/mauromedda/cellar-go/internal/eventbus"
)

// Position is where a surface frame sits on the screen.
type Position int

const (
	PositionCenter Position = iota
	PositionTop
	PositionBottom
)

// ParsePosition maps "center", "top" or "bottom" to a Position; anything
// else is center.
func ParsePosition(s string) Position {
	switch s {
	case "top":
		return PositionTop
	case "bottom":
		return PositionBottom
	}
	return PositionCenter
}

type surfaceOptions struct {
	onClose     func()
	closeButton bool
	position    Position
	width       int
	title       string
}

// Option configures one surface.
type Option func(*surfaceOptions)

// WithOnClose registers fn to run once when the surface is removed, whatever
// path removes it.
func WithOnClose(fn func()) Option {
	return func(o *surfaceOptions) { o.onClose = fn }
}

// WithCloseButton shows or hides the "[x]" dismiss control.
func WithCloseButton(show bool) Option {
	return func(o *surfaceOptions) { o.closeButton = show }
}

// WithPosition places the frame.
func WithPosition(p Position) Option {
	return func(o *surfaceOptions) { o.position = p }
}

// WithWidth sets the outer frame width in columns.
func WithWidth(cols int) Option {
	return func(o *surfaceOptions) { o.width = cols }
}

// WithTitle prints a title in the top border.
func WithTitle(title string) Option {
	return func(o *surfaceOptions) { o.title = title }
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithScrollHost sets the page that is scroll-locked while surfaces are open.
func WithScrollHost(h ScrollHost) ControllerOption {
	return func(c *Controller) { c.host = h }
}

// WithGutter overrides the scrollbar width compensated while locked.
func WithGutter(cols int) ControllerOption {
	return func(c *Controller) { c.gutter = cols }
}

// WithKeymap replaces the default key bindings.
func WithKeymap(k Keymap) ControllerOption {
	return func(c *Controller) { c.keymap = k }
}

// WithBus publishes lifecycle events on bus.
func WithBus(bus *eventbus.Bus[Event]) ControllerOption {
	return func(c *Controller) { c.bus = bus }
}

// WithIDGenerator replaces the ULID generator.
func WithIDGenerator(gen IDGenerator) ControllerOption {
	return func(c *Controller) { c.newID = gen }
}

// WithRenderFunc is called after every stack mutation and scroll change.
func WithRenderFunc(fn func()) ControllerOption {
	return func(c *Controller) { c.requestRender = fn }
}

// WithStyles overrides DefaultStyles.
func WithStyles(s Styles) ControllerOption {
	return func(c *Controller) { c.styles = s }
}

// WithDefaultCloseButton sets whether surfaces show the dismiss control
// unless WithCloseButton says otherwise.
func WithDefaultCloseButton(show bool) ControllerOption {
	return func(c *Controller) { c.defaults.closeButton = show }
}

// WithMaxWidth sets the default outer frame width.
func WithMaxWidth(cols int) ControllerOption {
	return func(c *Controller) { c.defaults.width = cols }
}

// WithDefaultPosition sets where surfaces are placed unless WithPosition
// says otherwise.
func WithDefaultPosition(p Position) ControllerOption {
	return func(c *Controller) { c.defaults.position = p }
}
