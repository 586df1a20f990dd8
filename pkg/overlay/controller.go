// ABOUTME: Controller facade: open, close by id, close all, close top, occupancy
// ABOUTME: Owns the stack and keeps scroll lock and key router in step with it

package overlay

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/cellar-go/internal/eventbus"
	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

// ErrNoController is the precondition failure for using the overlay layer
// without a controller in scope.
var ErrNoController = errors.New("overlay: no controller in scope; wrap the context with overlay.WithController")

// maxIDAttempts bounds retries when a generator returns an id already open.
const maxIDAttempts = 8

const defaultWidth = 60

type surfaceDefaults struct {
	closeButton bool
	width       int
	position    Position
}

// Controller owns the surface stack. All methods are safe for concurrent
// use. The zero value is not usable; build one with New.
type Controller struct {
	mount  *MountPoint
	host   ScrollHost
	gutter int
	keymap Keymap
	bus    *eventbus.Bus[Event]
	newID  IDGenerator
	styles Styles

	requestRender func()
	defaults      surfaceDefaults

	mu      sync.Mutex
	stack   stack
	lock    *ScrollLock
	router  *KeyRouter
	pointer pointerState
	rects   map[SurfaceID]surfaceRect
}

// New builds a controller and attaches it to the process-wide mount point.
func New(opts ...ControllerOption) *Controller {
	c := &Controller{
		gutter:   tui.ScrollbarWidth,
		keymap:   DefaultKeymap(),
		newID:    newULID,
		styles:   DefaultStyles(),
		defaults: surfaceDefaults{closeButton: true, width: defaultWidth},
		rects:    make(map[SurfaceID]surfaceRect),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lock = NewScrollLock(c.host, c.gutter)
	c.router = newKeyRouter(c, c.keymap)
	c.mount = GetOrCreateMountPoint()
	c.mount.attach(c)
	return c
}

func (c *Controller) mustInit() {
	if c == nil || c.mount == nil {
		panic(ErrNoController)
	}
}

// Release closes every surface and detaches the controller from the mount
// point. The controller must not be used afterwards.
func (c *Controller) Release() {
	c.mustInit()
	c.CloseAll()
	c.mount.detach(c)
}

// Open pushes content as the new topmost surface and returns its id.
// content may implement Surface to split itself into regions.
func (c *Controller) Open(content tui.Component, opts ...Option) SurfaceID {
	c.mustInit()

	o := surfaceOptions{
		closeButton: c.defaults.closeButton,
		width:       c.defaults.width,
		position:    c.defaults.position,
	}
	for _, opt := range opts {
		opt(&o)
	}

	id, depth := c.push(content, o)

	log.Debug("overlay: opened %s depth=%d", id, depth)
	c.publish(Event{Kind: EventOpened, ID: id, Depth: depth})
	c.render()
	return id
}

func (c *Controller) push(content tui.Component, o surfaceOptions) (SurfaceID, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.uniqueIDLocked()
	c.stack.push(Entry{
		ID:      id,
		Content: content,
		OnClose: o.onClose,
		frame:   newFrame(layoutOf(content), o, c.styles),
		opts:    o,
	})
	c.syncLocked()
	return id, c.stack.len()
}

func (c *Controller) uniqueIDLocked() SurfaceID {
	for range maxIDAttempts {
		id := c.newID()
		if id != "" && c.stack.index(id) < 0 {
			return id
		}
	}
	panic(fmt.Sprintf("overlay: id generator produced no unused id in %d attempts", maxIDAttempts))
}

// Close removes the surface with id and runs its OnClose. Unknown ids,
// including ids already closed, are a no-op.
func (c *Controller) Close(id SurfaceID) {
	c.mustInit()
	c.closeWith(id, ReasonClose)
}

func (c *Controller) closeWith(id SurfaceID, reason CloseReason) {
	c.mu.Lock()
	e, ok := c.stack.remove(id)
	if ok {
		c.syncLocked()
	}
	depth := c.stack.len()
	c.mu.Unlock()
	if !ok {
		return
	}
	c.finish([]Entry{e}, depth, reason)
}

// CloseTop removes the topmost surface, if any. The top is resolved when
// the call runs, not when the triggering input was first seen.
func (c *Controller) CloseTop() {
	c.mustInit()
	c.closeTop(ReasonClose)
}

func (c *Controller) closeTop(reason CloseReason) {
	c.mu.Lock()
	e, ok := c.stack.popTop()
	if ok {
		c.syncLocked()
	}
	depth := c.stack.len()
	c.mu.Unlock()
	if !ok {
		return
	}
	c.finish([]Entry{e}, depth, reason)
}

// CloseAll empties the stack. Every removed surface's OnClose runs once,
// topmost first.
func (c *Controller) CloseAll() {
	c.mustInit()

	c.mu.Lock()
	removed := c.stack.drain()
	if len(removed) > 0 {
		c.syncLocked()
	}
	c.mu.Unlock()
	if len(removed) == 0 {
		return
	}
	c.finish(removed, 0, ReasonCloseAll)
}

// finish runs callbacks and publishes events for entries already removed
// from the stack. It runs without the lock so callbacks may call back in.
func (c *Controller) finish(removed []Entry, depth int, reason CloseReason) {
	for _, e := range removed {
		log.Debug("overlay: closed %s reason=%s depth=%d", e.ID, reason, depth)
		c.invokeOnClose(e)
		c.publish(Event{Kind: EventClosed, ID: e.ID, Depth: depth, Reason: reason})
	}
	c.render()
}

func (c *Controller) invokeOnClose(e Entry) {
	if e.OnClose == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("overlay: onClose for %s panicked: %v", e.ID, r)
		}
	}()
	e.OnClose()
}

// syncLocked brings scroll lock and key router in line with the stack.
func (c *Controller) syncLocked() {
	n := c.stack.len()
	c.lock.Sync(n)
	top, ok := c.stack.top()
	c.router.retarget(top.ID, ok)
	for id := range c.rects {
		if c.stack.index(id) < 0 {
			delete(c.rects, id)
		}
	}
}

// HasOpenSurfaces reports whether the stack is non-empty.
func (c *Controller) HasOpenSurfaces() bool {
	return c.Len() > 0
}

// Len returns the number of open surfaces.
func (c *Controller) Len() int {
	c.mustInit()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.len()
}

// Top returns the id of the topmost surface.
func (c *Controller) Top() (SurfaceID, bool) {
	e, ok := c.topEntry()
	return e.ID, ok
}

// IDs returns the open surface ids, bottom to top.
func (c *Controller) IDs() []SurfaceID {
	c.mustInit()
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]SurfaceID, 0, c.stack.len())
	for _, e := range c.stack.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// IsOpen reports whether id is on the stack.
func (c *Controller) IsOpen(id SurfaceID) bool {
	c.mustInit()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.index(id) >= 0
}

func (c *Controller) topEntry() (Entry, bool) {
	c.mustInit()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.top()
}

// ScrollLocked reports whether the page behind the stack is locked.
func (c *Controller) ScrollLocked() bool {
	c.mustInit()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lock.Locked()
}

// Router exposes the keyboard router.
func (c *Controller) Router() *KeyRouter {
	c.mustInit()
	return c.router
}

// HandleKey routes a canonical key name to the topmost surface. It reports
// whether the overlay layer consumed the key.
func (c *Controller) HandleKey(name string) bool {
	c.mustInit()
	return c.router.HandleKey(name)
}

// ScrollTop scrolls the content region of the topmost surface.
func (c *Controller) ScrollTop(delta int) bool {
	top, ok := c.topEntry()
	if !ok || !top.frame.scrollBy(delta) {
		return false
	}
	c.render()
	return true
}

// Mount returns the mount point the controller draws into.
func (c *Controller) Mount() *MountPoint {
	c.mustInit()
	return c.mount
}

func (c *Controller) publish(ev Event) {
	if c.bus != nil {
		c.bus.Publish(ev)
	}
}

func (c *Controller) render() {
	if c.requestRender != nil {
		c.requestRender()
	}
}

// Composite draws this controller's stack over base. An empty stack leaves
// base untouched; otherwise base is dimmed as the backdrop and each frame is
// placed bottom to top.
func (c *Controller) Composite(base []string, w, h int) []string {
	c.mustInit()

	c.mu.Lock()
	entries := c.stack.snapshot()
	c.mu.Unlock()
	if len(entries) == 0 {
		return base
	}

	lines := make([]string, h)
	for i := range lines {
		if i < len(base) && base[i] != "" {
			lines[i] = c.styles.Backdrop.Render(width.StripANSI(base[i]))
		}
	}

	rects := make(map[SurfaceID]surfaceRect, len(entries))
	maxHeight := h
	if h > 4 {
		maxHeight = h - 2
	}
	for _, e := range entries {
		fw := min(e.opts.width, w-2)
		frameLines, closeCol := e.frame.render(fw, maxHeight)
		if len(frameLines) == 0 {
			continue
		}
		fh := len(frameLines)
		row := placeRow(e.opts.position, h, fh)
		col := max((w-fw)/2, 0)
		for i, fl := range frameLines {
			r := row + i
			if r < 0 || r >= h {
				continue
			}
			lines[r] = splice(lines[r], fl, col, fw, w)
		}
		rect := surfaceRect{row: row, col: col, width: fw, height: fh, closeCol: -1}
		if closeCol >= 0 {
			rect.closeCol = col + closeCol
		}
		rects[e.ID] = rect
	}

	c.mu.Lock()
	for id, r := range rects {
		if c.stack.index(id) >= 0 {
			c.rects[id] = r
		}
	}
	c.mu.Unlock()
	return lines
}

func placeRow(p Position, h, fh int) int {
	switch p {
	case PositionTop:
		return min(1, max(h-fh, 0))
	case PositionBottom:
		return max(h-fh-1, 0)
	}
	return max((h-fh)/2, 0)
}

// splice overwrites columns [col, col+fw) of bg with fg.
func splice(bg, fg string, col, fw, w int) string {
	prefix := width.PadRight(width.SliceByColumn(bg, 0, col), col)
	suffix := ""
	if end := col + fw; end < w {
		suffix = width.SliceByColumn(bg, end, w)
	}
	return prefix + "\x1b[0m" + fg + "\x1b[0m" + suffix
}
