// ABOUTME: Container is an ordered collection of child Components
// ABOUTME: Guarded by an RWMutex so the render goroutine can read while handlers mutate

package tui

import "sync"

// Container renders its children top to bottom.
type Container struct {
	mu       sync.RWMutex
	children []Component
}

// NewContainer returns a Container holding children.
func NewContainer(children ...Component) *Container {
	return &Container{children: children}
}

// Add appends components.
func (c *Container) Add(comps ...Component) {
	c.mu.Lock()
	c.children = append(c.children, comps...)
	c.mu.Unlock()
}

// Remove removes comp and reports whether it was present.
func (c *Container) Remove(comp Component) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, child := range c.children {
		if child == comp {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all children.
func (c *Container) Clear() {
	c.mu.Lock()
	c.children = nil
	c.mu.Unlock()
}

// Children returns a snapshot of the children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Render renders every child in order.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Render(out, width)
	}
}

// Invalidate invalidates every child.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Invalidate()
	}
}
