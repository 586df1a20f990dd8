// ABOUTME: Process-wide mount point: the single render layer all surfaces draw into
// ABOUTME: Created lazily on first use and never torn down

package overlay

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/cellar-go/internal/log"
)

// MountID names the mount layer.
const MountID = "overlay-root"

// MountPoint is the top-level render layer. Front-ends add it to their
// compositor once; every attached controller draws its stack into it.
type MountPoint struct {
	id string

	mu          sync.Mutex
	controllers []*Controller
}

var (
	mountOnce      sync.Once
	mountPoint     *MountPoint
	mountCreations atomic.Int32
)

// GetOrCreateMountPoint returns the mount point, creating it on first call.
// Concurrent first calls still create exactly one.
func GetOrCreateMountPoint() *MountPoint {
	mountOnce.Do(func() {
		mountPoint = &MountPoint{id: MountID}
		mountCreations.Add(1)
		log.Debug("overlay: mount point %q created", MountID)
	})
	return mountPoint
}

// ID returns MountID.
func (m *MountPoint) ID() string {
	return m.id
}

func (m *MountPoint) attach(c *Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.controllers, c) {
		m.controllers = append(m.controllers, c)
	}
}

func (m *MountPoint) detach(c *Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controllers = slices.DeleteFunc(m.controllers, func(x *Controller) bool { return x == c })
}

// Composite implements tui.Layer: each attached controller draws its stack
// above base, bottom surface first.
func (m *MountPoint) Composite(base []string, width, height int) []string {
	m.mu.Lock()
	controllers := slices.Clone(m.controllers)
	m.mu.Unlock()

	for _, c := range controllers {
		base = c.Composite(base, width, height)
	}
	return base
}
