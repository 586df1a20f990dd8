// ABOUTME: SurfaceID type and the default ULID generator used by Open
// ABOUTME: ULIDs are unique and monotonically increasing within the process

package overlay

import "github.com/oklog/ulid/v2"

// SurfaceID identifies one open surface. It is only valid as a handle for the
// controller that returned it.
type SurfaceID string

// IDGenerator produces surface ids.
type IDGenerator func() SurfaceID

func newULID() SurfaceID {
	return SurfaceID(ulid.Make().String())
}
