// ABOUTME: Context boundary that makes one Controller reachable from any depth
// ABOUTME: FromContext fails with ErrNoController outside the boundary

package overlay

import "context"

type ctxKey struct{}

// WithController returns a child context carrying c.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the controller in ctx, or ErrNoController.
func FromContext(ctx context.Context) (*Controller, error) {
	if ctx == nil {
		return nil, ErrNoController
	}
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	if !ok || c == nil {
		return nil, ErrNoController
	}
	return c, nil
}

// MustFromContext is FromContext for callers that treat a missing
// controller as a programming error. It panics with ErrNoController.
func MustFromContext(ctx context.Context) *Controller {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
