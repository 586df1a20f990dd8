// ABOUTME: Tests for the context boundary
// ABOUTME: Lookups inside the boundary share one controller; outside they fail

package overlay

import (
	"context"
	"errors"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	ctx := WithController(context.Background(), c)
	nested, cancel := context.WithCancel(ctx)
	defer cancel()

	got, err := FromContext(nested)
	if err != nil || got != c {
		t.Errorf("FromContext = %p, %v; want %p", got, err, c)
	}

	id := MustFromContext(nested).Open(staticLines{"x"})
	if !c.IsOpen(id) {
		t.Error("surface opened through nested lookup is not on the shared stack")
	}
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	if _, err := FromContext(context.Background()); !errors.Is(err, ErrNoController) {
		t.Errorf("err = %v; want ErrNoController", err)
	}

	defer func() {
		if r := recover(); r != ErrNoController {
			t.Errorf("recovered %v; want ErrNoController", r)
		}
	}()
	MustFromContext(context.Background())
}
