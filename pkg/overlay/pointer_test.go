// ABOUTME: Tests for backdrop and dismiss-control pointer handling
// ABOUTME: Frames are composited first so hit rectangles exist

package overlay

import "testing"

// With an 80x24 screen and a 40 column frame holding three rows the frame
// spans rows 9..13 and columns 20..59; the control sits at columns 55..57.
func openAndComposite(t *testing.T, c *Controller, opts ...Option) SurfaceID {
	t.Helper()
	id := c.Open(staticLines{"one", "two", "three"}, append([]Option{WithWidth(40)}, opts...)...)
	c.Composite(make([]string, 24), 80, 24)
	return id
}

func click(c *Controller, x, y int) {
	c.HandlePointer(PointerEvent{X: x, Y: y, Action: PointerDown})
	c.HandlePointer(PointerEvent{X: x, Y: y, Action: PointerUp})
}

func TestPointer_BackdropClickClosesTop(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	bottom := openAndComposite(t, c)
	openAndComposite(t, c)

	click(c, 0, 0)

	if c.Len() != 1 || !c.IsOpen(bottom) {
		t.Errorf("IDs() = %v; want only %s", c.IDs(), bottom)
	}
}

func TestPointer_DragOutOfFrameDoesNotClose(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	openAndComposite(t, c)

	c.HandlePointer(PointerEvent{X: 30, Y: 11, Action: PointerDown})
	c.HandlePointer(PointerEvent{X: 2, Y: 2, Action: PointerMove})
	c.HandlePointer(PointerEvent{X: 2, Y: 2, Action: PointerUp})

	if c.Len() != 1 {
		t.Error("drag from inside the frame closed the surface")
	}
}

func TestPointer_ClickInsideDoesNotClose(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	openAndComposite(t, c)
	click(c, 30, 11)

	if c.Len() != 1 {
		t.Error("click inside the frame closed the surface")
	}
}

func TestPointer_CloseButton(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	closed := 0
	openAndComposite(t, c, WithOnClose(func() { closed++ }))

	click(c, 56, 9)

	if c.Len() != 0 || closed != 1 {
		t.Errorf("Len() = %d, closed = %d; want 0 and 1", c.Len(), closed)
	}
}

func TestPointer_HiddenCloseButtonIsPartOfFrame(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	openAndComposite(t, c, WithCloseButton(false))
	click(c, 56, 9)

	if c.Len() != 1 {
		t.Error("click on the border closed a surface without the control")
	}
}

func TestPointer_EmptyStackIgnoresEvents(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if c.HandlePointer(PointerEvent{Action: PointerDown}) {
		t.Error("HandlePointer on empty stack = true; want false")
	}
}

func TestSurfaceRect_Hit(t *testing.T) {
	t.Parallel()

	r := surfaceRect{row: 2, col: 10, width: 20, height: 5, closeCol: 25}
	tests := []struct {
		x, y int
		want PointerTarget
	}{
		{0, 0, TargetBackdrop},
		{10, 2, TargetSurface},
		{29, 6, TargetSurface},
		{30, 6, TargetBackdrop},
		{25, 2, TargetCloseButton},
		{27, 2, TargetCloseButton},
		{28, 2, TargetSurface},
		{25, 3, TargetSurface},
	}
	for _, tt := range tests {
		if got := r.hit(tt.x, tt.y); got != tt.want {
			t.Errorf("hit(%d, %d) = %v; want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
