// ABOUTME: Tests for the ordered surface stack
// ABOUTME: Covers z-order, removal from the middle, drain order and snapshots

package overlay

import (
	"slices"
	"testing"
)

func ids(entries []Entry) []SurfaceID {
	out := make([]SurfaceID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestStack_RemoveKeepsOrder(t *testing.T) {
	t.Parallel()

	var s stack
	for _, id := range []SurfaceID{"a", "b", "c"} {
		s.push(Entry{ID: id})
	}
	if _, ok := s.remove("b"); !ok {
		t.Fatal("remove(b) = false; want true")
	}
	if _, ok := s.remove("b"); ok {
		t.Error("second remove(b) = true; want false")
	}
	if got := ids(s.snapshot()); !slices.Equal(got, []SurfaceID{"a", "c"}) {
		t.Errorf("snapshot = %v; want [a c]", got)
	}
	if top, _ := s.top(); top.ID != "c" {
		t.Errorf("top = %q; want c", top.ID)
	}
}

func TestStack_DrainTopFirst(t *testing.T) {
	t.Parallel()

	var s stack
	for _, id := range []SurfaceID{"a", "b", "c"} {
		s.push(Entry{ID: id})
	}
	if got := ids(s.drain()); !slices.Equal(got, []SurfaceID{"c", "b", "a"}) {
		t.Errorf("drain = %v; want [c b a]", got)
	}
	if s.len() != 0 {
		t.Errorf("len = %d; want 0", s.len())
	}
	if _, ok := s.popTop(); ok {
		t.Error("popTop on empty stack = true; want false")
	}
}

func TestStack_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	var s stack
	s.push(Entry{ID: "a"})
	snap := s.snapshot()
	s.push(Entry{ID: "b"})
	snap[0].ID = "z"

	if got := ids(s.snapshot()); !slices.Equal(got, []SurfaceID{"a", "b"}) {
		t.Errorf("snapshot = %v; want [a b]", got)
	}
}
