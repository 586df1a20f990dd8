// ABOUTME: Ordered stack of open surfaces; insertion order is z-order, last is topmost
// ABOUTME: Not synchronised on its own; the Controller guards every access

package overlay

import "github.com/mauromedda/cellar-go/pkg/tui"

// Entry is one open surface. Entries are immutable once pushed.
type Entry struct {
	ID      SurfaceID
	Content tui.Component
	OnClose func()

	frame *frame
	opts  surfaceOptions
}

type stack struct {
	entries []Entry
}

func (s *stack) push(e Entry) {
	s.entries = append(s.entries, e)
}

func (s *stack) len() int {
	return len(s.entries)
}

func (s *stack) index(id SurfaceID) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *stack) top() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// remove deletes the entry with id, preserving the order of the rest.
func (s *stack) remove(id SurfaceID) (Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, false
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return e, true
}

func (s *stack) popTop() (Entry, bool) {
	e, ok := s.top()
	if ok {
		s.entries = s.entries[:len(s.entries)-1:len(s.entries)-1]
	}
	return e, ok
}

// drain empties the stack and returns the removed entries topmost first.
func (s *stack) drain() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	s.entries = nil
	return out
}

// snapshot returns a copy of the entries bottom to top.
func (s *stack) snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
