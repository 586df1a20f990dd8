// ABOUTME: In-memory wine store with search, filtering and review management
// ABOUTME: Every mutation publishes a Change on the store's event bus

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mauromedda/cellar-go/internal/eventbus"
	"github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/pkg/tui/fuzzy"
)

// ErrNotFound is returned for unknown wine or review ids.
var ErrNotFound = errors.New("not found")

// ChangeKind names a store mutation.
type ChangeKind string

const (
	WineAdded     ChangeKind = "wine-added"
	WineDeleted   ChangeKind = "wine-deleted"
	ReviewAdded   ChangeKind = "review-added"
	ReviewUpdated ChangeKind = "review-updated"
	ReviewDeleted ChangeKind = "review-deleted"
)

// Change describes one mutation.
type Change struct {
	Kind     ChangeKind
	WineID   int
	ReviewID int
}

// Store holds the catalogue. It is safe for concurrent use; returned wines
// are copies.
type Store struct {
	mu     sync.RWMutex
	wines  []Wine
	nextID int
	nextRv int
	now    func() time.Time

	changes *eventbus.Bus[Change]
}

// NewStore builds a store from wines. Ids of zero are assigned.
func NewStore(wines []Wine) *Store {
	s := &Store{now: time.Now, changes: eventbus.New[Change]()}
	for _, w := range wines {
		s.nextID = max(s.nextID, w.ID)
		for _, r := range w.Reviews {
			s.nextRv = max(s.nextRv, r.ID)
		}
	}
	for _, w := range wines {
		w = w.clone()
		if w.ID == 0 {
			s.nextID++
			w.ID = s.nextID
		}
		for i := range w.Reviews {
			if w.Reviews[i].ID == 0 {
				s.nextRv++
				w.Reviews[i].ID = s.nextRv
			}
		}
		s.wines = append(s.wines, w)
	}
	return s
}

// Subscribe registers fn for change notifications.
func (s *Store) Subscribe(fn func(Change)) func() {
	return s.changes.Subscribe(fn)
}

func (s *Store) publish(c Change) {
	log.Debug("catalog: %s wine=%d review=%d", c.Kind, c.WineID, c.ReviewID)
	s.changes.Publish(c)
}

// Len returns the number of wines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wines)
}

// List returns the wines in catalogue order.
func (s *Store) List() []Wine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Wine, len(s.wines))
	for i, w := range s.wines {
		out[i] = w.clone()
	}
	return out
}

// Get returns the wine with id.
func (s *Store) Get(id int) (Wine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Wine{}, fmt.Errorf("wine %d: %w", id, ErrNotFound)
	}
	return s.wines[i].clone(), nil
}

func (s *Store) indexLocked(id int) int {
	return slices.IndexFunc(s.wines, func(w Wine) bool { return w.ID == id })
}

// Add validates w, assigns an id and appends it.
func (s *Store) Add(w Wine) (Wine, error) {
	if err := w.Validate(); err != nil {
		return Wine{}, err
	}
	s.mu.Lock()
	s.nextID++
	w = w.clone()
	w.ID = s.nextID
	s.wines = append(s.wines, w)
	s.mu.Unlock()

	s.publish(Change{Kind: WineAdded, WineID: w.ID})
	return w.clone(), nil
}

// Delete removes the wine with id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("wine %d: %w", id, ErrNotFound)
	}
	s.wines = slices.Delete(s.wines, i, i+1)
	s.mu.Unlock()

	s.publish(Change{Kind: WineDeleted, WineID: id})
	return nil
}

// AddReview validates r and attaches it to the wine with wineID.
func (s *Store) AddReview(wineID int, r Review) (Review, error) {
	if err := r.Validate(); err != nil {
		return Review{}, err
	}
	s.mu.Lock()
	i := s.indexLocked(wineID)
	if i < 0 {
		s.mu.Unlock()
		return Review{}, fmt.Errorf("wine %d: %w", wineID, ErrNotFound)
	}
	s.nextRv++
	r.ID = s.nextRv
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.Aroma = slices.Clone(r.Aroma)
	s.wines[i].Reviews = append(s.wines[i].Reviews, r)
	s.mu.Unlock()

	s.publish(Change{Kind: ReviewAdded, WineID: wineID, ReviewID: r.ID})
	return r, nil
}

// UpdateReview replaces the content of an existing review, keeping its id,
// author and creation time.
func (s *Store) UpdateReview(wineID int, r Review) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	wi, ri := s.reviewIndexLocked(wineID, r.ID)
	if ri < 0 {
		s.mu.Unlock()
		return fmt.Errorf("review %d of wine %d: %w", r.ID, wineID, ErrNotFound)
	}
	old := s.wines[wi].Reviews[ri]
	r.Author, r.CreatedAt = old.Author, old.CreatedAt
	r.Aroma = slices.Clone(r.Aroma)
	s.wines[wi].Reviews[ri] = r
	s.mu.Unlock()

	s.publish(Change{Kind: ReviewUpdated, WineID: wineID, ReviewID: r.ID})
	return nil
}

// DeleteReview removes one review.
func (s *Store) DeleteReview(wineID, reviewID int) error {
	s.mu.Lock()
	wi, ri := s.reviewIndexLocked(wineID, reviewID)
	if ri < 0 {
		s.mu.Unlock()
		return fmt.Errorf("review %d of wine %d: %w", reviewID, wineID, ErrNotFound)
	}
	s.wines[wi].Reviews = slices.Delete(s.wines[wi].Reviews, ri, ri+1)
	s.mu.Unlock()

	s.publish(Change{Kind: ReviewDeleted, WineID: wineID, ReviewID: reviewID})
	return nil
}

func (s *Store) reviewIndexLocked(wineID, reviewID int) (int, int) {
	wi := s.indexLocked(wineID)
	if wi < 0 {
		return -1, -1
	}
	ri := slices.IndexFunc(s.wines[wi].Reviews, func(r Review) bool { return r.ID == reviewID })
	return wi, ri
}

// Search returns the wines passing f whose name or region fuzzy-matches
// query, best match first. An empty query keeps catalogue order.
func (s *Store) Search(query string, f Filter) []Wine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]Wine, 0, len(s.wines))
	for _, w := range s.wines {
		if f.Match(&w) {
			candidates = append(candidates, w.clone())
		}
	}
	if query == "" {
		return candidates
	}
	keys := make([]string, len(candidates))
	for i, w := range candidates {
		keys[i] = w.Name + " " + w.Region
	}
	matches := fuzzy.Find(query, keys)
	out := make([]Wine, len(matches))
	for i, m := range matches {
		out[i] = candidates[m.Index]
	}
	return out
}

// PriceRange returns the lowest and highest price in the catalogue.
func (s *Store) PriceRange() (lo, hi int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, w := range s.wines {
		if i == 0 || w.Price < lo {
			lo = w.Price
		}
		hi = max(hi, w.Price)
	}
	return lo, hi
}
