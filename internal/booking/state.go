package booking

import (
	"sync"
	"time"

	"tourbooking/internal/domain/models"
)

// SharedState is the single travel-date/traveler pair that applies to every
// cart line of one user session.
type SharedState struct {
	SelectedDate *time.Time            `json:"selectedDate,omitempty"`
	Travelers    models.TravelerCounts `json:"travelers"`
}

// StateStore holds one session's shared booking state. All operations are
// synchronous in-memory mutations; subscribers are notified after each one.
type StateStore struct {
	mu          sync.Mutex
	date        *time.Time
	travelers   models.TravelerCounts
	initialized bool

	subs    map[int]func(SharedState)
	nextSub int
}

func NewStateStore() *StateStore {
	return &StateStore{
		travelers: models.DefaultTravelers(),
		subs:      map[int]func(SharedState){},
	}
}

// Snapshot returns a copy of the current state.
func (s *StateStore) Snapshot() SharedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *StateStore) snapshotLocked() SharedState {
	var d *time.Time
	if s.date != nil {
		cp := *s.date
		d = &cp
	}
	return SharedState{SelectedDate: d, Travelers: s.travelers}
}

// UpdateDate replaces the shared travel date. Nil clears it.
func (s *StateStore) UpdateDate(date *time.Time) {
	s.mu.Lock()
	if date != nil {
		cp := *date
		s.date = &cp
	} else {
		s.date = nil
	}
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

// UpdateTravelers replaces the shared traveler counts.
func (s *StateStore) UpdateTravelers(counts models.TravelerCounts) {
	s.mu.Lock()
	s.travelers = counts
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

// Reset restores the defaults (no date, two adults) and re-arms the one-shot
// cart seeding.
func (s *StateStore) Reset() {
	s.mu.Lock()
	s.date = nil
	s.travelers = models.DefaultTravelers()
	s.initialized = false
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

// InitializeFromCart seeds the shared state from the first loaded cart item.
// It fires at most once per store lifetime and overwrites unconditionally.
// Returns whether the seed was applied.
func (s *StateStore) InitializeFromCart(item models.CartItem) bool {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return false
	}
	s.initialized = true
	if item.SelectedDate != nil {
		cp := *item.SelectedDate
		s.date = &cp
	} else {
		s.date = nil
	}
	s.travelers = item.Travelers
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
	return true
}

// Selection builds a candidate booking selection from the shared state plus
// per-tour activity choices.
func (s *StateStore) Selection(activityIDs []string) models.BookingSelection {
	snap := s.Snapshot()
	t := snap.Travelers
	return models.BookingSelection{
		SelectedDate: snap.SelectedDate,
		Travelers:    &t,
		ActivityIDs:  append([]string(nil), activityIDs...),
	}
}

// Subscribe registers fn for state change notifications and returns the
// matching unsubscribe.
func (s *StateStore) Subscribe(fn func(SharedState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *StateStore) subscribersLocked() []func(SharedState) {
	out := make([]func(SharedState), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(SharedState), snap SharedState) {
	for _, fn := range subs {
		fn(snap)
	}
}

// Registry maps user sessions to their state store. Stores are created
// lazily on first access.
type Registry struct {
	mu sync.Mutex
	m  map[int64]*StateStore
}

func NewRegistry() *Registry {
	return &Registry{m: map[int64]*StateStore{}}
}

// For returns the store for a user, creating it when missing.
func (r *Registry) For(userID int64) *StateStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.m[userID]
	if !ok {
		st = NewStateStore()
		r.m[userID] = st
	}
	return st
}

// Drop discards a user's store, e.g. on logout.
func (r *Registry) Drop(userID int64) {
	r.mu.Lock()
	delete(r.m, userID)
	r.mu.Unlock()
}
