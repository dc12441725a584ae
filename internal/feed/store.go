package feed

import (
	"sort"
	"sync"
	"time"

	"flight-radar.klederson.com/internal/airship"
)

// UpdateMsg is one kinematic report for an airship, delivered to the
// Bubble Tea program like any other message.
type UpdateMsg struct {
	Airship airship.Airship
	At      time.Time
}

type entry struct {
	ship     airship.Airship
	lastSeen time.Time
}

// Store is a thread-safe store of the latest report per airship.
type Store struct {
	mu    sync.RWMutex
	ships map[string]entry
	now   func() time.Time
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{
		ships: make(map[string]entry),
		now:   time.Now,
	}
}

// Upsert records msg, replacing any earlier report for the same id.
// Invalid airships are rejected and leave the store untouched.
func (s *Store) Upsert(msg UpdateMsg) error {
	if err := msg.Airship.Validate(); err != nil {
		return err
	}
	at := msg.At
	if at.IsZero() {
		at = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.ships[msg.Airship.ID]; ok && at.Before(prev.lastSeen) {
		return nil // out of order
	}
	s.ships[msg.Airship.ID] = entry{ship: msg.Airship, lastSeen: at}
	return nil
}

// Evict removes airships not seen within timeout and returns their ids,
// sorted.
func (s *Store) Evict(timeout time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-timeout)
	var evicted []string
	for id, e := range s.ships {
		if e.lastSeen.Before(cutoff) {
			delete(s.ships, id)
			evicted = append(evicted, id)
		}
	}
	sort.Strings(evicted)
	return evicted
}

// Snapshot returns an immutable collection of the current airships sorted
// by id, so pair order is stable from frame to frame.
func (s *Store) Snapshot() (*airship.Airships, error) {
	s.mu.RLock()
	ships := make([]airship.Airship, 0, len(s.ships))
	for _, e := range s.ships {
		ships = append(ships, e.ship)
	}
	s.mu.RUnlock()

	sort.Slice(ships, func(i, j int) bool {
		return ships[i].ID < ships[j].ID
	})
	return airship.NewAirships(ships...)
}

// Count returns the total number of tracked airships.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ships)
}
