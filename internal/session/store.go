package session

import (
	"sync"
	"time"
)

type entry struct {
	state   State
	touched time.Time
}

// Store is a concurrency-safe in-memory session store. Sessions hold only
// UI state; weather data itself is never cached. Idle sessions are dropped
// by Prune, driven by the sweep scheduler.
type Store struct {
	mu sync.RWMutex

	sessions map[string]*entry
	maxAge   time.Duration // 0 = unlimited
	now      func() time.Time
}

// NewStore creates a Store. Sessions idle for longer than maxAge are
// eligible for pruning; maxAge <= 0 disables age-based eviction.
func NewStore(maxAge time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Get returns the state for id, creating a fresh default session when the
// id is unknown. Touches the session either way.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		e = &entry{state: NewState()}
		s.sessions[id] = e
	}
	e.touched = s.now()
	return e.state
}

// Put stores the updated state for id.
func (s *Store) Put(id string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{state: state, touched: s.now()}
}

// Prune removes sessions idle longer than the configured max age and
// returns how many were dropped.
func (s *Store) Prune() int {
	if s.maxAge <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.maxAge)
	dropped := 0
	for id, e := range s.sessions {
		if e.touched.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
