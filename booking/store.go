package booking

import (
	"sync"
	"time"
)

// Store holds the wizards of active visits, keyed by the opaque handle the
// session cookie carries. Drafts live in process memory only: the site keeps
// no durable state, and losing drafts on restart is the intended lifecycle.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
	now     func() time.Time
}

type entry struct {
	wizard *Wizard
	seen   time.Time
}

// NewStore creates a store whose drafts expire ttl after their last use.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Put registers a wizard under its own ID.
func (s *Store) Put(w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[w.ID()] = &entry{wizard: w, seen: s.now()}
}

// Get returns the wizard for an ID and refreshes its expiry. An expired
// draft is removed and reported as missing; the caller starts a fresh one.
func (s *Store) Get(id string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.seen) > s.ttl {
		delete(s.entries, id)
		return nil, false
	}
	e.seen = s.now()
	return e.wizard, true
}

// Delete discards a draft, typically right after its confirmation renders.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Sweep removes every expired draft and reports how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	now := s.now()
	for id, e := range s.entries {
		if now.Sub(e.seen) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live drafts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
