package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory session registry. Every access runs under one
// mutex, so each request observes and mutates a session atomically —
// the backend equivalent of the wizard's single UI thread.
//
// Sessions are transient: anything idle past the eviction horizon is
// dropped lazily on the next access. There is no persistence.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store. A non-positive ttl disables eviction.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a fresh session and returns its id.
func (st *Store) Create() string {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictStale()

	id := uuid.NewString()
	st.sessions[id] = newSession(id, st.now())
	return id
}

// View runs fn with read access to the session. The session must not
// be mutated inside fn.
func (st *Store) View(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

// Update runs fn with exclusive access to the session and bumps its
// UpdatedAt timestamp when fn succeeds.
func (st *Store) Update(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictStale()

	s, ok := st.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(s); err != nil {
		return err
	}
	s.UpdatedAt = st.now()
	return nil
}

// Delete discards a session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// evictStale drops sessions idle past the ttl. Caller holds the lock.
func (st *Store) evictStale() {
	if st.ttl <= 0 {
		return
	}
	cutoff := st.now().Add(-st.ttl)
	for id, s := range st.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
