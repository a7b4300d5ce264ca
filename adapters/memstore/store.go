// Package memstore is the in-process session owner: a mutex-guarded
// map keyed by session id. It is the reference implementation of
// ports.SessionRepository for hosts that keep assessments in memory
// for the duration of a request cycle.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"moodprobe/domain/belief"
	"moodprobe/domain/core"
)

// Store holds sessions in memory. Safe for concurrent access across
// distinct session ids; driving one session from two goroutines is
// still the caller's problem, as the engine documents.
type Store struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*belief.Session
}

// New creates an empty store.
func New() *Store {
	return &Store{sessions: make(map[core.SessionID]*belief.Session)}
}

// Save stores or replaces a session.
func (s *Store) Save(_ context.Context, sess *belief.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get retrieves a session by id.
func (s *Store) Get(_ context.Context, id core.SessionID) (*belief.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrSessionNotFound, id)
	}
	return sess, nil
}

// Delete removes a session if present.
func (s *Store) Delete(_ context.Context, id core.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
