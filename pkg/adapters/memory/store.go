// Package memory provides the in-memory SessionStore. It is the default
// backend: the ordering core only promises in-process state.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/samovar/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Session
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Session),
	}
}

// Save persists the session in memory.
func (s *Store) Save(ctx context.Context, userID string, session *domain.Session) error {
	// Clone to ensure isolation, similar to serialization
	copied := session.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = copied
	return nil
}

// Load retrieves the session from memory.
func (s *Store) Load(ctx context.Context, userID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.data[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer
	return session.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

// List returns the users with active sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.data))
	for id := range s.data {
		users = append(users, id)
	}
	return users, nil
}
