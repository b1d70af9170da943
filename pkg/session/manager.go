// Package session serializes access to per-user sessions. All operations
// for one user run strictly one at a time; different users proceed in
// parallel.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/samovar/internal/logging"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.SessionStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new session Manager with the given store.
func NewManager(store ports.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(userID) after
// unlocking.
func (m *Manager) acquire(userID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		entry = &lockEntry{}
		m.locks[userID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry when it
// reaches zero.
func (m *Manager) release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, userID)
	}
}

// WithLock executes fn while holding the lock for the user.
func (m *Manager) WithLock(ctx context.Context, userID string, fn func(context.Context) error) error {
	entry := m.acquire(userID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(userID)
	}()

	return fn(ctx)
}

// Update loads the user's session (creating a fresh one at rootID if none
// exists), runs fn on it under the user's lock, and saves the result.
// The session is only persisted when fn succeeds, so a rejected event
// never leaves a half-applied mutation behind.
func (m *Manager) Update(ctx context.Context, userID, rootID string, fn func(*domain.Session) error) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		sess, err := m.store.Load(ctx, userID)
		if err != nil {
			if err != domain.ErrSessionNotFound {
				return fmt.Errorf("failed to load session: %w", err)
			}
			sess = domain.NewSession(userID, rootID)
		}

		if err := fn(sess); err != nil {
			return err
		}

		if err := m.store.Save(ctx, userID, sess); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// Load retrieves an existing session from the store.
func (m *Manager) Load(ctx context.Context, userID string) (*domain.Session, error) {
	var sess *domain.Session
	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		var err error
		sess, err = m.store.Load(ctx, userID)
		return err
	})
	return sess, err
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, userID string) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		return m.store.Delete(ctx, userID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}
