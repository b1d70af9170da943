package ports

import (
	"context"

	"github.com/aretw0/samovar/pkg/domain"
)

// SessionStore defines the interface for persisting per-user sessions.
// The core only needs in-process storage; adapters may add durability
// (e.g. Redis) behind the same contract.
type SessionStore interface {
	// Save persists the session for a given user ID.
	Save(ctx context.Context, userID string, session *domain.Session) error

	// Load retrieves the session for a given user ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, userID string) (*domain.Session, error)

	// Delete removes the session for a given user ID.
	Delete(ctx context.Context, userID string) error

	// List returns the user IDs with active sessions.
	List(ctx context.Context) ([]string, error)
}
