// Package cart exposes per-user cart operations on top of the session
// manager. Every mutation runs under the owning user's lock; reads of an
// absent cart behave exactly like reads of an empty one.
package cart

import (
	"context"
	"fmt"

	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/ports"
	"github.com/aretw0/samovar/pkg/session"
)

// Store is the cart facade keyed by user ID.
type Store struct {
	manager *session.Manager
	catalog ports.Catalog
}

// NewStore creates a cart store bound to a session manager and catalog.
func NewStore(manager *session.Manager, catalog ports.Catalog) *Store {
	return &Store{manager: manager, catalog: catalog}
}

// Add looks the item up in the catalog, captures its current price, and
// increments the user's line for it (creating the line at quantity 1).
// Returns the updated cart snapshot.
func (s *Store) Add(ctx context.Context, userID, name string) ([]domain.CartLine, error) {
	item, err := s.catalog.Item(name)
	if err != nil {
		return nil, err
	}

	var lines []domain.CartLine
	err = s.update(ctx, userID, func(sess *domain.Session) error {
		sess.Cart.Add(item.Name, item.Price)
		lines = sess.Cart.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AdjustQuantity changes an existing line by delta (any integer). A line
// dropping to zero or below is removed entirely, reported via removed.
// Fails with domain.ErrLineNotFound if the item is not in the cart.
func (s *Store) AdjustQuantity(ctx context.Context, userID, name string, delta int) (removed bool, lines []domain.CartLine, err error) {
	err = s.update(ctx, userID, func(sess *domain.Session) error {
		var aerr error
		removed, aerr = sess.Cart.Adjust(name, delta)
		if aerr != nil {
			return aerr
		}
		lines = sess.Cart.Snapshot()
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return removed, lines, nil
}

// Clear removes all lines for the user. Clearing an empty or absent cart
// succeeds silently.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.update(ctx, userID, func(sess *domain.Session) error {
		sess.Cart.Clear()
		return nil
	})
}

// TotalPrice returns the cart total. An absent cart totals zero.
func (s *Store) TotalPrice(ctx context.Context, userID string) (int, error) {
	sess, err := s.manager.Load(ctx, userID)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	return sess.Cart.Total(), nil
}

// Snapshot returns the cart lines in insertion order. An absent cart is an
// empty sequence, never an error.
func (s *Store) Snapshot(ctx context.Context, userID string) ([]domain.CartLine, error) {
	sess, err := s.manager.Load(ctx, userID)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return []domain.CartLine{}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess.Cart.Snapshot(), nil
}

func (s *Store) update(ctx context.Context, userID string, fn func(*domain.Session) error) error {
	return s.manager.Update(ctx, userID, s.catalog.Root().ID, fn)
}
