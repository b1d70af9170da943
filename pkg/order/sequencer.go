// Package order issues sequential order identifiers and freezes carts into
// immutable order records.
package order

import (
	"sync"
	"time"

	"github.com/aretw0/samovar/pkg/domain"
)

// Sequencer assigns monotonically increasing order IDs across all users.
// IDs start at 1 and are never reused: an order abandoned before payment
// leaves a gap, never a duplicate.
type Sequencer struct {
	mu     sync.Mutex
	nextID int
	issued []domain.Order
}

// NewSequencer creates a sequencer starting at order ID 1.
func NewSequencer() *Sequencer {
	return &Sequencer{nextID: 1}
}

// Create copies the cart lines into a new immutable order, computes the
// total, and consumes the next ID. Safe for concurrent callers.
func (s *Sequencer) Create(userID, customerName string, lines []domain.CartLine) domain.Order {
	frozen := make([]domain.CartLine, len(lines))
	copy(frozen, lines)

	total := 0
	for _, l := range frozen {
		total += l.Subtotal()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := domain.Order{
		ID:           s.nextID,
		UserID:       userID,
		CustomerName: customerName,
		Lines:        frozen,
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.issued = append(s.issued, o)
	return o
}

// MarkPaid flags the journal entry for id as paid. Unknown IDs are
// ignored: the journal is an audit trail, not the source of truth for the
// session's pending order.
func (s *Sequencer) MarkPaid(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.issued {
		if s.issued[i].ID == id {
			s.issued[i].Paid = true
			return
		}
	}
}

// Orders returns a copy of every issued order in issuance sequence. The
// journal mirrors the receipts the original till printed; it is not
// durable state.
func (s *Sequencer) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.issued))
	copy(out, s.issued)
	return out
}

// NextID returns the ID the next checkout will receive.
func (s *Sequencer) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}
