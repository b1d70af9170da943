package domain

import "time"

// Order is the immutable record of a checked-out cart. Lines are a copy of
// the cart at checkout time; the order never changes after creation.
type Order struct {
	ID           int        `json:"id"`
	UserID       string     `json:"user_id"`
	CustomerName string     `json:"customer_name,omitempty"`
	Lines        []CartLine `json:"lines"`
	Total        int        `json:"total"`
	CreatedAt    time.Time  `json:"created_at"`
	Paid         bool       `json:"paid"`
}
