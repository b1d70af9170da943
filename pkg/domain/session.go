package domain

// Screen identifies which menu surface the user is currently viewing.
// It constrains which events are valid next.
type Screen string

const (
	// ScreenNone is the zero value: no session exists yet.
	ScreenNone Screen = ""
	// ScreenRoot is the top-level section chooser, entered on OpenMenu.
	ScreenRoot Screen = "root"
	// ScreenSectionListing is a node whose children are sub-sections.
	ScreenSectionListing Screen = "section"
	// ScreenItemDetail is a node whose children are catalog items,
	// rendered as a text page of item descriptions and prices.
	ScreenItemDetail Screen = "item_detail"
	// ScreenCartView shows the cart contents and edit actions.
	ScreenCartView Screen = "cart"
	// ScreenCheckout shows the frozen order awaiting payment.
	ScreenCheckout Screen = "checkout"
	// ScreenPaymentConfirmed is the terminal thank-you page.
	ScreenPaymentConfirmed Screen = "confirmed"
)

// Session is the per-user state: where the user is in the menu tree, what
// is in the cart, and the order frozen at checkout (if any). It is the
// durable unit a SessionStore persists.
type Session struct {
	UserID string `json:"user_id"`
	Screen Screen `json:"screen"`

	// NodeID is the menu node the user is viewing while Screen is one of
	// the navigation screens. Empty on cart/checkout screens.
	NodeID string `json:"node_id,omitempty"`

	Cart Cart `json:"cart"`

	// PendingOrder is set between Checkout and ConfirmPayment.
	PendingOrder *Order `json:"pending_order,omitempty"`
}

// NewSession creates a fresh session positioned at the root node.
func NewSession(userID, rootID string) *Session {
	return &Session{
		UserID: userID,
		Screen: ScreenRoot,
		NodeID: rootID,
	}
}

// Clone returns an independent copy of the session, safe to mutate without
// affecting the original (stores use it for read/write isolation).
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Cart.Lines = s.Cart.Snapshot()
	if s.PendingOrder != nil {
		order := *s.PendingOrder
		order.Lines = append([]CartLine(nil), s.PendingOrder.Lines...)
		next.PendingOrder = &order
	}
	return &next
}
