package domain

// EventKind is the tag of an inbound user event. Events are parsed once at
// the transport boundary into this typed form; the core never dispatches
// on raw callback strings.
type EventKind string

const (
	EventOpenMenu         EventKind = "open_menu"
	EventSelectSection    EventKind = "select_section"
	EventSelectItem       EventKind = "select_item"
	EventBack             EventKind = "back"
	EventOpenCart         EventKind = "open_cart"
	EventAdjustQuantity   EventKind = "adjust_quantity"
	EventClearCartRequest EventKind = "clear_cart_request"
	EventClearCartConfirm EventKind = "clear_cart_confirm"
	EventCheckout         EventKind = "checkout"
	EventConfirmPayment   EventKind = "confirm_payment"
)

// Event is a tagged variant describing one user action.
type Event struct {
	Kind EventKind `json:"kind"`

	// Ref is the section ID for SelectSection or the item name for
	// SelectItem and AdjustQuantity.
	Ref string `json:"ref,omitempty"`

	// Delta is the quantity change for AdjustQuantity. Any integer is
	// accepted; the rendered buttons only ever send +1 and -1.
	Delta int `json:"delta,omitempty"`

	// CustomerName optionally accompanies Checkout and ends up on the order.
	CustomerName string `json:"customer_name,omitempty"`

	// From is the screen the client believes it is on. When set, the
	// controller rejects the event if it does not match the session's
	// actual screen, so a stale button from an old message cannot mutate
	// state it no longer sees.
	From Screen `json:"from,omitempty"`
}
