package domain

// ResponseKind is the tag of a response descriptor.
type ResponseKind string

const (
	// RespShowSection lists the child sections of a node.
	RespShowSection ResponseKind = "show_section"
	// RespShowItemsText carries a pre-rendered text page (item
	// descriptions, confirmation prompts).
	RespShowItemsText ResponseKind = "show_items_text"
	// RespCartSummary carries the cart lines and total.
	RespCartSummary ResponseKind = "cart_summary"
	// RespOrderConfirmation carries a frozen order.
	RespOrderConfirmation ResponseKind = "order_confirmation"
	// RespRejected signals a recoverable refusal with a reason code.
	RespRejected ResponseKind = "rejected"
)

// RejectReason classifies why an event was refused. Every reason maps to a
// corrective user-facing message, never a broken session.
type RejectReason string

const (
	ReasonUnknownItem       RejectReason = "unknown_item"
	ReasonUnknownReference  RejectReason = "unknown_reference"
	ReasonInvalidTransition RejectReason = "invalid_transition"
	ReasonEmptyCart         RejectReason = "empty_cart"
	ReasonLineNotFound      RejectReason = "line_not_found"
)

// Response is the descriptor handed to the presentation layer: what screen
// the user is on now, the payload to render, and which events are valid
// from here.
type Response struct {
	Kind   ResponseKind `json:"kind"`
	Screen Screen       `json:"screen"`
	NodeID string       `json:"node_id,omitempty"`

	// Entries lists section titles or item names for display; Refs carries
	// the matching selection tokens (section IDs or item names) the
	// presentation layer should send back, index-aligned with Entries.
	Entries []string `json:"entries,omitempty"`
	Refs    []string `json:"refs,omitempty"`

	// Text is the rendered page for RespShowItemsText.
	Text string `json:"text,omitempty"`

	// Lines and Total describe the cart (RespCartSummary) or the order
	// contents (RespOrderConfirmation).
	Lines []CartLine `json:"lines,omitempty"`
	Total int        `json:"total,omitempty"`

	OrderID int          `json:"order_id,omitempty"`
	Reason  RejectReason `json:"reason,omitempty"`

	// Actions enumerates the event kinds the presentation layer should
	// offer on this screen.
	Actions []EventKind `json:"actions,omitempty"`
}
