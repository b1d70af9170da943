package domain

import "errors"

// ErrUnknownItem is returned when an item name is absent from the catalog.
var ErrUnknownItem = errors.New("unknown item")

// ErrUnknownReference is returned when an event carries a menu node or item
// id that does not exist in the catalog (stale or forged token).
var ErrUnknownReference = errors.New("unknown reference")

// ErrInvalidTransition is returned when an event is not valid from the
// user's current navigation state.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrEmptyCart is returned on checkout or payment with nothing in the cart.
var ErrEmptyCart = errors.New("empty cart")

// ErrLineNotFound is returned when adjusting the quantity of an item that is
// not in the user's cart.
var ErrLineNotFound = errors.New("cart line not found")

// ErrNoParent is returned by a back navigation from the root node.
var ErrNoParent = errors.New("no parent node")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
