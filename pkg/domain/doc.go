/*
Package domain contains the core domain models and business logic for the
Samovar ordering flow.

It defines the fundamental entities of the conversation: menu nodes, catalog
items, carts, orders, sessions, and the typed event/response vocabulary the
core exchanges with its presentation layer. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - MenuNode / Item: The static navigation tree and priced catalog entries.
  - Cart / CartLine: A user's accumulated selection; prices are captured at
    add time.
  - Order: The immutable record frozen from a cart at checkout.
  - Session: The per-user snapshot (screen, menu position, cart, pending order).
  - Event / Response: Tagged variants forming the sole contract with the
    transport and rendering layers.
*/
package domain
