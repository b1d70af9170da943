/*
Package samovar is a conversational café ordering core: a hierarchical menu,
per-user carts, and sequential order checkout, driven entirely by typed
events and answered with render-ready response descriptors.

The package separates the ordering logic from every outward surface. A
transport (HTTP, a chat bot, a terminal) parses user actions into
domain.Event values and hands them to the Flow; the Flow validates the
event against the user's navigation state, mutates cart and order state
under that user's lock, and returns a domain.Response describing the next
screen. Rendering, delivery, and retries stay on the transport side.

# Key Properties

  - Per-user serialization: all operations for one user run one at a time;
    different users proceed fully in parallel.
  - Price capture: a cart line keeps the unit price from the moment the
    item was added.
  - Sequential orders: checkout consumes a process-wide, strictly
    increasing order ID; IDs are never reused.
  - Total recoverability: invalid input maps to a Rejected response with a
    reason code, never a broken session.

# Usage

	flow, err := samovar.New("configs/menu.yaml")
	if err != nil {
		log.Fatal(err)
	}

	resp, err := flow.HandleEvent(ctx, "user-42", domain.Event{Kind: domain.EventOpenMenu})
*/
package samovar
