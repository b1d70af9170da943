// Package controller orchestrates the ordering flow. It is the single
// entry point for inbound events: each event is validated against the
// user's actual navigation state, applied under the user's session lock,
// and answered with a response descriptor for the presentation layer.
// Every domain refusal maps to a Rejected response; the controller never
// surfaces a fault for user input.
package controller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/samovar/internal/logging"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/navigation"
	"github.com/aretw0/samovar/pkg/observability"
	"github.com/aretw0/samovar/pkg/order"
	"github.com/aretw0/samovar/pkg/ports"
	"github.com/aretw0/samovar/pkg/session"
)

// Controller dispatches events onto the navigation engine, the cart, and
// the order sequencer.
type Controller struct {
	catalog   ports.Catalog
	manager   *session.Manager
	nav       *navigation.Engine
	sequencer *order.Sequencer
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// Option configures the Controller.
type Option func(*Controller)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithMetrics enables Prometheus collection.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// New creates a controller.
func New(catalog ports.Catalog, manager *session.Manager, sequencer *order.Sequencer, opts ...Option) *Controller {
	c := &Controller{
		catalog:   catalog,
		manager:   manager,
		nav:       navigation.NewEngine(catalog),
		sequencer: sequencer,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleEvent applies one user event and returns the response descriptor.
// The returned error is reserved for infrastructure failures (storage);
// user-level refusals come back as a Rejected response with a nil error.
func (c *Controller) HandleEvent(ctx context.Context, userID string, ev domain.Event) (domain.Response, error) {
	c.metrics.ObserveEvent(ev.Kind)

	var resp domain.Response
	err := c.manager.Update(ctx, userID, c.catalog.Root().ID, func(sess *domain.Session) error {
		resp = c.apply(sess, ev)
		return nil
	})
	if err != nil {
		c.logger.Error("event failed", "user_id", userID, "kind", ev.Kind, "error", err)
		return domain.Response{}, err
	}

	if resp.Kind == domain.RespRejected {
		c.metrics.ObserveRejection(resp.Reason)
		c.logger.Debug("event rejected", "user_id", userID, "kind", ev.Kind, "reason", resp.Reason)
	}
	return resp, nil
}

// apply runs one event against the session. It mutates the session only
// after every validation has passed; a rejection leaves it untouched.
func (c *Controller) apply(sess *domain.Session, ev domain.Event) domain.Response {
	// A stale button from a screen the user already left must not mutate
	// state it no longer sees.
	if ev.From != domain.ScreenNone && ev.From != sess.Screen {
		return c.reject(sess, domain.ErrInvalidTransition)
	}

	switch ev.Kind {
	case domain.EventOpenMenu:
		return c.openMenu(sess)
	case domain.EventSelectSection:
		return c.selectSection(sess, ev.Ref)
	case domain.EventSelectItem:
		return c.selectItem(sess, ev.Ref)
	case domain.EventBack:
		return c.back(sess)
	case domain.EventOpenCart:
		return c.openCart(sess)
	case domain.EventAdjustQuantity:
		return c.adjustQuantity(sess, ev.Ref, ev.Delta)
	case domain.EventClearCartRequest:
		return c.clearCartRequest(sess)
	case domain.EventClearCartConfirm:
		return c.clearCartConfirm(sess)
	case domain.EventCheckout:
		return c.checkout(sess, ev.CustomerName)
	case domain.EventConfirmPayment:
		return c.confirmPayment(sess)
	default:
		return c.reject(sess, domain.ErrInvalidTransition)
	}
}

// openMenu resets navigation to the root chooser. It is always valid.
func (c *Controller) openMenu(sess *domain.Session) domain.Response {
	root := c.catalog.Root()
	sess.Screen = domain.ScreenRoot
	sess.NodeID = root.ID
	return c.showNode(sess, root)
}

func (c *Controller) selectSection(sess *domain.Session, id string) domain.Response {
	if !onMenu(sess.Screen) {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	current, err := c.catalog.Node(sess.NodeID)
	if err != nil {
		return c.reject(sess, err)
	}

	target, screen, err := c.nav.SelectSection(current, id)
	if err != nil {
		return c.reject(sess, err)
	}

	sess.Screen = screen
	sess.NodeID = target.ID
	return c.showNode(sess, target)
}

// selectItem adds the item to the cart. Navigation does not change: the
// user stays on the page they selected from.
func (c *Controller) selectItem(sess *domain.Session, name string) domain.Response {
	if !onMenu(sess.Screen) {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	current, err := c.catalog.Node(sess.NodeID)
	if err != nil {
		return c.reject(sess, err)
	}

	item, err := c.nav.SelectItem(current, name)
	if err != nil {
		return c.reject(sess, err)
	}

	sess.Cart.Add(item.Name, item.Price)
	return c.cartSummary(sess, sess.Screen, sess.NodeID)
}

func (c *Controller) back(sess *domain.Session) domain.Response {
	if !onMenu(sess.Screen) {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	current, err := c.catalog.Node(sess.NodeID)
	if err != nil {
		return c.reject(sess, err)
	}

	parent, screen, err := c.nav.Back(current)
	if err != nil {
		// The root has no back; absorb it as a corrective refusal.
		return c.reject(sess, err)
	}

	sess.Screen = screen
	sess.NodeID = parent.ID
	return c.showNode(sess, parent)
}

// openCart is reachable from every screen.
func (c *Controller) openCart(sess *domain.Session) domain.Response {
	sess.Screen = domain.ScreenCartView
	return c.cartSummary(sess, domain.ScreenCartView, "")
}

func (c *Controller) adjustQuantity(sess *domain.Session, name string, delta int) domain.Response {
	if sess.Screen != domain.ScreenCartView {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	if _, err := sess.Cart.Adjust(name, delta); err != nil {
		return c.reject(sess, err)
	}
	return c.cartSummary(sess, domain.ScreenCartView, "")
}

// clearCartRequest renders the confirmation prompt without touching the cart.
func (c *Controller) clearCartRequest(sess *domain.Session) domain.Response {
	if sess.Screen != domain.ScreenCartView {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	return domain.Response{
		Kind:    domain.RespShowItemsText,
		Screen:  domain.ScreenCartView,
		Text:    "Вы уверены, что хотите очистить корзину?",
		Actions: []domain.EventKind{domain.EventClearCartConfirm, domain.EventOpenCart},
	}
}

// clearCartConfirm empties the cart. Clearing an already-empty cart
// succeeds silently.
func (c *Controller) clearCartConfirm(sess *domain.Session) domain.Response {
	if sess.Screen != domain.ScreenCartView {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	sess.Cart.Clear()
	return c.cartSummary(sess, domain.ScreenCartView, "")
}

// checkout freezes the cart into an order and consumes the next order ID.
// An empty cart is refused before any ID is issued.
func (c *Controller) checkout(sess *domain.Session, customerName string) domain.Response {
	if sess.Screen != domain.ScreenCartView {
		return c.reject(sess, domain.ErrInvalidTransition)
	}
	if sess.Cart.Empty() {
		return c.reject(sess, domain.ErrEmptyCart)
	}

	o := c.sequencer.Create(sess.UserID, customerName, sess.Cart.Lines)
	sess.PendingOrder = &o
	sess.Screen = domain.ScreenCheckout

	c.metrics.ObserveOrder(o)
	c.logger.Info("order created",
		"order_id", o.ID,
		"user_id", o.UserID,
		"customer", o.CustomerName,
		"lines", len(o.Lines),
		"total", o.Total,
	)

	return c.orderConfirmation(sess, o)
}

// confirmPayment finalizes the pending order and clears the cart. Payment
// here is synchronous and cannot partially fail; repeating the event on an
// already-finalized order replays the same confirmation without consuming
// anything.
func (c *Controller) confirmPayment(sess *domain.Session) domain.Response {
	switch sess.Screen {
	case domain.ScreenCheckout:
		sess.PendingOrder.Paid = true
		c.sequencer.MarkPaid(sess.PendingOrder.ID)
		sess.Cart.Clear()
		sess.Screen = domain.ScreenPaymentConfirmed
		c.logger.Info("order paid", "order_id", sess.PendingOrder.ID, "user_id", sess.UserID)
		return c.orderConfirmation(sess, *sess.PendingOrder)
	case domain.ScreenPaymentConfirmed:
		if sess.PendingOrder != nil {
			return c.orderConfirmation(sess, *sess.PendingOrder)
		}
		return c.reject(sess, domain.ErrInvalidTransition)
	default:
		return c.reject(sess, domain.ErrInvalidTransition)
	}
}

// onMenu reports whether the screen is one of the menu navigation surfaces.
func onMenu(s domain.Screen) bool {
	return s == domain.ScreenRoot || s == domain.ScreenSectionListing || s == domain.ScreenItemDetail
}

// reject maps a domain error to a Rejected response on the current screen.
func (c *Controller) reject(sess *domain.Session, err error) domain.Response {
	return domain.Response{
		Kind:    domain.RespRejected,
		Screen:  sess.Screen,
		NodeID:  sess.NodeID,
		Reason:  reasonFor(err),
		Actions: c.actionsFor(sess.Screen),
	}
}

func reasonFor(err error) domain.RejectReason {
	switch {
	case errors.Is(err, domain.ErrUnknownItem):
		return domain.ReasonUnknownItem
	case errors.Is(err, domain.ErrUnknownReference):
		return domain.ReasonUnknownReference
	case errors.Is(err, domain.ErrEmptyCart):
		return domain.ReasonEmptyCart
	case errors.Is(err, domain.ErrLineNotFound):
		return domain.ReasonLineNotFound
	default:
		// ErrInvalidTransition and ErrNoParent both mean "that button does
		// not work from here".
		return domain.ReasonInvalidTransition
	}
}
