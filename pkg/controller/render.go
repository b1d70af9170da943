package controller

import (
	"fmt"
	"strings"

	"github.com/aretw0/samovar/pkg/domain"
)

// showNode renders a menu node: a section chooser for branch nodes, a text
// page of item descriptions for leaf nodes.
func (c *Controller) showNode(sess *domain.Session, node *domain.MenuNode) domain.Response {
	if node.IsLeaf() {
		return domain.Response{
			Kind:    domain.RespShowItemsText,
			Screen:  sess.Screen,
			NodeID:  node.ID,
			Text:    c.itemsText(node),
			Entries: append([]string(nil), node.Items...),
			Refs:    append([]string(nil), node.Items...),
			Actions: c.actionsFor(sess.Screen),
		}
	}

	entries := make([]string, 0, len(node.Sections))
	for _, id := range node.Sections {
		if child, err := c.catalog.Node(id); err == nil {
			entries = append(entries, child.Title)
		}
	}
	return domain.Response{
		Kind:    domain.RespShowSection,
		Screen:  sess.Screen,
		NodeID:  node.ID,
		Text:    node.Prompt,
		Entries: entries,
		Refs:    append([]string(nil), node.Sections...),
		Actions: c.actionsFor(sess.Screen),
	}
}

// itemsText builds the item page the way the original till card read:
// name, description, price, one block per item.
func (c *Controller) itemsText(node *domain.MenuNode) string {
	var b strings.Builder
	if node.Prompt != "" {
		b.WriteString(node.Prompt)
		b.WriteString("\n\n")
	}
	for i, name := range node.Items {
		item, err := c.catalog.Item(name)
		if err != nil {
			continue
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(item.Name)
		if item.Description != "" {
			b.WriteString("\n")
			b.WriteString(item.Description)
		}
		fmt.Fprintf(&b, "\nЦена: %d руб.", item.Price)
	}
	return b.String()
}

// cartSummary renders the cart lines and total for the given screen.
func (c *Controller) cartSummary(sess *domain.Session, screen domain.Screen, nodeID string) domain.Response {
	return domain.Response{
		Kind:    domain.RespCartSummary,
		Screen:  screen,
		NodeID:  nodeID,
		Lines:   sess.Cart.Snapshot(),
		Total:   sess.Cart.Total(),
		Actions: c.actionsFor(screen),
	}
}

// orderConfirmation renders a frozen order.
func (c *Controller) orderConfirmation(sess *domain.Session, o domain.Order) domain.Response {
	return domain.Response{
		Kind:    domain.RespOrderConfirmation,
		Screen:  sess.Screen,
		OrderID: o.ID,
		Lines:   append([]domain.CartLine(nil), o.Lines...),
		Total:   o.Total,
		Actions: c.actionsFor(sess.Screen),
	}
}

// actionsFor enumerates the events valid on a screen, in the order the
// presentation layer should offer them.
func (c *Controller) actionsFor(screen domain.Screen) []domain.EventKind {
	switch screen {
	case domain.ScreenRoot:
		return []domain.EventKind{domain.EventSelectSection, domain.EventOpenCart}
	case domain.ScreenSectionListing:
		return []domain.EventKind{domain.EventSelectSection, domain.EventBack, domain.EventOpenCart}
	case domain.ScreenItemDetail:
		return []domain.EventKind{domain.EventSelectItem, domain.EventBack, domain.EventOpenCart}
	case domain.ScreenCartView:
		return []domain.EventKind{
			domain.EventAdjustQuantity,
			domain.EventClearCartRequest,
			domain.EventCheckout,
			domain.EventOpenMenu,
		}
	case domain.ScreenCheckout:
		return []domain.EventKind{domain.EventConfirmPayment, domain.EventOpenCart}
	case domain.ScreenPaymentConfirmed:
		return []domain.EventKind{domain.EventOpenMenu}
	default:
		return []domain.EventKind{domain.EventOpenMenu}
	}
}
