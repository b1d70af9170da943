package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/samovar/pkg/adapters/memory"
	"github.com/aretw0/samovar/pkg/catalog"
	"github.com/aretw0/samovar/pkg/controller"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/order"
	"github.com/aretw0/samovar/pkg/session"
)

type fixture struct {
	controller *controller.Controller
	manager    *session.Manager
	sequencer  *order.Sequencer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	c, err := catalog.New(catalog.Definition{
		Root: "menu",
		Sections: []domain.MenuNode{
			{ID: "menu", Title: "Меню", Prompt: "Выберите раздел:", Sections: []string{"food", "sweets"}},
			{ID: "food", Title: "Горячее", Items: []string{"Борщ", "Том Ям"}},
			{ID: "sweets", Title: "Десерты", Items: []string{"Чизкейк", "Капучино"}},
		},
		Items: []domain.Item{
			{Name: "Борщ", Price: 200},
			{Name: "Том Ям", Price: 350},
			{Name: "Чизкейк", Price: 300},
			{Name: "Капучино", Price: 150},
		},
	})
	require.NoError(t, err)

	manager := session.NewManager(memory.NewStore())
	sequencer := order.NewSequencer()
	return &fixture{
		controller: controller.New(c, manager, sequencer),
		manager:    manager,
		sequencer:  sequencer,
	}
}

// step applies one event and fails the test on an infrastructure error.
// Rejections are still returned as responses, not errors.
func (f *fixture) step(t *testing.T, userID string, ev domain.Event) domain.Response {
	t.Helper()
	resp, err := f.controller.HandleEvent(context.Background(), userID, ev)
	require.NoError(t, err)
	return resp
}

func (f *fixture) session(t *testing.T, userID string) *domain.Session {
	t.Helper()
	sess, err := f.manager.Load(context.Background(), userID)
	require.NoError(t, err)
	return sess
}

func TestController_FullPurchaseFlow(t *testing.T) {
	f := newFixture(t)

	resp := f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	assert.Equal(t, domain.RespShowSection, resp.Kind)
	assert.Equal(t, domain.ScreenRoot, resp.Screen)
	assert.Equal(t, []string{"Горячее", "Десерты"}, resp.Entries)
	assert.Equal(t, []string{"food", "sweets"}, resp.Refs)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	assert.Equal(t, domain.RespShowItemsText, resp.Kind)
	assert.Equal(t, domain.ScreenItemDetail, resp.Screen)
	assert.Contains(t, resp.Text, "Борщ")
	assert.Contains(t, resp.Text, "Цена: 200 руб.")

	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})
	assert.Equal(t, domain.RespCartSummary, resp.Kind)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	// Selecting an item does not move the user off the page.
	assert.Equal(t, domain.ScreenItemDetail, resp.Screen)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventBack})
	assert.Equal(t, domain.ScreenRoot, resp.Screen)

	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "sweets"})
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Чизкейк"})
	assert.Equal(t, 700, resp.Total)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	assert.Equal(t, domain.RespCartSummary, resp.Kind)
	assert.Equal(t, domain.ScreenCartView, resp.Screen)
	assert.Equal(t, 700, resp.Total)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventCheckout, CustomerName: "Алиса"})
	assert.Equal(t, domain.RespOrderConfirmation, resp.Kind)
	assert.Equal(t, 1, resp.OrderID)
	assert.Equal(t, 700, resp.Total)
	assert.Equal(t, domain.ScreenCheckout, resp.Screen)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventConfirmPayment})
	assert.Equal(t, domain.RespOrderConfirmation, resp.Kind)
	assert.Equal(t, 1, resp.OrderID)
	assert.Equal(t, domain.ScreenPaymentConfirmed, resp.Screen)

	// Payment empties the cart.
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.Total)

	// A second customer gets the next ID from the same sequencer.
	f.step(t, "bob", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "bob", domain.Event{Kind: domain.EventSelectSection, Ref: "sweets"})
	f.step(t, "bob", domain.Event{Kind: domain.EventSelectItem, Ref: "Капучино"})
	f.step(t, "bob", domain.Event{Kind: domain.EventOpenCart})
	resp = f.step(t, "bob", domain.Event{Kind: domain.EventCheckout})
	assert.Equal(t, 2, resp.OrderID)
	assert.Equal(t, 150, resp.Total)
}

func TestController_EmptyCartCheckoutConsumesNothing(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	resp := f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	require.Equal(t, domain.ScreenCartView, resp.Screen)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventCheckout})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonEmptyCart, resp.Reason)
	// The refusal keeps the user on the cart and leaves the ID unissued.
	assert.Equal(t, domain.ScreenCartView, f.session(t, "alice").Screen)
	assert.Equal(t, 1, f.sequencer.NextID())

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})
	f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventCheckout})
	assert.Equal(t, 1, resp.OrderID, "the refused checkout must not have consumed an ID")
}

func TestController_UnknownItemRejectedWithoutMutation(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})

	resp := f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "УжеНетТакогоТовара"})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonUnknownReference, resp.Reason)

	sess := f.session(t, "alice")
	assert.True(t, sess.Cart.Empty())
	assert.Equal(t, "food", sess.NodeID)
}

func TestController_ItemFromAnotherPageRejected(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})

	// Чизкейк exists, but not on the page alice is looking at.
	resp := f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Чизкейк"})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonInvalidTransition, resp.Reason)
	assert.True(t, f.session(t, "alice").Cart.Empty())
}

func TestController_BackAtRootRejected(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	resp := f.step(t, "alice", domain.Event{Kind: domain.EventBack})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonInvalidTransition, resp.Reason)

	sess := f.session(t, "alice")
	assert.Equal(t, domain.ScreenRoot, sess.Screen)
	assert.Equal(t, "menu", sess.NodeID)
}

func TestController_AdjustQuantityOnlyFromCart(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})

	resp := f.step(t, "alice", domain.Event{Kind: domain.EventAdjustQuantity, Ref: "Борщ", Delta: 1})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonInvalidTransition, resp.Reason)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventAdjustQuantity, Ref: "Борщ", Delta: 1})
	assert.Equal(t, domain.RespCartSummary, resp.Kind)
	assert.Equal(t, 2, resp.Lines[0].Quantity)

	// Dropping to zero removes the line.
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventAdjustQuantity, Ref: "Борщ", Delta: -2})
	assert.Empty(t, resp.Lines)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventAdjustQuantity, Ref: "Борщ", Delta: -1})
	assert.Equal(t, domain.ReasonLineNotFound, resp.Reason)
}

func TestController_ClearCartFlow(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})
	f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})

	// The request only asks; the cart keeps its contents.
	resp := f.step(t, "alice", domain.Event{Kind: domain.EventClearCartRequest})
	assert.Equal(t, domain.RespShowItemsText, resp.Kind)
	assert.Contains(t, resp.Actions, domain.EventClearCartConfirm)
	assert.False(t, f.session(t, "alice").Cart.Empty())

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventClearCartConfirm})
	assert.Equal(t, domain.RespCartSummary, resp.Kind)
	assert.Empty(t, resp.Lines)

	// Confirming again is a no-op, not an error.
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventClearCartConfirm})
	assert.Equal(t, domain.RespCartSummary, resp.Kind)
}

func TestController_StaleScreenClaimRejected(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})
	f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})

	// A button from the item page the user already left.
	resp := f.step(t, "alice", domain.Event{
		Kind: domain.EventSelectItem,
		Ref:  "Борщ",
		From: domain.ScreenItemDetail,
	})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonInvalidTransition, resp.Reason)

	sess := f.session(t, "alice")
	assert.Equal(t, 1, sess.Cart.Lines[0].Quantity, "stale event must not touch the cart")

	// A matching From claim passes.
	resp = f.step(t, "alice", domain.Event{Kind: domain.EventClearCartRequest, From: domain.ScreenCartView})
	assert.Equal(t, domain.RespShowItemsText, resp.Kind)
}

func TestController_ConfirmPaymentReplay(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Том Ям"})
	f.step(t, "alice", domain.Event{Kind: domain.EventOpenCart})
	f.step(t, "alice", domain.Event{Kind: domain.EventCheckout})
	first := f.step(t, "alice", domain.Event{Kind: domain.EventConfirmPayment})

	replay := f.step(t, "alice", domain.Event{Kind: domain.EventConfirmPayment})
	assert.Equal(t, domain.RespOrderConfirmation, replay.Kind)
	assert.Equal(t, first.OrderID, replay.OrderID)
	assert.Equal(t, first.Total, replay.Total)

	// Paying with nothing at checkout is refused.
	resp := f.step(t, "bob", domain.Event{Kind: domain.EventConfirmPayment})
	assert.Equal(t, domain.RespRejected, resp.Kind)
}

func TestController_SectionNotChildRejected(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})

	// "sweets" exists, but is not reachable from the food page.
	resp := f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "sweets"})
	assert.Equal(t, domain.RespRejected, resp.Kind)
	assert.Equal(t, domain.ReasonInvalidTransition, resp.Reason)

	resp = f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "ghost"})
	assert.Equal(t, domain.ReasonUnknownReference, resp.Reason)
	assert.Equal(t, "food", f.session(t, "alice").NodeID)
}

func TestController_OpenMenuResetsNavigationOnly(t *testing.T) {
	f := newFixture(t)

	f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectSection, Ref: "food"})
	f.step(t, "alice", domain.Event{Kind: domain.EventSelectItem, Ref: "Борщ"})

	resp := f.step(t, "alice", domain.Event{Kind: domain.EventOpenMenu})
	assert.Equal(t, domain.ScreenRoot, resp.Screen)

	// The cart survives a menu reset.
	sess := f.session(t, "alice")
	assert.False(t, sess.Cart.Empty())
}
