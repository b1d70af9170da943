package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/samovar/pkg/adapters/memory"
	"github.com/aretw0/samovar/pkg/cart"
	"github.com/aretw0/samovar/pkg/catalog"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/session"
)

func newStore(t *testing.T) *cart.Store {
	t.Helper()

	c, err := catalog.New(catalog.Definition{
		Root: "menu",
		Sections: []domain.MenuNode{
			{ID: "menu", Title: "Меню", Sections: []string{"soups"}},
			{ID: "soups", Title: "Суп", Items: []string{"Борщ", "Том Ям"}},
		},
		Items: []domain.Item{
			{Name: "Борщ", Price: 200},
			{Name: "Том Ям", Price: 350},
		},
	})
	require.NoError(t, err)

	return cart.NewStore(session.NewManager(memory.NewStore()), c)
}

func TestStore_AddCapturesPrice(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	lines, err := s.Add(ctx, "u1", "Борщ")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 200, lines[0].UnitPrice)

	lines, err = s.Add(ctx, "u1", "Борщ")
	require.NoError(t, err)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestStore_AddUnknownItem(t *testing.T) {
	s := newStore(t)

	_, err := s.Add(context.Background(), "u1", "Пицца")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	// The failed add must not create a cart.
	lines, err := s.Snapshot(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_AdjustQuantity(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", "Том Ям")
	require.NoError(t, err)

	removed, lines, err := s.AdjustQuantity(ctx, "u1", "Том Ям", 1)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 2, lines[0].Quantity)

	removed, lines, err = s.AdjustQuantity(ctx, "u1", "Том Ям", -2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, lines)

	_, _, err = s.AdjustQuantity(ctx, "u1", "Том Ям", -1)
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestStore_AbsentCartReadsAsEmpty(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	total, err := s.TotalPrice(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, total)

	lines, err := s.Snapshot(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_ClearIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", "Борщ")
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, "u1"))
	require.NoError(t, s.Clear(ctx, "u1"), "second clear succeeds silently")

	total, err := s.TotalPrice(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, total)

	// Clearing a user who never had a cart is also fine.
	assert.NoError(t, s.Clear(ctx, "stranger"))
}

func TestStore_TotalPrice(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Add(ctx, "u1", "Борщ")
		require.NoError(t, err)
	}
	_, err := s.Add(ctx, "u1", "Том Ям")
	require.NoError(t, err)

	total, err := s.TotalPrice(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2*200+350, total)
}
