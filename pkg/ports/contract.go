package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/samovar/pkg/domain"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	userID := "contract-test-user-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(userID, "root")
		session.Cart.Add("Борщ", 200)
		session.Cart.Add("Борщ", 200)
		session.Screen = domain.ScreenItemDetail
		session.NodeID = "soups"

		err := store.Save(ctx, userID, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, session.Screen, loaded.Screen)
		assert.Equal(t, session.NodeID, loaded.NodeID)
		require.Len(t, loaded.Cart.Lines, 1)
		assert.Equal(t, 2, loaded.Cart.Lines[0].Quantity)
		assert.Equal(t, 400, loaded.Cart.Total())
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		session := domain.NewSession(userID, "root")
		session.Cart.Add("Чизкейк", 300)
		require.NoError(t, store.Save(ctx, userID, session))

		first, err := store.Load(ctx, userID)
		require.NoError(t, err)
		first.Cart.Add("Чизкейк", 300)

		second, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Cart.Lines[0].Quantity,
			"mutating a loaded session must not leak into the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+userID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, domain.NewSession(userID, "root")))

		err := store.Delete(ctx, userID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "non-existent-"+userID))
	})

	t.Run("List", func(t *testing.T) {
		id1 := userID + "-1"
		id2 := userID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1, "root"))
		_ = store.Save(ctx, id2, domain.NewSession(id2, "root"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		users, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, users, id1)
		assert.Contains(t, users, id2)
	})
}
