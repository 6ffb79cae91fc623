package integration

import (
	"context"
	"testing"

	"shopzone/internal/seed"
	"shopzone/internal/service"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBackend_KVOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	backend := SetupPostgresBackend(t)

	_, ok, err := backend.KV.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.KV.Set(ctx, "key", []byte("one")))
	require.NoError(t, backend.KV.Set(ctx, "key", []byte("two")))

	got, ok, err := backend.KV.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)

	require.NoError(t, backend.KV.Delete(ctx, "key"))
	_, ok, err = backend.KV.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresBackend_StorefrontFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	backend := SetupPostgresBackend(t)

	catalog := seed.Default()
	st := store.New(backend.KV, logger)
	require.NoError(t, st.Init(ctx, catalog.Categories, catalog.Products))

	auth := service.NewAuthService(st, logger)
	cart := service.NewCartService(st, logger)
	orders := service.NewOrderService(st, logger)

	user, err := auth.SignUp(ctx, "shopper@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, user.ID, "1", 2))
	require.NoError(t, cart.Add(ctx, user.ID, "7", 1))

	total, err := cart.TotalAmount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2*134900+399), total)

	order, err := orders.Checkout(ctx, user.ID, "42 MG Road, Bengaluru")
	require.NoError(t, err)
	assert.Equal(t, total, order.TotalAmount)
	require.Len(t, order.OrderItems, 2)

	// The cart is empty and the order survives a fresh store over the
	// same backend.
	st2 := store.New(backend.KV, logger)
	require.NoError(t, st2.Init(ctx, catalog.Categories, catalog.Products))

	items, err := st2.Cart.Items(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	persisted, err := st2.Orders.ByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, order.TotalAmount, persisted.TotalAmount)

	// Stock decrements are durable too.
	phone, err := st2.Products.ByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 23, phone.StockQuantity)
}
