package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/infrastructure/redisstore"
)

func newStore(t *testing.T) *redisstore.CartStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewCartStore(client)
}

func TestCartStore_GuardaYLee(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	entries := []entity.CartEntry{
		{ProductID: "p1", Name: "Gaseosa", Price: decimal.NewFromInt(3500), Quantity: 2},
		{ProductID: "p2", Name: "Papas", Price: decimal.NewFromInt(2800), Quantity: 1},
	}
	require.NoError(t, store.Set(ctx, "u1", entries))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(3500)))
}

func TestCartStore_CarritoAusenteEsVacio(t *testing.T) {
	store := newStore(t)

	got, err := store.Get(context.Background(), "nadie")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartStore_SetVacioEliminaLaClave(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", []entity.CartEntry{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, store.Set(ctx, "u1", nil))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartStore_ClearEsIdempotente(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", []entity.CartEntry{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, store.Clear(ctx, "u1"))
	require.NoError(t, store.Clear(ctx, "u1"))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartStore_CarritosPorUsuarioSonIndependientes(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", []entity.CartEntry{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, store.Set(ctx, "u2", []entity.CartEntry{{ProductID: "p2", Quantity: 3}}))

	got1, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	got2, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "p1", got1[0].ProductID)
	assert.Equal(t, "p2", got2[0].ProductID)
}

func TestSelection_GuardaLeeYLimpia(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSelection(ctx, "u1", "addr-9"))

	got, err := store.GetSelection(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "addr-9", got)

	require.NoError(t, store.ClearSelection(ctx, "u1"))
	got, err = store.GetSelection(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
