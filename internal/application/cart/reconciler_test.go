package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

func entry(id string, qty int) entity.CartEntry {
	return entity.CartEntry{ProductID: id, Name: "p-" + id, Price: decimal.NewFromInt(1000), Quantity: qty}
}

func TestReconcile_SinCambiosCuandoHayStock(t *testing.T) {
	entries := []entity.CartEntry{entry("a", 2), entry("b", 1)}
	snap := cart.StockSnapshot{
		"a": {Quantity: 5, Disponible: true},
		"b": {Quantity: 3, Disponible: true},
	}

	out, adj := cart.Reconcile(entries, snap)

	assert.Equal(t, entries, out)
	assert.Empty(t, adj)
}

func TestReconcile_RecortaCantidadAlStock(t *testing.T) {
	entries := []entity.CartEntry{entry("a", 10)}
	snap := cart.StockSnapshot{"a": {Quantity: 4, Disponible: true}}

	out, adj := cart.Reconcile(entries, snap)

	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Quantity)
	require.Len(t, adj, 1)
	assert.Equal(t, 10, adj[0].From)
	assert.Equal(t, 4, adj[0].To)
}

func TestReconcile_EliminaAgotadosEInactivos(t *testing.T) {
	entries := []entity.CartEntry{entry("agotado", 2), entry("inactivo", 1), entry("ok", 1)}
	snap := cart.StockSnapshot{
		"agotado":  {Quantity: 0, Disponible: true},
		"inactivo": {Quantity: 9, Disponible: false},
		"ok":       {Quantity: 9, Disponible: true},
	}

	out, adj := cart.Reconcile(entries, snap)

	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].ProductID)
	assert.Len(t, adj, 2)
	for _, a := range adj {
		assert.Equal(t, 0, a.To)
	}
}

func TestReconcile_EliminaProductosFueraDelSnapshot(t *testing.T) {
	entries := []entity.CartEntry{entry("fantasma", 3)}

	out, adj := cart.Reconcile(entries, cart.StockSnapshot{})

	assert.Empty(t, out)
	require.Len(t, adj, 1)
	assert.Equal(t, "fantasma", adj[0].ProductID)
}

func TestReconcile_CarritoVacio(t *testing.T) {
	out, adj := cart.Reconcile(nil, cart.StockSnapshot{"a": {Quantity: 1, Disponible: true}})

	assert.Empty(t, out)
	assert.Empty(t, adj)
}
