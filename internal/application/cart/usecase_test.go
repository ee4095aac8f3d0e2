package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────────────────────

type memStore struct {
	carts map[string][]entity.CartEntry
}

func newMemStore() *memStore {
	return &memStore{carts: map[string][]entity.CartEntry{}}
}

func (s *memStore) Get(_ context.Context, userID string) ([]entity.CartEntry, error) {
	return append([]entity.CartEntry(nil), s.carts[userID]...), nil
}

func (s *memStore) Set(_ context.Context, userID string, entries []entity.CartEntry) error {
	s.carts[userID] = append([]entity.CartEntry(nil), entries...)
	return nil
}

func (s *memStore) Clear(_ context.Context, userID string) error {
	delete(s.carts, userID)
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(context.Context, *entity.Product) error { return nil }

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(context.Context, *entity.Product) error { return nil }

func (r *memProductRepo) UpdateQuantity(_ context.Context, id string, q int) error {
	r.products[id].Quantity = q
	return nil
}

func (r *memProductRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.products[id].Status = status
	return nil
}

func producto(id string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		Price:    decimal.NewFromInt(price),
		Category: "bebidas",
		Quantity: stock,
		Status:   entity.StatusActivo,
	}
}

func setup(products ...*entity.Product) (*cart.UseCase, *memStore) {
	repo := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	store := newMemStore()
	return cart.NewUseCase(store, repo), store
}

// ─────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────

func TestAdd_AgregaLineaNueva(t *testing.T) {
	uc, _ := setup(producto("p1", 2500, 10))

	resp, err := uc.Add(context.Background(), "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 3})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, "$7.500", resp.TotalFormatted)
}

func TestAdd_FusionaCantidadesDeLineaExistente(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 10))
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	resp, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 3})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestAdd_RecortaAlStockDisponible(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 4))

	resp, err := uc.Add(context.Background(), "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 9})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Items[0].Quantity)
}

func TestAdd_RechazaProductoAgotado(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 0))

	_, err := uc.Add(context.Background(), "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestAdd_RechazaProductoInactivo(t *testing.T) {
	p := producto("p1", 1000, 5)
	p.Status = entity.StatusInactivo
	uc, _ := setup(p)

	_, err := uc.Add(context.Background(), "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestAdd_ProductoInexistente(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Add(context.Background(), "u1", dto.AddToCartRequest{ProductID: "nope", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────
// UpdateQuantity
// ─────────────────────────────────────────────────────────────

func TestUpdateQuantity_CambiaCantidad(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 10))
	ctx := context.Background()
	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	resp, err := uc.UpdateQuantity(ctx, "u1", "p1", 7)

	require.NoError(t, err)
	assert.Equal(t, 7, resp.Items[0].Quantity)
}

func TestUpdateQuantity_RechazaCantidadInvalidaSinTocarElCarrito(t *testing.T) {
	uc, store := setup(producto("p1", 1000, 10))
	ctx := context.Background()
	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, "u1", "p1", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	entries, _ := store.Get(ctx, "u1")
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestUpdateQuantity_RechazaCantidadSobreStock(t *testing.T) {
	uc, store := setup(producto("p1", 1000, 2))
	ctx := context.Background()
	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, "u1", "p1", 3)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	entries, _ := store.Get(ctx, "u1")
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestUpdateQuantity_LineaInexistente(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 3))

	_, err := uc.UpdateQuantity(context.Background(), "u1", "p1", 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────
// Get reconciliado
// ─────────────────────────────────────────────────────────────

func TestGet_ReconciliaYPersisteAjustes(t *testing.T) {
	repo := &memProductRepo{products: map[string]*entity.Product{
		"p1": producto("p1", 1000, 10),
		"p2": producto("p2", 500, 10),
	}}
	store := newMemStore()
	uc := cart.NewUseCase(store, repo)
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	_, err = uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p2", Quantity: 2})
	require.NoError(t, err)

	// el stock cambió por fuera del carrito
	repo.products["p1"].Quantity = 2
	repo.products["p2"].Quantity = 0

	resp, err := uc.Get(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p1", resp.Items[0].ProductID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].Adjusted)
	assert.Equal(t, []string{"p2"}, resp.Removed)

	// la segunda lectura ya no reporta ajustes
	resp2, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, resp2.Removed)
	assert.False(t, resp2.Items[0].Adjusted)
}

func TestGet_CarritoVacio(t *testing.T) {
	uc, _ := setup()

	resp, err := uc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "$0", resp.TotalFormatted)
}

// ─────────────────────────────────────────────────────────────
// Clear y Remove
// ─────────────────────────────────────────────────────────────

func TestClear_EsIdempotente(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 5))
	ctx := context.Background()
	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "u1"))
	require.NoError(t, uc.Clear(ctx, "u1")) // segundo clear sobre carrito vacío

	resp, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestRemove_QuitaLinea(t *testing.T) {
	uc, _ := setup(producto("p1", 1000, 5), producto("p2", 300, 5))
	ctx := context.Background()
	_, err := uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add(ctx, "u1", dto.AddToCartRequest{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	resp, err := uc.Remove(ctx, "u1", "p1")

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p2", resp.Items[0].ProductID)
}

func TestRemove_ProductoAusenteNoEsError(t *testing.T) {
	uc, _ := setup()

	resp, err := uc.Remove(context.Background(), "u1", "nope")

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
