package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────
// Fake en memoria
// ─────────────────────────────────────────────────────────────

type memProducts struct {
	products map[string]*entity.Product
	updates  int
}

func newMemProducts(ps ...*entity.Product) *memProducts {
	r := &memProducts{products: map[string]*entity.Product{}}
	for _, p := range ps {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Agotados && p.Quantity != 0 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProducts) UpdateQuantity(_ context.Context, id string, q int) error {
	r.products[id].Quantity = q
	return nil
}

func (r *memProducts) UpdateStatus(_ context.Context, id, status string) error {
	r.products[id].Status = status
	r.updates++
	return nil
}

func prod(id, category string, qty int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		Price:    decimal.NewFromInt(25300),
		Category: category,
		Quantity: qty,
		Status:   entity.StatusActivo,
	}
}

// ─────────────────────────────────────────────────────────────
// Crear y actualizar
// ─────────────────────────────────────────────────────────────

func TestCreate_ProductoNaceActivoConPrecioFormateado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Aguardiente",
		Price:    decimal.NewFromInt(25300),
		Category: "Licores",
		Quantity: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActivo, resp.Status)
	assert.Equal(t, "$25.300", resp.PriceFormatted)
	assert.Equal(t, "licores", resp.Category) // categoría normalizada
	assert.False(t, resp.Agotado)
}

func TestCreate_RechazaPrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "x",
		Price:    decimal.NewFromInt(-1),
		Category: "snacks",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	name := "nuevo"
	_, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────
// Filtro por categoría (función pura)
// ─────────────────────────────────────────────────────────────

func TestFilterByCategory_FiltraSinTocarLaEntrada(t *testing.T) {
	items := []dto.ProductResponse{
		{ID: "1", Category: "bebidas"},
		{ID: "2", Category: "snacks"},
		{ID: "3", Category: "bebidas"},
	}

	out := usecase.FilterByCategory(items, "Bebidas")

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
	assert.Len(t, items, 3) // la entrada no cambia
}

func TestFilterByCategory_CategoriaVaciaDevuelveTodo(t *testing.T) {
	items := []dto.ProductResponse{{ID: "1", Category: "bebidas"}}

	out := usecase.FilterByCategory(items, "")

	assert.Equal(t, items, out)
}

func TestFilterByCategory_TodasDevuelveTodo(t *testing.T) {
	items := []dto.ProductResponse{
		{ID: "1", Category: "bebidas"},
		{ID: "2", Category: "snacks"},
	}

	out := usecase.FilterByCategory(items, "todas")

	assert.Equal(t, items, out)
}

func TestList_FiltraPorCategoriaEnMemoria(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(
		prod("a", "licores", 5),
		prod("b", "snacks", 5),
	))

	resp, err := uc.List(context.Background(), repository.ProductFilter{Category: "licores"})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "a", resp.Items[0].ID)
}

func TestList_CategoriaTodasDevuelveTodo(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(
		prod("a", "licores", 5),
		prod("b", "snacks", 5),
	))

	resp, err := uc.List(context.Background(), repository.ProductFilter{Category: "todas"})

	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestFilterByCategory_SinCoincidenciasDevuelveVacio(t *testing.T) {
	items := []dto.ProductResponse{{ID: "1", Category: "bebidas"}}

	out := usecase.FilterByCategory(items, "aseo")

	assert.Empty(t, out)
}

// ─────────────────────────────────────────────────────────────
// Agotados, stock y estado
// ─────────────────────────────────────────────────────────────

func TestList_SoloAgotados(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(
		prod("a", "bebidas", 0),
		prod("b", "bebidas", 5),
	))

	resp, err := uc.List(context.Background(), repository.ProductFilter{Agotados: true})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "a", resp.Items[0].ID)
	assert.True(t, resp.Items[0].Agotado)
}

func TestUpdateStock_FijaCantidad(t *testing.T) {
	repo := newMemProducts(prod("a", "bebidas", 0))
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.UpdateStock(context.Background(), "a", 30)

	require.NoError(t, err)
	assert.Equal(t, 30, resp.Quantity)
	assert.False(t, resp.Agotado)
}

func TestUpdateStock_RechazaNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(prod("a", "bebidas", 5)))

	_, err := uc.UpdateStock(context.Background(), "a", -3)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStatus_CambiaYEsIdempotente(t *testing.T) {
	repo := newMemProducts(prod("a", "bebidas", 5))
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	resp, err := uc.SetStatus(ctx, "a", entity.StatusInactivo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactivo, resp.Status)
	assert.Equal(t, 1, repo.updates)

	// repetir el mismo estado no vuelve a escribir
	resp, err = uc.SetStatus(ctx, "a", entity.StatusInactivo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactivo, resp.Status)
	assert.Equal(t, 1, repo.updates)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(prod("a", "bebidas", 5)))

	_, err := uc.SetStatus(context.Background(), "a", "eliminado")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
