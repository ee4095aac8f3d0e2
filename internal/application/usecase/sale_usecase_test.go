package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

type memSales struct {
	sales map[string]*entity.Sale
}

func (r *memSales) Create(_ context.Context, s *entity.Sale) error { r.sales[s.ID] = s; return nil }

func (r *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	if s, ok := r.sales[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSales) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Document != "" && !strings.Contains(s.DocumentNumber, f.Document) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memSales) UpdateStatus(_ context.Context, id, status string) error {
	r.sales[id].Status = status
	return nil
}

// saleTx simula la transacción con rollback del estado de productos.
type saleTx struct {
	products *memProducts
	sales    *memSales
}

func (tx *saleTx) RunSale(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	snapshot := make(map[string]entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		snapshot[id] = *p
	}
	salesBefore := len(tx.sales.sales)
	if err := fn(tx.products, tx.sales); err != nil {
		for id := range tx.products.products {
			p := snapshot[id]
			tx.products.products[id] = &p
		}
		if len(tx.sales.sales) != salesBefore {
			tx.sales.sales = map[string]*entity.Sale{}
		}
		return err
	}
	return nil
}

func newSaleFixture() (*usecase.SaleUseCase, *memProducts, *memSales) {
	products := newMemProducts(
		prod("p1", "licores", 10),
		prod("p2", "snacks", 1),
	)
	sales := &memSales{sales: map[string]*entity.Sale{}}
	uc := usecase.NewSaleUseCase(sales, &saleTx{products: products, sales: sales})
	return uc, products, sales
}

func TestSaleCreate_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, products, _ := newSaleFixture()

	resp, err := uc.Create(context.Background(), "caja-1", dto.CreateSaleRequest{
		DocumentNumber: "1020304050",
		PaymentMethod:  entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "$50.600", resp.TotalFormatted) // 2 x $25.300
	assert.Equal(t, entity.StatusActivo, resp.Status)
	assert.Equal(t, "caja-1", resp.CreatedBy)
	assert.Equal(t, 8, products.products["p1"].Quantity)
}

func TestSaleCreate_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, products, sales := newSaleFixture()

	_, err := uc.Create(context.Background(), "caja-1", dto.CreateSaleRequest{
		DocumentNumber: "1020304050",
		PaymentMethod:  entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 5}, // p2 solo tiene 1
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, products.products["p1"].Quantity)
	assert.Empty(t, sales.sales)
}

func TestSaleCreate_SinLineasEsInvalido(t *testing.T) {
	uc, _, _ := newSaleFixture()

	_, err := uc.Create(context.Background(), "caja-1", dto.CreateSaleRequest{
		DocumentNumber: "123",
		PaymentMethod:  entity.PaymentEfectivo,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleSetStatus_InactivarRestauraStock(t *testing.T) {
	uc, products, _ := newSaleFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "caja-1", dto.CreateSaleRequest{
		DocumentNumber: "123",
		PaymentMethod:  entity.PaymentTarjeta,
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, products.products["p1"].Quantity)

	out, err := uc.SetStatus(ctx, resp.ID, entity.StatusInactivo)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactivo, out.Status)
	assert.Equal(t, 10, products.products["p1"].Quantity)
}

func TestSaleSetStatus_RepetirEstadoNoMueveStock(t *testing.T) {
	uc, products, _ := newSaleFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "caja-1", dto.CreateSaleRequest{
		DocumentNumber: "123",
		PaymentMethod:  entity.PaymentEfectivo,
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, resp.ID, entity.StatusInactivo)
	require.NoError(t, err)
	_, err = uc.SetStatus(ctx, resp.ID, entity.StatusInactivo)
	require.NoError(t, err)

	assert.Equal(t, 10, products.products["p1"].Quantity) // restaurado una sola vez
}

func TestSaleSetStatus_VentaInexistente(t *testing.T) {
	uc, _, _ := newSaleFixture()

	_, err := uc.SetStatus(context.Background(), "nope", entity.StatusInactivo)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
