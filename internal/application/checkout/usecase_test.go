package checkout_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/logger"
)

// ─────────────────────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────────────────────

type memCartStore struct {
	carts map[string][]entity.CartEntry
}

func (s *memCartStore) Get(_ context.Context, userID string) ([]entity.CartEntry, error) {
	return append([]entity.CartEntry(nil), s.carts[userID]...), nil
}

func (s *memCartStore) Set(_ context.Context, userID string, entries []entity.CartEntry) error {
	s.carts[userID] = entries
	return nil
}

func (s *memCartStore) Clear(_ context.Context, userID string) error {
	delete(s.carts, userID)
	return nil
}

type memSelection struct {
	sel map[string]string
}

func (s *memSelection) SetSelection(_ context.Context, userID, addressID string) error {
	s.sel[userID] = addressID
	return nil
}

func (s *memSelection) GetSelection(_ context.Context, userID string) (string, error) {
	return s.sel[userID], nil
}

func (s *memSelection) ClearSelection(_ context.Context, userID string) error {
	delete(s.sel, userID)
	return nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func (r *memProducts) Create(context.Context, *entity.Product) error { return nil }

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProducts) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProducts) Update(context.Context, *entity.Product) error { return nil }

func (r *memProducts) UpdateQuantity(_ context.Context, id string, q int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[id].Quantity = q
	return nil
}

func (r *memProducts) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[id].Status = status
	return nil
}

type memOrders struct {
	orders map[string]*entity.Order
}

func (r *memOrders) Create(_ context.Context, o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *memOrders) List(context.Context, repository.OrderFilter) ([]*entity.Order, error) {
	return nil, nil
}

func (r *memOrders) UpdateOrderStatus(_ context.Context, id, status string) error {
	r.orders[id].OrderStatus = status
	return nil
}

func (r *memOrders) UpdateRecordStatus(_ context.Context, id, status string) error {
	r.orders[id].RecordStatus = status
	return nil
}

func (r *memOrders) AssignCourier(_ context.Context, id, courierID string) error {
	r.orders[id].CourierID = &courierID
	return nil
}

// fakeTxRunner simula la transacción: guarda el estado de productos antes
// del cuerpo y lo restaura si hay error (rollback).
type fakeTxRunner struct {
	products *memProducts
	orders   *memOrders
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	tx.products.mu.Lock()
	snapshot := make(map[string]entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		snapshot[id] = *p
	}
	tx.products.mu.Unlock()

	ordersBefore := len(tx.orders.orders)
	if err := fn(tx.products, tx.orders); err != nil {
		tx.products.mu.Lock()
		for id := range tx.products.products {
			p := snapshot[id]
			tx.products.products[id] = &p
		}
		tx.products.mu.Unlock()
		if len(tx.orders.orders) != ordersBefore {
			tx.orders.orders = map[string]*entity.Order{}
		}
		return err
	}
	return nil
}

type memAddresses struct {
	addrs map[string]*entity.Address
}

func (r *memAddresses) Create(_ context.Context, a *entity.Address) error {
	r.addrs[a.ID] = a
	return nil
}

func (r *memAddresses) GetByID(_ context.Context, id string) (*entity.Address, error) {
	return r.addrs[id], nil
}

func (r *memAddresses) ListByUser(context.Context, string) ([]*entity.Address, error) {
	return nil, nil
}

func (r *memAddresses) Delete(context.Context, string, string) error { return nil }

type memUsers struct {
	users map[string]*entity.User
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (r *memUsers) List(context.Context, string) ([]*entity.User, error) { return nil, nil }
func (r *memUsers) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role && u.Status == entity.StatusActivo {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUsers) Update(context.Context, *entity.User) error { return nil }
func (r *memUsers) UpdateStatus(context.Context, string, string) error { return nil }

type captureNotifier struct {
	mu    sync.Mutex
	sends []map[string]string
	ch    chan struct{}
}

func (n *captureNotifier) Send(_ context.Context, _ string, payload map[string]string) error {
	n.mu.Lock()
	n.sends = append(n.sends, payload)
	n.mu.Unlock()
	select {
	case n.ch <- struct{}{}:
	default:
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Escenario
// ─────────────────────────────────────────────────────────────

type fixture struct {
	uc       *checkout.UseCase
	cart     *memCartStore
	sel      *memSelection
	products *memProducts
	orders   *memOrders
	notifier *captureNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := &memProducts{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Gaseosa", Price: decimal.NewFromInt(3500), Quantity: 10, Status: entity.StatusActivo},
		"p2": {ID: "p2", Name: "Papas", Price: decimal.NewFromInt(2800), Quantity: 2, Status: entity.StatusActivo},
	}}
	orders := &memOrders{orders: map[string]*entity.Order{}}
	users := &memUsers{users: map[string]*entity.User{
		"u1":     {ID: "u1", Name: "Clara", Role: entity.RoleCliente, Status: entity.StatusActivo},
		"caja-1": {ID: "caja-1", Email: "caja@tienda.local", Role: entity.RoleCajero, Status: entity.StatusActivo},
	}}
	notifier := &captureNotifier{ch: make(chan struct{}, 8)}
	f := &fixture{
		cart:     &memCartStore{carts: map[string][]entity.CartEntry{}},
		sel:      &memSelection{sel: map[string]string{}},
		products: products,
		orders:   orders,
		notifier: notifier,
	}
	f.uc = checkout.NewUseCase(
		&fakeTxRunner{products: products, orders: orders},
		f.cart, f.sel,
		&memAddresses{addrs: map[string]*entity.Address{}},
		users, notifier,
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
	return f
}

func llenarCarrito(f *fixture, userID string, lineas ...entity.CartEntry) {
	f.cart.carts[userID] = lineas
}

func linea(id string, price int64, qty int) entity.CartEntry {
	return entity.CartEntry{ProductID: id, Name: "x", Price: decimal.NewFromInt(price), Quantity: qty}
}

var solicitud = dto.CheckoutRequest{
	Name:          "Clara",
	Email:         "clara@mail.com",
	Phone:         "3001234567",
	Address:       "Calle 10 # 4-21",
	PaymentMethod: entity.PaymentEfectivo,
}

// ─────────────────────────────────────────────────────────────
// Submit
// ─────────────────────────────────────────────────────────────

func TestSubmit_CreaPedidoYDescuentaStock(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 3), linea("p2", 2800, 1))

	resp, err := f.uc.Submit(context.Background(), "u1", solicitud)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendiente, resp.Order.OrderStatus)
	assert.Equal(t, "$13.300", resp.Order.TotalFormatted)
	require.Len(t, resp.Order.Items, 2)

	// stock descontado
	p1, _ := f.products.GetByID(context.Background(), "p1")
	p2, _ := f.products.GetByID(context.Background(), "p2")
	assert.Equal(t, 7, p1.Quantity)
	assert.Equal(t, 1, p2.Quantity)

	// carrito vacío tras confirmar
	assert.Empty(t, f.cart.carts["u1"])
}

func TestSubmit_StockInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 1), linea("p2", 2800, 5)) // p2 solo tiene 2

	_, err := f.uc.Submit(context.Background(), "u1", solicitud)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// nada descontado, ningún pedido creado, carrito intacto
	p1, _ := f.products.GetByID(context.Background(), "p1")
	assert.Equal(t, 10, p1.Quantity)
	assert.Empty(t, f.orders.orders)
	assert.Len(t, f.cart.carts["u1"], 2)
}

func TestSubmit_CarritoVacio(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Submit(context.Background(), "u1", solicitud)

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmit_DatosDeContactoIncompletos(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 1))

	in := solicitud
	in.Address = ""

	_, err := f.uc.Submit(context.Background(), "u1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_UsaDireccionSeleccionada(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 1))

	addrs := &memAddresses{addrs: map[string]*entity.Address{
		"a1": {ID: "a1", UserID: "u1", Label: "casa", Line: "Cra 7 # 45-10", City: "Bogotá", Phone: "3109998877"},
	}}
	users := &memUsers{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Clara", Role: entity.RoleCliente, Status: entity.StatusActivo},
	}}
	f.uc = checkout.NewUseCase(
		&fakeTxRunner{products: f.products, orders: f.orders},
		f.cart, f.sel, addrs, users, f.notifier,
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
	require.NoError(t, f.sel.SetSelection(context.Background(), "u1", "a1"))

	in := dto.CheckoutRequest{Email: "clara@mail.com", PaymentMethod: entity.PaymentTarjeta}
	resp, err := f.uc.Submit(context.Background(), "u1", in)

	require.NoError(t, err)
	assert.Equal(t, "Cra 7 # 45-10, Bogotá", resp.Order.Address)
	assert.Equal(t, "Clara", resp.Order.Name)
	assert.Equal(t, "3109998877", resp.Order.Phone)

	// la selección se consume al confirmar
	sel, _ := f.sel.GetSelection(context.Background(), "u1")
	assert.Empty(t, sel)
}

func TestSubmit_DireccionAjenaEsNotFound(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 1))

	addrs := &memAddresses{addrs: map[string]*entity.Address{
		"a9": {ID: "a9", UserID: "otro", Line: "x", City: "y"},
	}}
	f.uc = checkout.NewUseCase(
		&fakeTxRunner{products: f.products, orders: f.orders},
		f.cart, f.sel, addrs,
		&memUsers{users: map[string]*entity.User{}}, f.notifier,
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)

	in := solicitud
	in.AddressID = "a9"

	_, err := f.uc.Submit(context.Background(), "u1", in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_NotificaALosCajeros(t *testing.T) {
	f := newFixture(t)
	llenarCarrito(f, "u1", linea("p1", 3500, 2))

	_, err := f.uc.Submit(context.Background(), "u1", solicitud)
	require.NoError(t, err)

	select {
	case <-f.notifier.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("el cajero nunca fue notificado")
	}
	f.notifier.mu.Lock()
	defer f.notifier.mu.Unlock()
	require.Len(t, f.notifier.sends, 1)
	assert.Equal(t, "caja@tienda.local", f.notifier.sends[0]["to"])
	assert.Equal(t, "$7.000", f.notifier.sends[0]["total"])
}
