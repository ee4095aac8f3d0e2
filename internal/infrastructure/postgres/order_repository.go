package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, client_id, name, email, phone, address, payment_method, total, order_status, record_status, courier_id, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido y sus líneas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ClientID, o.Name, o.Email, o.Phone, o.Address,
		o.PaymentMethod, o.Total, o.OrderStatus, o.RecordStatus, o.CourierID,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range o.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price, quantity, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.OrderID, item.ProductID, item.Name, item.Price, item.Quantity, item.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ClientID, &o.Name, &o.Email, &o.Phone, &o.Address,
		&o.PaymentMethod, &o.Total, &o.OrderStatus, &o.RecordStatus, &o.CourierID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List lista pedidos según el filtro, con sus líneas, del más reciente al más antiguo.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.ClientID != "" {
		conds = append(conds, "client_id = "+arg(f.ClientID))
	}
	if f.CourierID != "" {
		conds = append(conds, "courier_id = "+arg(f.CourierID))
	}
	if f.OrderStatus != "" {
		conds = append(conds, "order_status = "+arg(f.OrderStatus))
	}
	if f.RecordStatus != "" {
		conds = append(conds, "record_status = "+arg(f.RecordStatus))
	}
	if f.Query != "" {
		conds = append(conds, "name ILIKE "+arg("%"+f.Query+"%"))
	}
	if f.Date != "" {
		conds = append(conds, "created_at::date = "+arg(f.Date))
	}
	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.Name, &o.Email, &o.Phone, &o.Address,
			&o.PaymentMethod, &o.Total, &o.OrderStatus, &o.RecordStatus, &o.CourierID,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.itemsByOrder(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateOrderStatus cambia el estado de entrega del pedido.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET order_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdateRecordStatus cambia el estado de registro del pedido (borrado suave).
func (r *OrderRepo) UpdateRecordStatus(ctx context.Context, id string, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET record_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order record status: %w", err)
	}
	return nil
}

// AssignCourier asigna un domiciliario al pedido.
func (r *OrderRepo) AssignCourier(ctx context.Context, id string, courierID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET courier_id = $2, updated_at = now() WHERE id = $1`,
		id, courierID,
	)
	if err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}
	return nil
}

func (r *OrderRepo) itemsByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, name, price, quantity, image_url
		FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var i entity.OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Price, &i.Quantity, &i.ImageURL); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
