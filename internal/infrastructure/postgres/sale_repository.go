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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, document_number, payment_method, date, total, status, created_by, created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.DocumentNumber, s.PaymentMethod, s.Date, s.Total, s.Status,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, item := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.SaleID, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.DocumentNumber, &s.PaymentMethod, &s.Date, &s.Total, &s.Status,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List lista ventas según el filtro, de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.Document != "" {
		conds = append(conds, "document_number ILIKE "+arg("%"+f.Document+"%"))
	}
	if f.Date != "" {
		conds = append(conds, "date::date = "+arg(f.Date))
	}
	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.DocumentNumber, &s.PaymentMethod, &s.Date, &s.Total,
			&s.Status, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.itemsBySale(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

// UpdateStatus cambia el estado de registro de la venta.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}

func (r *SaleRepo) itemsBySale(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, name, price, quantity
		FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var i entity.SaleItem
		if err := rows.Scan(&i.ID, &i.SaleID, &i.ProductID, &i.Name, &i.Price, &i.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
