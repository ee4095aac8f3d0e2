package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del panel sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas agregadas.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountOrdersByStatus cuenta pedidos activos agrupados por estado de entrega.
func (r *DashboardRepo) CountOrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `
		SELECT order_status, COUNT(*)
		FROM orders WHERE record_status = $1
		GROUP BY order_status`, entity.StatusActivo)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// CountAgotados cuenta productos activos sin stock.
func (r *DashboardRepo) CountAgotados(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE quantity = 0 AND status = $1`,
		entity.StatusActivo,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count agotados: %w", err)
	}
	return count, nil
}

// SalesTotalSince suma el total de ventas activas desde la fecha dada.
func (r *DashboardRepo) SalesTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE status = $1 AND date >= $2`,
		entity.StatusActivo, since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}
