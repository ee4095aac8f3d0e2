package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas agregadas para el panel del administrador.
type DashboardRepository interface {
	CountOrdersByStatus(ctx context.Context) (map[string]int, error)
	CountAgotados(ctx context.Context) (int, error)
	SalesTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
