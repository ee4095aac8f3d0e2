package usecase

import (
	"context"
	"time"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// DashboardUseCase resumen operativo para el personal: pedidos por
// estado, productos agotados y total vendido en el mes corriente.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary arma el resumen del panel.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	byStatus, err := uc.repo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	agotados, err := uc.repo.CountAgotados(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	ventasMes, err := uc.repo.SalesTotalSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		PedidosPendientes:  byStatus[entity.OrderStatusPendiente],
		PedidosEntregados:  byStatus[entity.OrderStatusEntregado],
		PedidosCancelados:  byStatus[entity.OrderStatusCancelado],
		ProductosAgotados:  agotados,
		VentasMes:          ventasMes,
		VentasMesFormatted: money.FormatCOP(ventasMes),
	}, nil
}
