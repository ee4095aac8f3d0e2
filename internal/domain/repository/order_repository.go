package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// OrderFilter acota el listado de pedidos según el rol que consulta.
type OrderFilter struct {
	ClientID     string // pedidos de un cliente
	CourierID    string // pedidos asignados a un domiciliario
	OrderStatus  string // pendiente | entregado | cancelado
	RecordStatus string // activo | inactivo
	Query        string // subcadena del nombre del comprador
	Date         string // fecha de creación, formato 2006-01-02
}

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) error
	UpdateRecordStatus(ctx context.Context, id string, status string) error
	AssignCourier(ctx context.Context, id string, courierID string) error
}
