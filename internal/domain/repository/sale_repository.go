package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// SaleFilter acota el listado de ventas.
type SaleFilter struct {
	Status   string // activo | inactivo
	Document string // subcadena del número de documento del comprador
	Date     string // fecha de la venta, formato 2006-01-02
}

// SaleRepository puerto de persistencia de ventas de mostrador.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
