package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// ProductFilter acota el listado de productos.
type ProductFilter struct {
	// Category se aplica en memoria sobre el resultado (FilterByCategory);
	// el repositorio la ignora. Vacío o "todas" = sin filtro.
	Category string
	Query    string // búsqueda por nombre/marca (ILIKE)
	Agotados bool   // solo productos con stock 0
	Status   string // activo | inactivo (vacío = todos)
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo válido
	// dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	UpdateStatus(ctx context.Context, id string, status string) error
}
