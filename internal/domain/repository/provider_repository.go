package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// ProviderRepository puerto de persistencia de proveedores.
type ProviderRepository interface {
	Create(ctx context.Context, p *entity.Provider) error
	GetByID(ctx context.Context, id string) (*entity.Provider, error)
	List(ctx context.Context, status string) ([]*entity.Provider, error)
	Update(ctx context.Context, p *entity.Provider) error
	UpdateStatus(ctx context.Context, id string, status string) error
}
