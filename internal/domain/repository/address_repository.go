package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// AddressRepository puerto de persistencia de direcciones guardadas.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Address, error)
	Delete(ctx context.Context, id string, userID string) error
}
