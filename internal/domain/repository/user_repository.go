package repository

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, role string) ([]*entity.User, error)
	// ListByRole devuelve solo usuarios activos de un rol; lo usa el
	// checkout para notificar cajeros y el cajero para listar domiciliarios.
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateStatus(ctx context.Context, id string, status string) error
}
