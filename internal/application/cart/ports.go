package cart

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// Store persiste el carrito de cada usuario (una clave por usuario).
// Un carrito ausente equivale a un carrito vacío.
type Store interface {
	Get(ctx context.Context, userID string) ([]entity.CartEntry, error)
	Set(ctx context.Context, userID string, entries []entity.CartEntry) error
	Clear(ctx context.Context, userID string) error
}

// SelectionStore guarda la dirección elegida para el próximo checkout.
// Es efímera: se consume al confirmar el pedido.
type SelectionStore interface {
	SetSelection(ctx context.Context, userID, addressID string) error
	GetSelection(ctx context.Context, userID string) (string, error)
	ClearSelection(ctx context.Context, userID string) error
}
