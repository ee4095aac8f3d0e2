package checkout

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta el cuerpo del checkout dentro de una transacción:
// los repositorios recibidos operan sobre la misma tx y un error hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, orders repository.OrderRepository) error) error
}

// Notifier envía notificaciones por plantilla con par clave/valor.
// El checkout lo usa para avisar a los cajeros de un pedido nuevo.
type Notifier interface {
	Send(ctx context.Context, templateID string, payload map[string]string) error
}
