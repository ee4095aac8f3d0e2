package orders

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta el cuerpo de una cancelación dentro de una transacción:
// restaurar stock y marcar el pedido deben confirmar o revertir juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, orders repository.OrderRepository) error) error
}

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	GenerateReceipt(o *entity.Order) ([]byte, error)
}

// Notifier envía una notificación por plantilla con un payload plano.
// Misma forma que el notificador del checkout; el adaptador de correo
// satisface ambos.
type Notifier interface {
	Send(ctx context.Context, templateID string, payload map[string]string) error
}
