package orders

import (
	"context"
	"time"

	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/logger"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// Plantilla de notificación usada al asignar un domiciliario.
const TemplatePedidoAsignado = "pedido_asignado"

// UseCase gestión de pedidos después del checkout: consulta por rol,
// asignación de domiciliario, entrega, cancelación y comprobante.
type UseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	txRunner  TxRunner
	receipts  ReceiptGenerator
	notifier  Notifier
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	txRunner TxRunner,
	receipts ReceiptGenerator,
	notifier Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		txRunner:  txRunner,
		receipts:  receipts,
		notifier:  notifier,
		log:       log,
	}
}

// List devuelve los pedidos visibles para el rol que consulta:
// el cliente ve los suyos, el domiciliario los que tiene asignados,
// cajero y administrador ven todos. Los clientes solo ven registros activos.
// Del filtro recibido solo se respetan OrderStatus, Query y Date; el alcance
// por rol siempre lo impone este método.
func (uc *UseCase) List(ctx context.Context, userID, role string, f repository.OrderFilter) (*dto.OrderListResponse, error) {
	f.ClientID = ""
	f.CourierID = ""
	f.RecordStatus = ""
	switch role {
	case entity.RoleCliente:
		f.ClientID = userID
		f.RecordStatus = entity.StatusActivo
	case entity.RoleDomiciliario:
		f.CourierID = userID
		f.RecordStatus = entity.StatusActivo
	case entity.RoleCajero, entity.RoleAdministrador:
		// sin restricción
	default:
		return nil, domain.ErrForbidden
	}
	found, err := uc.orderRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(found))
	for _, o := range found {
		items = append(items, checkout.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// Get devuelve un pedido si el rol puede verlo.
func (uc *UseCase) Get(ctx context.Context, userID, role, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.visibleOrder(ctx, userID, role, orderID)
	if err != nil {
		return nil, err
	}
	resp := checkout.ToOrderResponse(order)
	return &resp, nil
}

// AssignCourier asigna un domiciliario a un pedido pendiente. El usuario
// asignado debe existir, estar activo y tener rol domiciliario.
func (uc *UseCase) AssignCourier(ctx context.Context, orderID, courierID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.OrderStatus != entity.OrderStatusPendiente {
		return nil, domain.ErrConflict
	}
	courier, err := uc.userRepo.GetByID(ctx, courierID)
	if err != nil {
		return nil, err
	}
	if courier == nil || courier.Role != entity.RoleDomiciliario || courier.Status != entity.StatusActivo {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.orderRepo.AssignCourier(ctx, orderID, courierID); err != nil {
		return nil, err
	}
	order.CourierID = &courierID
	order.UpdatedAt = time.Now()
	uc.notifyCourier(order, courier)
	resp := checkout.ToOrderResponse(order)
	return &resp, nil
}

// notifyCourier avisa al domiciliario del pedido asignado. Corre en segundo
// plano: un correo fallido jamás deshace la asignación.
func (uc *UseCase) notifyCourier(order *entity.Order, courier *entity.User) {
	o := *order
	email := courier.Email
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		payload := map[string]string{
			"to":        email,
			"pedido":    o.ID,
			"cliente":   o.Name,
			"telefono":  o.Phone,
			"direccion": o.Address,
			"total":     money.FormatCOP(o.Total),
		}
		if err := uc.notifier.Send(ctx, TemplatePedidoAsignado, payload); err != nil {
			uc.log.Warn().Err(err).Str("email", email).Msg("no se pudo notificar al domiciliario")
		}
	}()
}

// MarkDelivered pasa un pedido de pendiente a entregado. Marcar un pedido
// ya entregado repite la respuesta sin cambiar nada (idempotente); un
// pedido cancelado devuelve ErrConflict. El domiciliario solo puede
// entregar pedidos asignados a él.
func (uc *UseCase) MarkDelivered(ctx context.Context, userID, role, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role == entity.RoleDomiciliario && (order.CourierID == nil || *order.CourierID != userID) {
		return nil, domain.ErrForbidden
	}
	switch order.OrderStatus {
	case entity.OrderStatusEntregado:
		resp := checkout.ToOrderResponse(order)
		return &resp, nil
	case entity.OrderStatusCancelado:
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusEntregado); err != nil {
		return nil, err
	}
	order.OrderStatus = entity.OrderStatusEntregado
	order.UpdatedAt = time.Now()
	resp := checkout.ToOrderResponse(order)
	return &resp, nil
}

// Cancel cancela un pedido pendiente y restaura el stock de cada línea en
// una sola transacción. Un pedido entregado no se puede cancelar
// (ErrConflict); cancelar dos veces repite la respuesta sin tocar el stock.
// El cliente solo puede cancelar pedidos propios.
func (uc *UseCase) Cancel(ctx context.Context, userID, role, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role == entity.RoleCliente && order.ClientID != userID {
		return nil, domain.ErrForbidden
	}
	switch order.OrderStatus {
	case entity.OrderStatusCancelado:
		resp := checkout.ToOrderResponse(order)
		return &resp, nil
	case entity.OrderStatusEntregado:
		return nil, domain.ErrConflict
	}
	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		for _, item := range order.Items {
			product, err := products.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// el producto pudo haberse eliminado del catálogo; la
				// cancelación sigue siendo válida
				continue
			}
			if err := products.UpdateQuantity(ctx, product.ID, product.Quantity+item.Quantity); err != nil {
				return err
			}
		}
		return orders.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelado)
	})
	if err != nil {
		return nil, err
	}
	order.OrderStatus = entity.OrderStatusCancelado
	order.UpdatedAt = time.Now()
	resp := checkout.ToOrderResponse(order)
	return &resp, nil
}

// SetRecordStatus activa o inactiva el registro del pedido (borrado suave).
func (uc *UseCase) SetRecordStatus(ctx context.Context, orderID, status string) error {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateRecordStatus(ctx, orderID, status)
}

// Receipt genera el comprobante PDF de un pedido visible para el rol.
func (uc *UseCase) Receipt(ctx context.Context, userID, role, orderID string) ([]byte, error) {
	order, err := uc.visibleOrder(ctx, userID, role, orderID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(order)
}

func (uc *UseCase) visibleOrder(ctx context.Context, userID, role, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	switch role {
	case entity.RoleCliente:
		if order.ClientID != userID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleDomiciliario:
		if order.CourierID == nil || *order.CourierID != userID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleCajero, entity.RoleAdministrador:
	default:
		return nil, domain.ErrForbidden
	}
	return order, nil
}
