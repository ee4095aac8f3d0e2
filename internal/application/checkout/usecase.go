package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/logger"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// Plantilla de notificación usada al crear un pedido.
const TemplateNuevoPedido = "nuevo_pedido"

// UseCase confirma el checkout: valida los datos de contacto, congela el
// carrito y crea el pedido descontando stock en una sola transacción.
type UseCase struct {
	txRunner    TxRunner
	cartStore   cart.Store
	selection   cart.SelectionStore
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	notifier    Notifier
	log         *logger.Logger
}

// NewUseCase construye el caso de uso del checkout.
func NewUseCase(
	txRunner TxRunner,
	cartStore cart.Store,
	selection cart.SelectionStore,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		cartStore:   cartStore,
		selection:   selection,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		log:         log,
	}
}

// Submit crea el pedido a partir del carrito del usuario.
//
// El descuento de stock ocurre dentro de la transacción con bloqueo de fila
// (SELECT ... FOR UPDATE): si al confirmar el stock real ya no alcanza para
// alguna línea, toda la operación se revierte con ErrInsufficientStock y el
// carrito queda intacto para que el cliente lo ajuste.
func (uc *UseCase) Submit(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	session := NewSession()

	name, phone, address, err := uc.resolveContact(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	entries, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := session.Submit(); err != nil {
		return nil, err
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentEfectivo
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		ClientID:      userID,
		Name:          name,
		Email:         in.Email,
		Phone:         phone,
		Address:       address,
		PaymentMethod: payment,
		OrderStatus:   entity.OrderStatusPendiente,
		RecordStatus:  entity.StatusActivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		total := entity.CartTotal(nil)
		for _, e := range entries {
			product, err := products.GetForUpdate(ctx, e.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Status != entity.StatusActivo {
				return fmt.Errorf("%w: %s", domain.ErrProductUnavailable, e.ProductID)
			}
			if product.Quantity < e.Quantity {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
			}
			if err := products.UpdateQuantity(ctx, product.ID, product.Quantity-e.Quantity); err != nil {
				return err
			}
			item := entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  e.Quantity,
				ImageURL:  product.ImageURL,
			}
			order.Items = append(order.Items, item)
			total = total.Add(item.Subtotal())
		}
		order.Total = total
		return orders.Create(ctx, order)
	})
	if err != nil {
		_ = session.Fail()
		return nil, err
	}
	if err := session.Succeed(); err != nil {
		return nil, err
	}

	// El pedido ya está confirmado: vaciar carrito y selección no puede
	// tumbar la respuesta, solo se registra.
	if err := uc.cartStore.Clear(ctx, userID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo vaciar el carrito tras el checkout")
	}
	if err := uc.selection.ClearSelection(ctx, userID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo limpiar la dirección seleccionada")
	}

	uc.notifyCajeros(order)

	return &dto.CheckoutResponse{Order: ToOrderResponse(order)}, nil
}

// resolveContact decide los datos de entrega: si hay dirección seleccionada
// o AddressID en la solicitud, esa dirección manda; si no, los campos
// digitados deben venir completos.
func (uc *UseCase) resolveContact(ctx context.Context, userID string, in dto.CheckoutRequest) (name, phone, address string, err error) {
	addressID := in.AddressID
	if addressID == "" {
		addressID, err = uc.selection.GetSelection(ctx, userID)
		if err != nil {
			return "", "", "", err
		}
	}
	if addressID != "" {
		saved, err := uc.addressRepo.GetByID(ctx, addressID)
		if err != nil {
			return "", "", "", err
		}
		if saved == nil || saved.UserID != userID {
			return "", "", "", domain.ErrNotFound
		}
		name = in.Name
		if name == "" {
			if user, err := uc.userRepo.GetByID(ctx, userID); err == nil && user != nil {
				name = user.Name
			}
		}
		phone = saved.Phone
		if phone == "" {
			phone = in.Phone
		}
		return name, phone, saved.Line + ", " + saved.City, nil
	}
	if in.Name == "" || in.Phone == "" || in.Address == "" {
		return "", "", "", domain.ErrInvalidInput
	}
	return in.Name, in.Phone, in.Address, nil
}

// notifyCajeros avisa del pedido nuevo a todos los cajeros activos.
// Corre en segundo plano: un correo fallido jamás afecta al pedido.
func (uc *UseCase) notifyCajeros(order *entity.Order) {
	o := *order
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		cajeros, err := uc.userRepo.ListByRole(ctx, entity.RoleCajero)
		if err != nil {
			uc.log.Warn().Err(err).Msg("no se pudieron listar cajeros para notificar")
			return
		}
		for _, c := range cajeros {
			payload := map[string]string{
				"to":       c.Email,
				"pedido":   o.ID,
				"cliente":  o.Name,
				"telefono": o.Phone,
				"total":    money.FormatCOP(o.Total),
			}
			if err := uc.notifier.Send(ctx, TemplateNuevoPedido, payload); err != nil {
				uc.log.Warn().Err(err).Str("email", c.Email).Msg("no se pudo notificar al cajero")
			}
		}
	}()
}

// ToOrderResponse arma la respuesta pública de un pedido.
func ToOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:      i.ProductID,
			Name:           i.Name,
			Price:          i.Price,
			PriceFormatted: money.FormatCOP(i.Price),
			Quantity:       i.Quantity,
			Subtotal:       i.Subtotal(),
			ImageURL:       i.ImageURL,
		})
	}
	return dto.OrderResponse{
		ID:             o.ID,
		ClientID:       o.ClientID,
		Name:           o.Name,
		Email:          o.Email,
		Phone:          o.Phone,
		Address:        o.Address,
		Items:          items,
		PaymentMethod:  o.PaymentMethod,
		Total:          o.Total,
		TotalFormatted: money.FormatCOP(o.Total),
		OrderStatus:    o.OrderStatus,
		RecordStatus:   o.RecordStatus,
		CourierID:      o.CourierID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
