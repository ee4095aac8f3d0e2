package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// SaleTxRunner ejecuta el cuerpo de una venta dentro de una transacción:
// descuento de stock y registro de la venta confirman o revierten juntos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error
}

// SaleUseCase ventas de mostrador registradas por cajero o administrador.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
	txRunner SaleTxRunner
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(saleRepo repository.SaleRepository, txRunner SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, txRunner: txRunner}
}

// Create registra una venta descontando el stock de cada línea con bloqueo
// de fila. Stock insuficiente en cualquier línea revierte toda la venta.
func (uc *SaleUseCase) Create(ctx context.Context, createdBy string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		DocumentNumber: in.DocumentNumber,
		PaymentMethod:  in.PaymentMethod,
		Date:           now,
		Status:         entity.StatusActivo,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		total := entity.CartTotal(nil)
		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return domain.ErrInvalidQuantity
			}
			product, err := products.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Status != entity.StatusActivo {
				return fmt.Errorf("%w: %s", domain.ErrProductUnavailable, item.ProductID)
			}
			if product.Quantity < item.Quantity {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
			}
			if err := products.UpdateQuantity(ctx, product.ID, product.Quantity-item.Quantity); err != nil {
				return err
			}
			line := entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
			}
			sale.Items = append(sale.Items, line)
			total = total.Add(line.Subtotal())
		}
		sale.Total = total
		return sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista ventas según el filtro (estado de registro, documento, fecha).
func (uc *SaleUseCase) List(ctx context.Context, f repository.SaleFilter) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// SetStatus cambia el estado de registro de la venta. Inactivar una venta
// activa restaura el stock de sus líneas en la misma transacción; repetir
// el mismo estado no mueve stock.
func (uc *SaleUseCase) SetStatus(ctx context.Context, id, status string) (*dto.SaleResponse, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status == status {
		return toSaleResponse(sale), nil
	}
	if status == entity.StatusActivo {
		// reactivar una venta no vuelve a descontar stock: el ajuste se
		// hace con la operación de stock del producto
		if err := uc.saleRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		sale.Status = status
		return toSaleResponse(sale), nil
	}
	err = uc.txRunner.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		for _, item := range sale.Items {
			product, err := products.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			if err := products.UpdateQuantity(ctx, product.ID, product.Quantity+item.Quantity); err != nil {
				return err
			}
		}
		return sales.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}
	sale.Status = status
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, i := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:      i.ProductID,
			Name:           i.Name,
			Price:          i.Price,
			PriceFormatted: money.FormatCOP(i.Price),
			Quantity:       i.Quantity,
			Subtotal:       i.Subtotal(),
		})
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		DocumentNumber: s.DocumentNumber,
		Items:          items,
		PaymentMethod:  s.PaymentMethod,
		Date:           s.Date,
		Total:          s.Total,
		TotalFormatted: money.FormatCOP(s.Total),
		Status:         s.Status,
		CreatedBy:      s.CreatedBy,
	}
}
