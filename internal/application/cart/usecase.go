package cart

import (
	"context"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// UseCase casos de uso del carrito: agregar, cambiar cantidad, leer
// reconciliado contra stock y vaciar.
type UseCase struct {
	store       Store
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(store Store, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{store: store, productRepo: productRepo}
}

// Add agrega un producto al carrito. Si la línea ya existe, suma cantidades;
// la cantidad resultante se recorta al stock disponible. Un producto
// inactivo o sin stock devuelve ErrProductUnavailable.
func (uc *UseCase) Add(ctx context.Context, userID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Disponible() {
		return nil, domain.ErrProductUnavailable
	}
	entries, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range entries {
		if entries[i].ProductID == in.ProductID {
			entries[i].Quantity += in.Quantity
			if entries[i].Quantity > product.Quantity {
				entries[i].Quantity = product.Quantity
			}
			merged = true
			break
		}
	}
	if !merged {
		qty := in.Quantity
		if qty > product.Quantity {
			qty = product.Quantity
		}
		entries = append(entries, entity.CartEntry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Category:  product.Category,
			Quantity:  qty,
		})
	}
	if err := uc.store.Set(ctx, userID, entries); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// UpdateQuantity fija la cantidad de una línea existente. Una cantidad
// menor a 1 devuelve ErrInvalidQuantity y una mayor al stock vigente
// ErrInsufficientStock; en ambos casos el carrito queda intacto.
func (uc *UseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	entries, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range entries {
		if entries[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Disponible() {
		return nil, domain.ErrProductUnavailable
	}
	// La edición sobre stock se rechaza; el recorte automático queda
	// reservado a la reconciliación de lectura.
	if quantity > product.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	entries[idx].Quantity = quantity
	if err := uc.store.Set(ctx, userID, entries); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// Remove elimina una línea del carrito. Quitar un producto que no está
// no es error.
func (uc *UseCase) Remove(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	entries, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := entries[:0]
	for _, e := range entries {
		if e.ProductID != productID {
			out = append(out, e)
		}
	}
	if err := uc.store.Set(ctx, userID, out); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// Get lee el carrito reconciliado contra el stock vigente. Si la
// reconciliación cambió algo, persiste el carrito ajustado antes de
// responder, de modo que dos lecturas seguidas sean consistentes.
func (uc *UseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	entries, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &dto.CartResponse{Items: []dto.CartItemResponse{}, Total: entity.CartTotal(nil), TotalFormatted: money.FormatCOP(entity.CartTotal(nil))}, nil
	}
	products := make([]*entity.Product, 0, len(entries))
	for _, e := range entries {
		p, err := uc.productRepo.GetByID(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products = append(products, p)
		}
	}
	reconciled, adjustments := Reconcile(entries, SnapshotFromProducts(products))
	if len(adjustments) > 0 {
		if err := uc.store.Set(ctx, userID, reconciled); err != nil {
			return nil, err
		}
	}
	return buildResponse(reconciled, adjustments), nil
}

// Clear vacía el carrito. Es idempotente: vaciar un carrito vacío no es error.
func (uc *UseCase) Clear(ctx context.Context, userID string) error {
	return uc.store.Clear(ctx, userID)
}

func buildResponse(entries []entity.CartEntry, adjustments []Adjustment) *dto.CartResponse {
	adjusted := make(map[string]bool, len(adjustments))
	var removed []string
	for _, a := range adjustments {
		if a.To == 0 {
			removed = append(removed, a.ProductID)
		} else {
			adjusted[a.ProductID] = true
		}
	}
	items := make([]dto.CartItemResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.CartItemResponse{
			ProductID:      e.ProductID,
			Name:           e.Name,
			Price:          e.Price,
			PriceFormatted: money.FormatCOP(e.Price),
			ImageURL:       e.ImageURL,
			Category:       e.Category,
			Quantity:       e.Quantity,
			Subtotal:       e.Subtotal(),
			Adjusted:       adjusted[e.ProductID],
		})
	}
	total := entity.CartTotal(entries)
	return &dto.CartResponse{
		Items:          items,
		Total:          total,
		TotalFormatted: money.FormatCOP(total),
		Removed:        removed,
	}
}
