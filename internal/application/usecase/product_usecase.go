package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/money"
)

// ProductUseCase casos de uso de catálogo: CRUD, stock y estado.
// Los productos nunca se borran; se inactivan.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo en estado activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		Quantity:    in.Quantity,
		Brand:       in.Brand,
		Status:      entity.StatusActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos del producto. No toca stock ni estado:
// esos cambian por sus propias operaciones.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Category != nil {
		product.Category = strings.ToLower(strings.TrimSpace(*in.Category))
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos aplicando los filtros de catálogo. El catálogo
// público lista solo activos; el administrador puede pedir todos. La
// categoría se aplica en memoria con FilterByCategory sobre la lista ya
// cargada, respetando su orden.
func (uc *ProductUseCase) List(ctx context.Context, f repository.ProductFilter) (*dto.ProductListResponse, error) {
	category := f.Category
	f.Category = ""
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	items = FilterByCategory(items, category)
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// FilterByCategory filtra una lista ya cargada por categoría exacta
// (insensible a mayúsculas). Es pura: no toca el repositorio y una
// categoría vacía o "todas" devuelve la lista tal cual.
func FilterByCategory(products []dto.ProductResponse, category string) []dto.ProductResponse {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "todas" {
		return products
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// UpdateStock fija el stock del producto (reposición o corrección).
func (uc *ProductUseCase) UpdateStock(ctx context.Context, id string, quantity int) (*dto.ProductResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	product.Quantity = quantity
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// SetStatus activa o inactiva el producto. Repetir el mismo estado
// no es error: la operación es idempotente.
func (uc *ProductUseCase) SetStatus(ctx context.Context, id, status string) (*dto.ProductResponse, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Status != status {
		if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		product.Status = status
		product.UpdatedAt = time.Now()
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := dto.NewProductResponse(p, money.FormatCOP(p.Price))
	return &resp
}
