package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Brand       string          `json:"brand"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Brand       *string          `json:"brand"`
}

// UpdateStockRequest entrada para reponer o corregir stock.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// UpdateStatusRequest entrada para activar/inactivar un registro.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=activo inactivo"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	ImageURL       string          `json:"image_url"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	Brand          string          `json:"brand"`
	Status         string          `json:"status"`
	Agotado        bool            `json:"agotado"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse arma la respuesta a partir de la entidad,
// con el precio ya formateado en COP.
func NewProductResponse(p *entity.Product, formatted string) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		PriceFormatted: formatted,
		ImageURL:       p.ImageURL,
		Category:       p.Category,
		Quantity:       p.Quantity,
		Brand:          p.Brand,
		Status:         p.Status,
		Agotado:        p.Agotado(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
