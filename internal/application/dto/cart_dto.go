package dto

import "github.com/shopspring/decimal"

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest entrada para cambiar la cantidad de una línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse línea del carrito tras reconciliar contra stock.
type CartItemResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	ImageURL       string          `json:"image_url,omitempty"`
	Category       string          `json:"category,omitempty"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Adjusted       bool            `json:"adjusted"` // la cantidad bajó por falta de stock
}

// CartResponse carrito completo con totales.
type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
	Removed        []string           `json:"removed,omitempty"` // productos eliminados al reconciliar
}
