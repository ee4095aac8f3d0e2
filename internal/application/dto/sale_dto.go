package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta en la entrada.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta de mostrador.
type CreateSaleRequest struct {
	DocumentNumber string            `json:"document_number" validate:"required,min=3,max=20"`
	PaymentMethod  string            `json:"payment_method" validate:"required,oneof=efectivo tarjeta transferencia"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta en la salida.
type SaleItemResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             string             `json:"id"`
	DocumentNumber string             `json:"document_number"`
	Items          []SaleItemResponse `json:"items"`
	PaymentMethod  string             `json:"payment_method"`
	Date           time.Time          `json:"date"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
	Status         string             `json:"status"`
	CreatedBy      string             `json:"created_by"`
}

// SaleListResponse lista de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
