package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ImageURL       string          `json:"image_url,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID             string              `json:"id"`
	ClientID       string              `json:"client_id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	Items          []OrderItemResponse `json:"items"`
	PaymentMethod  string              `json:"payment_method"`
	Total          decimal.Decimal     `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
	OrderStatus    string              `json:"order_status"`
	RecordStatus   string              `json:"record_status"`
	CourierID      *string             `json:"courier_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// AssignCourierRequest entrada para asignar un domiciliario al pedido.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid4"`
}
