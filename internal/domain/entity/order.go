package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido (ciclo de entrega).
const (
	OrderStatusPendiente = "pendiente"
	OrderStatusEntregado = "entregado"
	OrderStatusCancelado = "cancelado"
)

// Métodos de pago aceptados. El checkout usa PaymentEfectivo por defecto.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTarjeta       = "tarjeta"
	PaymentTransferencia = "transferencia"
)

// ValidPaymentMethod verifica que el método esté dentro del enum.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentEfectivo, PaymentTarjeta, PaymentTransferencia:
		return true
	}
	return false
}

// Order (pedido) es la orden creada por el checkout de un cliente.
// Los datos de contacto y las líneas son snapshots al momento del envío,
// no referencias vivas a User ni a Product.
type Order struct {
	ID            string
	ClientID      string
	Name          string // datos de contacto del comprador
	Email         string
	Phone         string
	Address       string
	Items         []OrderItem
	PaymentMethod string
	Total         decimal.Decimal
	OrderStatus   string  // pendiente | entregado | cancelado
	RecordStatus  string  // activo | inactivo
	CourierID     *string // domiciliario asignado por el cajero
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem línea de pedido con nombre/precio/imagen capturados al crear la orden.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	ImageURL  string
}

// Subtotal devuelve precio x cantidad de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
