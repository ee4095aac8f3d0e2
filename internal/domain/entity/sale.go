package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale (venta) es una transacción de mostrador registrada por cajero o admin.
// Crear la venta descuenta stock; inactivarla lo restaura.
type Sale struct {
	ID             string
	DocumentNumber string // documento del comprador (CC/NIT)
	Items          []SaleItem
	PaymentMethod  string
	Date           time.Time
	Total          decimal.Decimal
	Status         string // activo | inactivo
	CreatedBy      string // usuario que registró la venta
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem línea de venta con snapshot de nombre y precio.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal devuelve precio x cantidad de la línea.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
