package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de registro compartidos por productos, ventas, proveedores y usuarios.
const (
	StatusActivo   = "activo"
	StatusInactivo = "inactivo"
)

// Product representa un producto del catálogo de la cigarrería.
// Quantity es el stock disponible; nunca se borra un producto, solo se
// inactiva (Status). Brand referencia el nombre del proveedor.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta en COP, sin centavos
	ImageURL    string
	Category    string // texto libre: "bebidas", "snacks", "aseo", ...
	Quantity    int    // stock disponible, >= 0
	Brand       string
	Status      string // activo | inactivo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Agotado indica si el producto está sin stock (vista "agotados").
func (p *Product) Agotado() bool {
	return p.Quantity == 0
}

// Disponible indica si el producto puede agregarse al carrito:
// debe estar activo y con stock.
func (p *Product) Disponible() bool {
	return p.Status == StatusActivo && p.Quantity > 0
}
