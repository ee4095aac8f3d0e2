package entity

import "time"

// Provider representa un proveedor (dato maestro referenciado por Product.Brand).
type Provider struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Status    string // activo | inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
