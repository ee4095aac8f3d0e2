package entity

import "time"

// Address es una dirección de entrega guardada por un cliente.
// Al hacer checkout puede seleccionarse una en lugar de digitar los datos.
type Address struct {
	ID        string
	UserID    string
	Label     string // "casa", "oficina", ...
	Line      string // dirección completa
	City      string
	Phone     string
	CreatedAt time.Time
}
