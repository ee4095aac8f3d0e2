package dto

import "time"

// CreateAddressRequest entrada para guardar una dirección de entrega.
type CreateAddressRequest struct {
	Label string `json:"label" validate:"required,min=1,max=50"`
	Line  string `json:"line" validate:"required,min=5,max=300"`
	City  string `json:"city" validate:"required,min=1,max=100"`
	Phone string `json:"phone"`
}

// SelectAddressRequest marca la dirección a usar en el próximo checkout.
type SelectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required,uuid4"`
}

// AddressResponse salida de una dirección guardada.
type AddressResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Line      string    `json:"line"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
