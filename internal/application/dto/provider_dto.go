package dto

import "time"

// CreateProviderRequest entrada para crear un proveedor.
type CreateProviderRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdateProviderRequest modificación parcial de un proveedor.
type UpdateProviderRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
