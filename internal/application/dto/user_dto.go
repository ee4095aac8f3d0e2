package dto

import "time"

// RegisterRequest entrada de registro público; el rol siempre queda "cliente".
type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticarse.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario por el administrador (rol libre).
type CreateUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Role           string `json:"role" validate:"required,oneof=administrador cliente cajero domiciliario"`
}

// UpdateUserRequest modificación parcial de un usuario.
type UpdateUserRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number"`
	Role           *string `json:"role" validate:"omitempty,oneof=administrador cliente cajero domiciliario"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
