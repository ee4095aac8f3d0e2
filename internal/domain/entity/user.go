package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "administrador"
	RoleCliente       = "cliente"
	RoleCajero        = "cajero"
	RoleDomiciliario  = "domiciliario"
)

// ValidRole verifica que el rol esté dentro del enum.
func ValidRole(r string) bool {
	switch r {
	case RoleAdministrador, RoleCliente, RoleCajero, RoleDomiciliario:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID             string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Phone          string
	Address        string
	DocumentType   string // CC, CE, NIT, ...
	DocumentNumber string
	Role           string // administrador, cliente, cajero, domiciliario
	Status         string // activo | inactivo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
