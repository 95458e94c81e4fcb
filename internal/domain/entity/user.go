package entity

import (
	"time"

	"github.com/jhondav/agencia-api/internal/domain/space"
)

// User representa un usuario del sistema. El rol viene del conjunto cerrado
// de internal/domain/space y determina los espacios que puede ocupar.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         space.Role
	// Vínculos opcionales a entidades externas: cuenta cliente para roles
	// client_* y contacto de proveedor para vendor. Solo filtran datos.
	AccountID       string
	VendorContactID string
	Status          string // active, inactive, suspended
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SessionUser proyecta el usuario a la vista que consume el control de espacios.
func (u *User) SessionUser() *space.User {
	if u == nil {
		return nil
	}
	return &space.User{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		AccountID:       u.AccountID,
		VendorContactID: u.VendorContactID,
	}
}
