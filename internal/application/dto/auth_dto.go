package dto

import "time"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	AccountID       string `json:"account_id,omitempty"`        // requerido para roles client_*
	VendorContactID string `json:"vendor_contact_id,omitempty"` // requerido para rol vendor
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse proyección pública del usuario (sin hash).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	AccountID       string    `json:"account_id,omitempty"`
	VendorContactID string    `json:"vendor_contact_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoginResponse token + usuario + estado inicial de espacios para que la UI
// pinte el selector sin una segunda llamada.
type LoginResponse struct {
	Token           string       `json:"token"`
	User            UserResponse `json:"user"`
	ActiveSpace     string       `json:"active_space"`
	PermittedSpaces []string     `json:"permitted_spaces"`
}
