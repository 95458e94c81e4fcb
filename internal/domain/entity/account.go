package entity

import "time"

// Tipos de cuenta del CRM.
const (
	AccountKindClient = "client"
	AccountKindVendor = "vendor"
)

// Account representa una organización con la que trabaja la agencia:
// un cliente o un proveedor.
type Account struct {
	ID        string
	Name      string
	Kind      string // client, vendor
	TaxID     string // identificación fiscal (NIF/NIT/SIREN según país)
	Address   string
	Phone     string
	Email     string
	Status    string // active, prospect, archived
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact persona de contacto dentro de una cuenta.
type Contact struct {
	ID        string
	AccountID string
	Name      string
	Email     string
	Phone     string
	Position  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
