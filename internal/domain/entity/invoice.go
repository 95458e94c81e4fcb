package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Invoice factura emitida a una cuenta cliente. Los montos Net, VATAmount y
// Total son derivados (internal/domain/billing) y se persisten ya calculados;
// Fingerprint es el hash SHA-384 determinista sobre los campos fiscales.
type Invoice struct {
	ID          string
	AccountID   string
	ProjectID   string // opcional: factura ligada a un proyecto
	Prefix      string
	Number      string
	Date        time.Time
	DueDate     time.Time
	Status      string // ver constantes InvoiceStatus*
	Currency    string // ISO 4217, ej. "EUR"
	Net         decimal.Decimal
	VATRate     decimal.Decimal // porcentaje, ej. 20
	VATAmount   decimal.Decimal
	Total       decimal.Decimal
	Fingerprint string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceLine renglón de factura. Amount = Quantity × UnitPrice (2 decimales).
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	Position    int
}
