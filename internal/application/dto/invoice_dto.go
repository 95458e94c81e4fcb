package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineRequest renglón de la factura a crear.
type InvoiceLineRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest creación de factura. El neto, el IVA y el total se
// derivan de los renglones y la tarifa; el número lo asigna el sistema.
type CreateInvoiceRequest struct {
	AccountID string               `json:"account_id"`
	ProjectID string               `json:"project_id,omitempty"`
	Prefix    string               `json:"prefix"`
	Currency  string               `json:"currency"`
	VATRate   decimal.Decimal      `json:"vat_rate"`
	DueDays   int                  `json:"due_days"`
	Lines     []InvoiceLineRequest `json:"lines"`
}

// InvoiceLineResponse renglón persistido.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	Position    int             `json:"position"`
}

// InvoiceResponse proyección pública de la factura.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	AccountID   string                `json:"account_id"`
	ProjectID   string                `json:"project_id,omitempty"`
	Number      string                `json:"number"` // prefijo + consecutivo
	Date        time.Time             `json:"date"`
	DueDate     time.Time             `json:"due_date"`
	Status      string                `json:"status"`
	Currency    string                `json:"currency"`
	Net         decimal.Decimal       `json:"net"`
	VATRate     decimal.Decimal       `json:"vat_rate"`
	VATAmount   decimal.Decimal       `json:"vat_amount"`
	Total       decimal.Decimal       `json:"total"`
	Fingerprint string                `json:"fingerprint"`
	Lines       []InvoiceLineResponse `json:"lines,omitempty"`
}

// UBLExportResponse exportación UBL 2.1 de la factura: el XML en base64 y el
// digest canónico (C14N + SHA-256) que identifica el documento exportado.
type UBLExportResponse struct {
	InvoiceID       string `json:"invoice_id"`
	XMLBase64       string `json:"xml_base64"`
	CanonicalDigest string `json:"canonical_digest"`
}
