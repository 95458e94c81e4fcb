package billing

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// Issuer identidad fiscal de la agencia emisora (desde configuración).
type Issuer struct {
	Name    string
	TaxID   string
	Address string
	Email   string
}

// InvoiceTxRunner ejecuta una función dentro de una transacción con el repo
// de facturas atado a la tx. La reserva de consecutivo y el insert deben
// compartir transacción para no dejar huecos ni duplicar números.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator puerto de renderizado del documento de factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer Issuer, account *entity.Account, lines []entity.InvoiceLine) ([]byte, error)
}

// UBLExporter puerto de exportación UBL 2.1: XML del documento más su
// digest canónico (C14N + SHA-256).
type UBLExporter interface {
	Build(invoice *entity.Invoice, issuer Issuer, account *entity.Account, lines []entity.InvoiceLine) ([]byte, error)
	CanonicalDigest(xmlBytes []byte) (string, error)
}
