package billing

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// InvoicePDFUseCase genera la representación gráfica de una factura.
type InvoicePDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	generator   InvoicePDFGenerator
	issuer      Issuer
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	generator InvoicePDFGenerator,
	issuer Issuer,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		generator:   generator,
		issuer:      issuer,
	}
}

// Generate carga factura, cuenta y renglones y renderiza el PDF.
func (uc *InvoicePDFUseCase) Generate(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	account, err := uc.accountRepo.FindByID(ctx, invoice.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.FindLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, uc.issuer, account, lines)
}
