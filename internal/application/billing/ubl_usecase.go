package billing

import (
	"context"
	"encoding/base64"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// UBLExportUseCase exporta una factura como documento UBL 2.1 junto con su
// digest canónico, para intercambio con sistemas de facturación electrónica.
type UBLExportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	exporter    UBLExporter
	issuer      Issuer
}

// NewUBLExportUseCase construye el caso de uso.
func NewUBLExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	exporter UBLExporter,
	issuer Issuer,
) *UBLExportUseCase {
	return &UBLExportUseCase{
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		exporter:    exporter,
		issuer:      issuer,
	}
}

// Export genera el XML UBL y su digest canónico. Solo facturas emitidas o
// pagadas se exportan: un borrador todavía puede cambiar.
func (uc *UBLExportUseCase) Export(ctx context.Context, invoiceID string) (*dto.UBLExportResponse, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceStatusIssued && invoice.Status != entity.InvoiceStatusPaid {
		return nil, domain.ErrInvoiceNotIssued
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

	xmlBytes, err := uc.exporter.Build(invoice, uc.issuer, account, lines)
	if err != nil {
		return nil, err
	}
	digest, err := uc.exporter.CanonicalDigest(xmlBytes)
	if err != nil {
		return nil, err
	}

	return &dto.UBLExportResponse{
		InvoiceID:       invoiceID,
		XMLBase64:       base64.StdEncoding.EncodeToString(xmlBytes),
		CanonicalDigest: digest,
	}, nil
}
