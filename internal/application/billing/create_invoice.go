package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
	domainbilling "github.com/jhondav/agencia-api/internal/domain/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// CreateInvoiceUseCase crea facturas: deriva neto/IVA/total desde los
// renglones, reserva el consecutivo dentro de la transacción y sella el
// documento con la huella SHA-384.
type CreateInvoiceUseCase struct {
	txRunner    InvoiceTxRunner
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	issuer      Issuer
	prefix      string
	currency    string
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner InvoiceTxRunner,
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	issuer Issuer,
	defaultPrefix, defaultCurrency string,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		issuer:      issuer,
		prefix:      defaultPrefix,
		currency:    defaultCurrency,
	}
}

// Create valida la petición, deriva los montos y persiste factura + renglones
// en una transacción. La factura nace en draft.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.AccountID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.Kind != entity.AccountKindClient {
		// Solo se factura a cuentas cliente; a los proveedores se les paga.
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	invoiceID := uuid.New().String()
	lines := make([]entity.InvoiceLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		if l.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      domainbilling.LineAmount(l.Quantity, l.UnitPrice),
			Position:    i + 1,
		})
	}

	net, err := domainbilling.SumLines(lines)
	if err != nil {
		return nil, err
	}
	amounts, err := domainbilling.ComputeAmounts(net, in.VATRate)
	if err != nil {
		return nil, err
	}

	prefix := in.Prefix
	if prefix == "" {
		prefix = uc.prefix
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.currency
	}
	dueDays := in.DueDays
	if dueDays <= 0 {
		dueDays = 30
	}

	invoice := &entity.Invoice{
		ID:        invoiceID,
		AccountID: in.AccountID,
		ProjectID: in.ProjectID,
		Prefix:    prefix,
		Date:      now,
		DueDate:   now.AddDate(0, 0, dueDays),
		Status:    entity.InvoiceStatusDraft,
		Currency:  currency,
		Net:       amounts.Net,
		VATRate:   amounts.VATRate,
		VATAmount: amounts.VATAmount,
		Total:     amounts.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Consecutivo + huella + insert en la misma transacción.
	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		number, err := invoiceRepo.NextNumber(ctx, prefix)
		if err != nil {
			return err
		}
		invoice.Number = number

		fp, err := domainbilling.Fingerprint(&domainbilling.FingerprintParams{
			Number:      prefix + number,
			Date:        invoice.Date.Format("2006-01-02"),
			Net:         invoice.Net,
			VATAmount:   invoice.VATAmount,
			Total:       invoice.Total,
			IssuerTaxID: uc.issuer.TaxID,
			ClientTaxID: account.TaxID,
			Currency:    currency,
		})
		if err != nil {
			return err
		}
		invoice.Fingerprint = fp

		return invoiceRepo.Create(ctx, invoice, lines)
	})
	if err != nil {
		return nil, err
	}

	return invoiceToResponse(invoice, lines), nil
}

// GetByID obtiene la factura con sus renglones. (nil, nil) si no existe.
func (uc *CreateInvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	lines, err := uc.invoiceRepo.FindLines(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice, lines), nil
}

// List lista facturas; si accountID no está vacío filtra por cuenta (vista
// del portal cliente).
func (uc *CreateInvoiceUseCase) List(ctx context.Context, accountID string, limit, offset int) ([]dto.InvoiceResponse, error) {
	var (
		list []*entity.Invoice
		err  error
	)
	if accountID != "" {
		list, err = uc.invoiceRepo.ListByAccount(ctx, accountID, limit, offset)
	} else {
		list, err = uc.invoiceRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *invoiceToResponse(inv, nil))
	}
	return items, nil
}

// UpdateStatus avanza el estado de la factura (issued, paid, void).
func (uc *CreateInvoiceUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.InvoiceStatusIssued, entity.InvoiceStatusPaid, entity.InvoiceStatusVoid:
	default:
		return domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.UpdateStatus(ctx, id, status)
}

func invoiceToResponse(inv *entity.Invoice, lines []entity.InvoiceLine) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	out := &dto.InvoiceResponse{
		ID:          inv.ID,
		AccountID:   inv.AccountID,
		ProjectID:   inv.ProjectID,
		Number:      inv.Prefix + inv.Number,
		Date:        inv.Date,
		DueDate:     inv.DueDate,
		Status:      inv.Status,
		Currency:    inv.Currency,
		Net:         inv.Net,
		VATRate:     inv.VATRate,
		VATAmount:   inv.VATAmount,
		Total:       inv.Total,
		Fingerprint: inv.Fingerprint,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.InvoiceLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
			Position:    l.Position,
		})
	}
	return out
}
