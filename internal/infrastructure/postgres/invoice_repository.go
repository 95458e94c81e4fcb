package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, account_id, project_id, prefix, number, date, due_date, status, currency, net, vat_rate, vat_amount, total, fingerprint, created_at, updated_at`

// Create persiste la cabecera de la factura y sus renglones.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice, lines []entity.InvoiceLine) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, account_id, project_id, prefix, number, date, due_date, status, currency, net, vat_rate, vat_amount, total, fingerprint, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.AccountID, nullIfEmpty(invoice.ProjectID),
		invoice.Prefix, invoice.Number, invoice.Date, invoice.DueDate,
		invoice.Status, invoice.Currency, invoice.Net, invoice.VATRate,
		invoice.VATAmount, invoice.Total, nullIfEmpty(invoice.Fingerprint),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for i := range lines {
		line := &lines[i]
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		line.InvoiceID = invoice.ID
		lineQuery := `
			INSERT INTO invoice_lines (id, invoice_id, description, quantity, unit_price, amount, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := r.q.Exec(ctx, lineQuery,
			line.ID, line.InvoiceID, line.Description, line.Quantity,
			line.UnitPrice, line.Amount, line.Position,
		); err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// FindByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var projectID, fingerprint *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.AccountID, &projectID, &inv.Prefix, &inv.Number,
		&inv.Date, &inv.DueDate, &inv.Status, &inv.Currency,
		&inv.Net, &inv.VATRate, &inv.VATAmount, &inv.Total, &fingerprint,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.ProjectID = derefStr(projectID)
	inv.Fingerprint = derefStr(fingerprint)
	return &inv, nil
}

// FindLines obtiene todos los renglones de una factura en orden de posición.
func (r *InvoiceRepo) FindLines(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, amount, position
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var list []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.Amount, &l.Position); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una factura.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByAccount lista facturas de una cuenta con paginación.
func (r *InvoiceRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE account_id = $1 ORDER BY date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices by account: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// List lista facturas con paginación.
func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY date DESC, number DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var projectID, fingerprint *string
		if err := rows.Scan(
			&inv.ID, &inv.AccountID, &projectID, &inv.Prefix, &inv.Number,
			&inv.Date, &inv.DueDate, &inv.Status, &inv.Currency,
			&inv.Net, &inv.VATRate, &inv.VATAmount, &inv.Total, &fingerprint,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.ProjectID = derefStr(projectID)
		inv.Fingerprint = derefStr(fingerprint)
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// NextNumber reserva el siguiente consecutivo del prefijo. El upsert bloquea
// la fila del prefijo hasta el commit, así que bajo concurrencia nunca se
// entregan dos veces el mismo número.
func (r *InvoiceRepo) NextNumber(ctx context.Context, prefix string) (string, error) {
	query := `
		INSERT INTO invoice_numbering (prefix, last_number)
		VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET last_number = invoice_numbering.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(ctx, query, prefix).Scan(&n); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("%04d", n), nil
}
