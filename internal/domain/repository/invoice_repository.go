package repository

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para facturas y sus renglones.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice, lines []entity.InvoiceLine) error
	FindByID(ctx context.Context, id string) (*entity.Invoice, error)
	FindLines(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	// NextNumber reserva el siguiente consecutivo para el prefijo. Debe
	// invocarse dentro de la transacción de creación para evitar huecos
	// y duplicados bajo concurrencia.
	NextNumber(ctx context.Context, prefix string) (string, error)
}
