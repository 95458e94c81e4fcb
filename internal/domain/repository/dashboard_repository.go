package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WorkloadResult conteos de trabajo en curso. Lo produce la DB; el caso de
// uso lo traslada al DTO del resumen.
type WorkloadResult struct {
	ActiveAccounts int // cuentas con status = active
	ActiveProjects int // proyectos con status = active
	OpenTasks      int // tareas en todo o doing
}

// TopAccountResult resultado crudo del ranking de cuentas por facturación.
type TopAccountResult struct {
	AccountID    string
	Name         string
	InvoiceCount int
	TotalBilled  decimal.Decimal
}

// DashboardRepository define las consultas de lectura para el resumen de
// actividad. Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// GetBillingMetrics devuelve el total facturado (facturas emitidas o
	// pagadas) y el pendiente de cobro (emitidas sin pagar) del período.
	// Con accountID vacío agrega todas las cuentas; con valor, solo esa.
	// Usa COALESCE para devolver cero si no hay facturas en el período.
	GetBillingMetrics(
		ctx context.Context,
		accountID string,
		startDate, endDate time.Time,
	) (billed, outstanding decimal.Decimal, err error)

	// GetTopAccounts devuelve las `limit` cuentas con mayor facturación en
	// el período, ordenadas de mayor a menor total.
	GetTopAccounts(
		ctx context.Context,
		startDate, endDate time.Time,
		limit int,
	) ([]TopAccountResult, error)

	// GetWorkload devuelve los conteos de trabajo en curso. Con accountID
	// vacío cuenta todo; con valor limita proyectos y tareas a esa cuenta.
	GetWorkload(ctx context.Context, accountID string) (WorkloadResult, error)

	// CountTasksByAssignee devuelve cuántas tareas abiertas (todo, doing) y
	// terminadas tiene asignadas un usuario.
	CountTasksByAssignee(ctx context.Context, assigneeID string) (open, done int, err error)
}
