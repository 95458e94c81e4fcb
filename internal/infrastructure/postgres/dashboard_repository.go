package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhondav/agencia-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el resumen de actividad.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetBillingMetrics devuelve facturado y pendiente de cobro del período.
// Facturado: emitidas + pagadas. Pendiente: emitidas sin pagar. Los borradores
// y las anuladas no cuentan. COALESCE devuelve cero en períodos sin facturas.
func (r *DashboardRepo) GetBillingMetrics(
	ctx context.Context,
	accountID string,
	startDate, endDate time.Time,
) (billed, outstanding decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(total) FILTER (WHERE status IN ('issued', 'paid')), 0) AS billed,
	    COALESCE(SUM(total) FILTER (WHERE status = 'issued'),            0) AS outstanding
	FROM invoices
	WHERE date BETWEEN $1 AND $2
	  AND ($3 = '' OR account_id = $3)`

	err = r.pool.QueryRow(ctx, query, startDate, endDate, accountID).
		Scan(&billed, &outstanding)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("dashboard.GetBillingMetrics: %w", err)
	}
	return billed, outstanding, nil
}

// GetTopAccounts devuelve las `limit` cuentas con mayor facturación del
// período, ordenadas de mayor a menor total.
func (r *DashboardRepo) GetTopAccounts(
	ctx context.Context,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopAccountResult, error) {
	const query = `
	SELECT
	    a.id                 AS account_id,
	    a.name,
	    COUNT(i.id)          AS invoice_count,
	    COALESCE(SUM(i.total), 0) AS total_billed
	FROM invoices i
	JOIN accounts a ON a.id = i.account_id
	WHERE i.date BETWEEN $1 AND $2
	  AND i.status IN ('issued', 'paid')
	GROUP BY a.id, a.name
	ORDER BY total_billed DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetTopAccounts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopAccountResult
	for rows.Next() {
		var row repository.TopAccountResult
		if err := rows.Scan(&row.AccountID, &row.Name, &row.InvoiceCount, &row.TotalBilled); err != nil {
			return nil, fmt.Errorf("dashboard.GetTopAccounts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.GetTopAccounts rows: %w", err)
	}
	if results == nil {
		results = []repository.TopAccountResult{}
	}
	return results, nil
}

// GetWorkload cuenta cuentas activas, proyectos activos y tareas abiertas.
// Con accountID los proyectos y tareas se limitan a esa cuenta (y el conteo
// de cuentas pierde sentido, queda en cero si la cuenta no está activa).
func (r *DashboardRepo) GetWorkload(ctx context.Context, accountID string) (repository.WorkloadResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM accounts
	      WHERE status = 'active' AND ($1 = '' OR id = $1))        AS active_accounts,
	    (SELECT COUNT(*) FROM projects
	      WHERE status = 'active' AND ($1 = '' OR account_id = $1)) AS active_projects,
	    (SELECT COUNT(*) FROM tasks t
	      JOIN projects p ON p.id = t.project_id
	      WHERE t.status IN ('todo', 'doing')
	        AND ($1 = '' OR p.account_id = $1))                     AS open_tasks`

	var w repository.WorkloadResult
	err := r.pool.QueryRow(ctx, query, accountID).
		Scan(&w.ActiveAccounts, &w.ActiveProjects, &w.OpenTasks)
	if err != nil {
		return repository.WorkloadResult{}, fmt.Errorf("dashboard.GetWorkload: %w", err)
	}
	return w, nil
}

// CountTasksByAssignee cuenta tareas abiertas y terminadas de un usuario.
func (r *DashboardRepo) CountTasksByAssignee(ctx context.Context, assigneeID string) (open, done int, err error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE status IN ('todo', 'doing')) AS open,
	    COUNT(*) FILTER (WHERE status = 'done')             AS done
	FROM tasks
	WHERE assignee_id = $1`

	err = r.pool.QueryRow(ctx, query, assigneeID).Scan(&open, &done)
	if err != nil {
		return 0, 0, fmt.Errorf("dashboard.CountTasksByAssignee: %w", err)
	}
	return open, done, nil
}
