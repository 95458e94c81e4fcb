package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary (espacio
// interno). KPIs del mes en curso más el ranking de cuentas.
type DashboardSummaryDTO struct {
	// Facturación del mes en curso (día 1 a hoy)
	MonthBilled      decimal.Decimal `json:"month_billed"`      // emitido + pagado
	MonthOutstanding decimal.Decimal `json:"month_outstanding"` // emitido sin cobrar

	// Trabajo en curso (foto actual, sin rango de fechas)
	ActiveAccounts int `json:"active_accounts"`
	ActiveProjects int `json:"active_projects"`
	OpenTasks      int `json:"open_tasks"`

	// Top cuentas por facturación del mes (de mayor a menor)
	TopAccounts []TopAccountDTO `json:"top_accounts"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// TopAccountDTO una fila del ranking de cuentas del dashboard.
type TopAccountDTO struct {
	AccountID    string          `json:"account_id"`
	Name         string          `json:"name"`
	InvoiceCount int             `json:"invoice_count"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
}

// ClientDashboardDTO respuesta de GET /api/client/dashboard: la actividad de
// la cuenta del token, nada más.
type ClientDashboardDTO struct {
	ActiveProjects   int             `json:"active_projects"`
	OpenTasks        int             `json:"open_tasks"`
	MonthBilled      decimal.Decimal `json:"month_billed"`
	MonthOutstanding decimal.Decimal `json:"month_outstanding"`
	DateLabel        string          `json:"date_label"`
}

// VendorDashboardDTO respuesta de GET /api/vendor/dashboard: carga de trabajo
// del usuario del token.
type VendorDashboardDTO struct {
	OpenTasks int    `json:"open_tasks"`
	DoneTasks int    `json:"done_tasks"`
	DateLabel string `json:"date_label"`
}
