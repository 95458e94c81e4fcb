// Package analytics contiene los casos de uso del resumen de actividad que
// alimenta el dashboard de cada espacio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

const dashboardTopAccounts = 5 // filas del ranking de cuentas

// DashboardUseCase genera el resumen de actividad del mes en curso, con una
// vista por espacio: interno (toda la agencia), cliente (su cuenta) y
// proveedor (sus tareas).
//
// Fuente de datos: DashboardRepository (consultas read-only). No toca los
// repositorios transaccionales.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary construye el resumen del espacio interno.
//
// Tres llamadas en paralelo:
//  1. GetBillingMetrics(mes)       → MonthBilled + MonthOutstanding
//  2. GetWorkload("")              → cuentas, proyectos y tareas en curso
//  3. GetTopAccounts(mes, top 5)   → TopAccounts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	start, end, label := currentMonth(time.Now())

	type billingResult struct {
		billed      decimal.Decimal
		outstanding decimal.Decimal
		err         error
	}
	type workloadResult struct {
		w   repository.WorkloadResult
		err error
	}
	type rankingResult struct {
		rows []repository.TopAccountResult
		err  error
	}

	billingCh := make(chan billingResult, 1)
	workloadCh := make(chan workloadResult, 1)
	rankingCh := make(chan rankingResult, 1)

	go func() {
		billed, outstanding, err := uc.repo.GetBillingMetrics(ctx, "", start, end)
		billingCh <- billingResult{billed, outstanding, err}
	}()
	go func() {
		w, err := uc.repo.GetWorkload(ctx, "")
		workloadCh <- workloadResult{w, err}
	}()
	go func() {
		rows, err := uc.repo.GetTopAccounts(ctx, start, end, dashboardTopAccounts)
		rankingCh <- rankingResult{rows, err}
	}()

	billing := <-billingCh
	workload := <-workloadCh
	ranking := <-rankingCh

	if billing.err != nil {
		return nil, fmt.Errorf("dashboard: facturación del mes: %w", billing.err)
	}
	if workload.err != nil {
		return nil, fmt.Errorf("dashboard: trabajo en curso: %w", workload.err)
	}
	if ranking.err != nil {
		return nil, fmt.Errorf("dashboard: top cuentas: %w", ranking.err)
	}

	top := make([]dto.TopAccountDTO, 0, len(ranking.rows))
	for _, row := range ranking.rows {
		top = append(top, dto.TopAccountDTO{
			AccountID:    row.AccountID,
			Name:         row.Name,
			InvoiceCount: row.InvoiceCount,
			TotalBilled:  row.TotalBilled.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		MonthBilled:      billing.billed.Round(2),
		MonthOutstanding: billing.outstanding.Round(2),
		ActiveAccounts:   workload.w.ActiveAccounts,
		ActiveProjects:   workload.w.ActiveProjects,
		OpenTasks:        workload.w.OpenTasks,
		TopAccounts:      top,
		DateLabel:        label,
	}, nil
}

// GetClientSummary construye el resumen del portal cliente para una cuenta.
func (uc *DashboardUseCase) GetClientSummary(ctx context.Context, accountID string) (*dto.ClientDashboardDTO, error) {
	start, end, label := currentMonth(time.Now())

	billed, outstanding, err := uc.repo.GetBillingMetrics(ctx, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: facturación de la cuenta: %w", err)
	}
	workload, err := uc.repo.GetWorkload(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: trabajo de la cuenta: %w", err)
	}

	return &dto.ClientDashboardDTO{
		ActiveProjects:   workload.ActiveProjects,
		OpenTasks:        workload.OpenTasks,
		MonthBilled:      billed.Round(2),
		MonthOutstanding: outstanding.Round(2),
		DateLabel:        label,
	}, nil
}

// GetVendorSummary construye el resumen del portal proveedor para un usuario.
func (uc *DashboardUseCase) GetVendorSummary(ctx context.Context, assigneeID string) (*dto.VendorDashboardDTO, error) {
	_, _, label := currentMonth(time.Now())

	open, done, err := uc.repo.CountTasksByAssignee(ctx, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tareas del proveedor: %w", err)
	}
	return &dto.VendorDashboardDTO{
		OpenTasks: open,
		DoneTasks: done,
		DateLabel: label,
	}, nil
}

// currentMonth devuelve el rango del mes en curso (día 1 a las 00:00 hasta
// hoy a las 23:59:59) y su etiqueta legible, ej: "Agosto 2026".
func currentMonth(now time.Time) (start, end time.Time, label string) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end = dayStart.Add(24*time.Hour - time.Nanosecond)

	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	label = fmt.Sprintf("%s %d", months[now.Month()-1], now.Year())
	return start, end, label
}
