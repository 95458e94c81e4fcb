package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/application/analytics"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// fakeDashboardRepo repositorio en memoria que registra los argumentos de la
// última llamada para verificar los rangos de fecha.
type fakeDashboardRepo struct {
	billed      decimal.Decimal
	outstanding decimal.Decimal
	workload    repository.WorkloadResult
	top         []repository.TopAccountResult
	openTasks   int
	doneTasks   int
	failBilling error

	gotAccountID string
	gotStart     time.Time
	gotEnd       time.Time
}

func (f *fakeDashboardRepo) GetBillingMetrics(_ context.Context, accountID string, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	f.gotAccountID = accountID
	f.gotStart = start
	f.gotEnd = end
	if f.failBilling != nil {
		return decimal.Zero, decimal.Zero, f.failBilling
	}
	return f.billed, f.outstanding, nil
}

func (f *fakeDashboardRepo) GetTopAccounts(_ context.Context, _, _ time.Time, _ int) ([]repository.TopAccountResult, error) {
	return f.top, nil
}

func (f *fakeDashboardRepo) GetWorkload(_ context.Context, _ string) (repository.WorkloadResult, error) {
	return f.workload, nil
}

func (f *fakeDashboardRepo) CountTasksByAssignee(_ context.Context, _ string) (int, int, error) {
	return f.openTasks, f.doneTasks, nil
}

func TestDashboard_GetSummary(t *testing.T) {
	repo := &fakeDashboardRepo{
		billed:      decimal.RequireFromString("12500.505"),
		outstanding: decimal.RequireFromString("3100.10"),
		workload:    repository.WorkloadResult{ActiveAccounts: 8, ActiveProjects: 5, OpenTasks: 23},
		top: []repository.TopAccountResult{
			{AccountID: "a1", Name: "Acme", InvoiceCount: 3, TotalBilled: decimal.RequireFromString("9000")},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.MonthBilled.Equal(decimal.RequireFromString("12500.51")),
		"los importes se redondean a 2 decimales, vino %s", summary.MonthBilled)
	assert.True(t, summary.MonthOutstanding.Equal(decimal.RequireFromString("3100.10")))
	assert.Equal(t, 8, summary.ActiveAccounts)
	assert.Equal(t, 5, summary.ActiveProjects)
	assert.Equal(t, 23, summary.OpenTasks)
	require.Len(t, summary.TopAccounts, 1)
	assert.Equal(t, "Acme", summary.TopAccounts[0].Name)
	assert.NotEmpty(t, summary.DateLabel)

	// La vista interna agrega todas las cuentas.
	assert.Empty(t, repo.gotAccountID)

	// El rango es el mes en curso: del día 1 a hoy.
	now := time.Now()
	assert.Equal(t, 1, repo.gotStart.Day())
	assert.Equal(t, now.Month(), repo.gotStart.Month())
	assert.Equal(t, now.Day(), repo.gotEnd.Day())
}

func TestDashboard_GetSummary_ErrorDeRepositorio(t *testing.T) {
	repo := &fakeDashboardRepo{failBilling: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "facturación del mes")
}

func TestDashboard_GetClientSummary_FiltraPorCuenta(t *testing.T) {
	repo := &fakeDashboardRepo{
		billed:   decimal.RequireFromString("840"),
		workload: repository.WorkloadResult{ActiveProjects: 2, OpenTasks: 4},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetClientSummary(context.Background(), "cuenta-7")
	require.NoError(t, err)

	assert.Equal(t, "cuenta-7", repo.gotAccountID, "la consulta debe limitarse a la cuenta dada")
	assert.Equal(t, 2, summary.ActiveProjects)
	assert.Equal(t, 4, summary.OpenTasks)
	assert.True(t, summary.MonthBilled.Equal(decimal.RequireFromString("840")))
}

func TestDashboard_GetVendorSummary(t *testing.T) {
	repo := &fakeDashboardRepo{openTasks: 6, doneTasks: 11}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetVendorSummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 6, summary.OpenTasks)
	assert.Equal(t, 11, summary.DoneTasks)
}
