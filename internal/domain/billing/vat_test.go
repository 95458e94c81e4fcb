package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

func TestComputeAmounts_Vectores(t *testing.T) {
	casos := []struct {
		nombre  string
		net     string
		rate    string
		wantVAT string
		wantTot string
	}{
		{"tarifa general 20%", "12500.00", "20", "2500.00", "15000.00"},
		{"tarifa reducida 5.5%", "1000.00", "5.5", "55.00", "1055.00"},
		{"exento", "990.00", "0", "0.00", "990.00"},
		{"redondeo half-up", "33.33", "20", "6.67", "40.00"},
		{"centavos", "0.01", "19", "0.00", "0.01"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			net, _ := decimal.NewFromString(c.net)
			rate, _ := decimal.NewFromString(c.rate)

			got, err := billing.ComputeAmounts(net, rate)
			require.NoError(t, err)
			assert.Equal(t, c.wantVAT, got.VATAmount.StringFixed(2), "IVA")
			assert.Equal(t, c.wantTot, got.Total.StringFixed(2), "total")
			assert.True(t, got.Net.Add(got.VATAmount).Equal(got.Total),
				"neto + IVA debe igualar el total")
		})
	}
}

func TestComputeAmounts_RechazaNegativos(t *testing.T) {
	_, err := billing.ComputeAmounts(decimal.NewFromInt(-1), decimal.NewFromInt(20))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = billing.ComputeAmounts(decimal.NewFromInt(100), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLineAmount_RedondeaADosDecimales(t *testing.T) {
	qty, _ := decimal.NewFromString("3")
	price, _ := decimal.NewFromString("33.333")
	assert.Equal(t, "100.00", billing.LineAmount(qty, price).StringFixed(2))
}

func TestSumLines_SumaImportesRedondeados(t *testing.T) {
	lines := []entity.InvoiceLine{
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(450.50)},
		{Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(120)},
	}
	total, err := billing.SumLines(lines)
	require.NoError(t, err)
	assert.Equal(t, "2101.00", total.StringFixed(2))
}

func TestSumLines_RechazaRenglonesNegativos(t *testing.T) {
	lines := []entity.InvoiceLine{
		{Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(10)},
	}
	_, err := billing.SumLines(lines)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
