// Package billing contiene los cálculos fiscales puros de facturación:
// derivación de IVA, totales de renglones y la huella determinista del
// documento. Sin I/O y sin dependencias de infraestructura.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// Amounts montos derivados de una base imponible y una tarifa de IVA.
type Amounts struct {
	Net       decimal.Decimal
	VATRate   decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineAmount calcula el importe de un renglón: cantidad × precio unitario,
// redondeado a 2 decimales (half-up, el redondeo comercial habitual).
func LineAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// ComputeAmounts deriva IVA y total desde la base neta y la tarifa en
// porcentaje (ej. 20 → 20%). La tarifa negativa o la base negativa son
// entradas inválidas: una factura de abono se modela con estado void +
// reemisión, no con montos negativos.
func ComputeAmounts(net, vatRate decimal.Decimal) (Amounts, error) {
	if net.IsNegative() || vatRate.IsNegative() {
		return Amounts{}, domain.ErrInvalidInput
	}
	net = net.Round(2)
	vat := net.Mul(vatRate).Div(decimal.NewFromInt(100)).Round(2)
	return Amounts{
		Net:       net,
		VATRate:   vatRate,
		VATAmount: vat,
		Total:     net.Add(vat).Round(2),
	}, nil
}

// SumLines suma los importes de los renglones (ya redondeados) para obtener
// la base neta. Renglones con cantidad o precio negativo invalidan la suma.
func SumLines(lines []entity.InvoiceLine) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range lines {
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		total = total.Add(LineAmount(l.Quantity, l.UnitPrice))
	}
	return total, nil
}
