package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/billing"
)

// ──────────────────────────────────────────────────────────────────────────────
// La huella es el candado del documento fiscal: si alguien toca la cadena de
// concatenación, el formato de montos o el algoritmo, este vector falla.
//
// Cadena = "FA-2024-0042" + "2024-03-15" + "12500.00" + "2500.00" +
//          "15000.00" + "902400123" + "513200456" + "EUR"
// SHA-384 calculado externamente sobre esa cadena exacta.
// ──────────────────────────────────────────────────────────────────────────────

const fingerprintExpected = "633d47db61c14016bd3c44017d949ecb814b9f1b3e1a2db4bf6e48809d9d40b2f588c306ed68e6ae95734054241eff41"

func vectorParams() *billing.FingerprintParams {
	return &billing.FingerprintParams{
		Number:      "FA-2024-0042",
		Date:        "2024-03-15",
		Net:         decimal.NewFromInt(12_500),
		VATAmount:   decimal.NewFromInt(2_500),
		Total:       decimal.NewFromInt(15_000),
		IssuerTaxID: "902400123",
		ClientTaxID: "513200456",
		Currency:    "EUR",
	}
}

func TestFingerprint_VectorExacto(t *testing.T) {
	got, err := billing.Fingerprint(vectorParams())
	require.NoError(t, err)
	assert.Equal(t, fingerprintExpected, got,
		"la huella debe coincidir exactamente con el vector SHA-384 de referencia")
}

// Determinismo: dos invocaciones con los mismos parámetros producen el mismo hash.
func TestFingerprint_Determinista(t *testing.T) {
	a, err := billing.Fingerprint(vectorParams())
	require.NoError(t, err)
	b, err := billing.Fingerprint(vectorParams())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Sensibilidad: cambiar cualquier campo fiscal cambia la huella.
func TestFingerprint_SensibleACambios(t *testing.T) {
	base, err := billing.Fingerprint(vectorParams())
	require.NoError(t, err)

	p := vectorParams()
	p.Total = decimal.NewFromInt(15_001)
	mutated, err := billing.Fingerprint(p)
	require.NoError(t, err)
	assert.NotEqual(t, base, mutated, "un total distinto debe producir otra huella")
}

// Normalización: espacios en el número y puntos en los NIF no alteran el hash.
func TestFingerprint_NormalizaEntradas(t *testing.T) {
	base, err := billing.Fingerprint(vectorParams())
	require.NoError(t, err)

	p := vectorParams()
	p.Number = "  FA-2024-0042 "
	p.IssuerTaxID = "902.400.123"
	p.ClientTaxID = "513 200 456"
	normalized, err := billing.Fingerprint(p)
	require.NoError(t, err)
	assert.Equal(t, base, normalized)
}

func TestFingerprint_CamposObligatorios(t *testing.T) {
	p := vectorParams()
	p.Number = "   "
	_, err := billing.Fingerprint(p)
	assert.Error(t, err, "número vacío debe rechazarse")

	p = vectorParams()
	p.IssuerTaxID = "sin-digitos"
	_, err = billing.Fingerprint(p)
	assert.Error(t, err, "identificación fiscal sin dígitos debe rechazarse")
}
