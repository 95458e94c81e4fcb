package billing

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// FingerprintParams datos que entran en la huella de la factura, en orden
// estricto. La huella identifica el documento fiscal de forma determinista:
// cualquier cambio en número, fechas o montos produce un hash distinto.
type FingerprintParams struct {
	Number      string          // prefijo + número, sin espacios
	Date        string          // fecha de emisión YYYY-MM-DD
	Net         decimal.Decimal // base imponible
	VATAmount   decimal.Decimal // IVA derivado
	Total       decimal.Decimal // total a pagar
	IssuerTaxID string          // identificación fiscal del emisor (solo dígitos)
	ClientTaxID string          // identificación fiscal del cliente (solo dígitos)
	Currency    string          // ISO 4217
}

var spacesRe = regexp.MustCompile(`\s+`)

// Fingerprint calcula el hash SHA-384 hexadecimal de la factura.
// Cadena (sin separadores): Number + Date + Net + VATAmount + Total +
// IssuerTaxID + ClientTaxID + Currency. Montos con punto decimal y dos
// decimales fijos, sin separador de miles (ej: 1500.00).
func Fingerprint(p *FingerprintParams) (string, error) {
	if p == nil {
		return "", fmt.Errorf("billing: FingerprintParams es obligatorio")
	}
	number := spacesRe.ReplaceAllString(strings.TrimSpace(p.Number), "")
	if number == "" {
		return "", fmt.Errorf("billing: Number es obligatorio")
	}
	if p.Date == "" {
		return "", fmt.Errorf("billing: Date es obligatoria (YYYY-MM-DD)")
	}
	issuer := onlyDigits(p.IssuerTaxID)
	client := onlyDigits(p.ClientTaxID)
	if issuer == "" {
		return "", fmt.Errorf("billing: IssuerTaxID es obligatorio")
	}
	if client == "" {
		return "", fmt.Errorf("billing: ClientTaxID es obligatorio")
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "EUR"
	}

	cadena := number +
		p.Date +
		formatAmount(p.Net) +
		formatAmount(p.VATAmount) +
		formatAmount(p.Total) +
		issuer +
		client +
		currency

	sum := sha512.Sum384([]byte(cadena))
	return hex.EncodeToString(sum[:]), nil
}

// formatAmount dos decimales fijos con punto, sin separador de miles.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
