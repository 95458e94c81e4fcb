package ubl

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

func sampleInvoice() (*entity.Invoice, appbilling.Issuer, *entity.Account, []entity.InvoiceLine) {
	invoice := &entity.Invoice{
		ID:          "inv-1",
		AccountID:   "acc-1",
		Prefix:      "FA-",
		Number:      "0042",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		Status:      entity.InvoiceStatusIssued,
		Currency:    "EUR",
		Net:         decimal.RequireFromString("12500.00"),
		VATRate:     decimal.RequireFromString("20"),
		VATAmount:   decimal.RequireFromString("2500.00"),
		Total:       decimal.RequireFromString("15000.00"),
		Fingerprint: "abc123",
	}
	issuer := appbilling.Issuer{Name: "Agencia Demo SL", TaxID: "B90240012", Address: "Calle Mayor 1", Email: "hola@agencia.test"}
	account := &entity.Account{ID: "acc-1", Name: "Cliente SA", Kind: entity.AccountKindClient, TaxID: "A51320045"}
	lines := []entity.InvoiceLine{
		{Description: "Diseño de campaña", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("12500.00"), Amount: decimal.RequireFromString("12500.00"), Position: 1},
	}
	return invoice, issuer, account, lines
}

func TestExporter_Build_DocumentoBienFormado(t *testing.T) {
	exporter := NewExporter()
	invoice, issuer, account, lines := sampleInvoice()

	out, err := exporter.Build(invoice, issuer, account, lines)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "FA-0042", root.FindElement("./cbc:ID").Text())
	assert.Equal(t, "abc123", root.FindElement("./cbc:UUID").Text())
	assert.Equal(t, "2024-03-15", root.FindElement("./cbc:IssueDate").Text())
	assert.Equal(t, "EUR", root.FindElement("./cbc:DocumentCurrencyCode").Text())
	assert.Equal(t, "15000.00", root.FindElement("./cac:LegalMonetaryTotal/cbc:PayableAmount").Text())
	assert.Len(t, root.FindElements("./cac:InvoiceLine"), 1)
}

func TestExporter_Build_SinCuentaFalla(t *testing.T) {
	exporter := NewExporter()
	invoice, issuer, _, lines := sampleInvoice()

	_, err := exporter.Build(invoice, issuer, nil, lines)
	assert.Error(t, err)
}

func TestExporter_CanonicalDigest_Determinista(t *testing.T) {
	exporter := NewExporter()
	invoice, issuer, account, lines := sampleInvoice()

	out, err := exporter.Build(invoice, issuer, account, lines)
	require.NoError(t, err)

	first, err := exporter.CanonicalDigest(out)
	require.NoError(t, err)
	second, err := exporter.CanonicalDigest(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // SHA-256 en hex

	// Un documento distinto produce un digest distinto.
	invoice.Number = "0043"
	other, err := exporter.Build(invoice, issuer, account, lines)
	require.NoError(t, err)
	otherDigest, err := exporter.CanonicalDigest(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherDigest)
}
