// Package ubl exporta la factura como documento UBL 2.1 Invoice para
// intercambio con sistemas contables externos, junto con el digest del XML
// canonicalizado (C14N + SHA-256) que permite detectar alteraciones.
package ubl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// Namespaces oficiales UBL 2.1.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

var _ appbilling.UBLExporter = (*Exporter)(nil)

// Exporter construye el XML UBL 2.1 de la factura con etree.
type Exporter struct{}

// NewExporter crea el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Build genera el []byte del documento Invoice según UBL 2.1.
func (e *Exporter) Build(invoice *entity.Invoice, issuer appbilling.Issuer, account *entity.Account, lines []entity.InvoiceLine) ([]byte, error) {
	if invoice == nil || account == nil {
		return nil, fmt.Errorf("ubl: faltan invoice o account")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCac)
	root.CreateAttr("xmlns:cbc", nsCbc)

	invoiceID := invoice.Prefix + invoice.Number
	currency := invoice.Currency

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", invoiceID)
	if invoice.Fingerprint != "" {
		// cbc:UUID lleva la huella SHA-384 del documento.
		cbc(root, "UUID", invoice.Fingerprint)
	}
	cbc(root, "IssueDate", invoice.Date.Format("2006-01-02"))
	cbc(root, "DueDate", invoice.DueDate.Format("2006-01-02"))
	cbc(root, "InvoiceTypeCode", "380") // factura comercial
	cbc(root, "DocumentCurrencyCode", currency)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(lines)))

	writeParty(root, "cac:AccountingSupplierParty", issuer.Name, issuer.TaxID, issuer.Address, issuer.Email)
	writeParty(root, "cac:AccountingCustomerParty", account.Name, account.TaxID, account.Address, account.Email)

	// cac:TaxTotal con un único subtotal al tipo de IVA de la factura.
	taxTotal := root.CreateElement("cac:TaxTotal")
	cbcAmount(taxTotal, "TaxAmount", invoice.VATAmount.StringFixed(2), currency)
	sub := taxTotal.CreateElement("cac:TaxSubtotal")
	cbcAmount(sub, "TaxableAmount", invoice.Net.StringFixed(2), currency)
	cbcAmount(sub, "TaxAmount", invoice.VATAmount.StringFixed(2), currency)
	cat := sub.CreateElement("cac:TaxCategory")
	cbc(cat, "Percent", invoice.VATRate.StringFixed(2))
	scheme := cat.CreateElement("cac:TaxScheme")
	cbc(scheme, "ID", "VAT")

	// cac:LegalMonetaryTotal
	monetary := root.CreateElement("cac:LegalMonetaryTotal")
	cbcAmount(monetary, "LineExtensionAmount", invoice.Net.StringFixed(2), currency)
	cbcAmount(monetary, "TaxExclusiveAmount", invoice.Net.StringFixed(2), currency)
	cbcAmount(monetary, "TaxInclusiveAmount", invoice.Total.StringFixed(2), currency)
	cbcAmount(monetary, "PayableAmount", invoice.Total.StringFixed(2), currency)

	// cac:InvoiceLine por renglón
	for i, l := range lines {
		il := root.CreateElement("cac:InvoiceLine")
		cbc(il, "ID", strconv.Itoa(i+1))
		qty := il.CreateElement("cbc:InvoicedQuantity")
		qty.SetText(l.Quantity.String())
		cbcAmount(il, "LineExtensionAmount", l.Amount.StringFixed(2), currency)
		item := il.CreateElement("cac:Item")
		cbc(item, "Description", l.Description)
		price := il.CreateElement("cac:Price")
		cbcAmount(price, "PriceAmount", l.UnitPrice.StringFixed(2), currency)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar documento: %w", err)
	}
	return out, nil
}

// CanonicalDigest canonicaliza el XML (C14N) y devuelve el SHA-256 en hex.
func (e *Exporter) CanonicalDigest(xmlBytes []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("ubl: canonicalizar XML: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// cbc añade un hijo cbc:<local> con texto.
func cbc(parent *etree.Element, local, value string) {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
}

// cbcAmount añade un hijo cbc:<local> con atributo currencyID.
func cbcAmount(parent *etree.Element, local, value, currency string) {
	el := parent.CreateElement("cbc:" + local)
	el.CreateAttr("currencyID", currency)
	el.SetText(value)
}

// writeParty añade un bloque de parte (emisor o cliente) con nombre, ID
// fiscal y contacto.
func writeParty(root *etree.Element, wrapper, name, taxID, address, email string) {
	w := root.CreateElement(wrapper)
	party := w.CreateElement("cac:Party")

	partyName := party.CreateElement("cac:PartyName")
	cbc(partyName, "Name", name)

	if taxID != "" {
		taxScheme := party.CreateElement("cac:PartyTaxScheme")
		cbc(taxScheme, "CompanyID", taxID)
		ts := taxScheme.CreateElement("cac:TaxScheme")
		cbc(ts, "ID", "VAT")
	}
	if address != "" {
		addr := party.CreateElement("cac:PostalAddress")
		addrLine := addr.CreateElement("cac:AddressLine")
		cbc(addrLine, "Line", address)
	}
	if email != "" {
		contact := party.CreateElement("cac:Contact")
		cbc(contact, "ElectronicMail", email)
	}
}
