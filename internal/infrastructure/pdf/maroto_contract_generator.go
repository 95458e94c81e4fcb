package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	appcontracts "github.com/jhondav/agencia-api/internal/application/contracts"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

var _ appcontracts.DocumentGenerator = (*MarotoContractGenerator)(nil)

// MarotoContractGenerator implementa contracts.DocumentGenerator usando Maroto v2.
type MarotoContractGenerator struct{}

// NewMarotoContractGenerator construye el generador.
func NewMarotoContractGenerator() *MarotoContractGenerator { return &MarotoContractGenerator{} }

// GenerateContractDocument genera el PDF del contrato y devuelve sus bytes.
func (g *MarotoContractGenerator) GenerateContractDocument(
	_ context.Context,
	contract *entity.Contract,
	issuer appbilling.Issuer,
	account *entity.Account,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contrato: "+contract.Title, true).
		WithAuthor(issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(contractHeaderRow(contract, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(issuer, account))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(row.New(7).Add(col.New(12).Add(
		text.New("ALCANCE DE LOS SERVICIOS", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	)))
	for _, r := range scopeRows(contract.Scope) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(contractAmountsRow(contract))
	m.AddRows(line.NewRow(4))
	m.AddRows(signatureRow(issuer, account))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// contractHeaderRow: título del contrato + vigencia.
func contractHeaderRow(contract *entity.Contract, issuer appbilling.Issuer) core.Row {
	vigencia := "Desde " + contract.StartDate.Format("02/01/2006")
	if contract.EndDate != nil {
		vigencia += " hasta " + contract.EndDate.Format("02/01/2006")
	} else {
		vigencia += " (duración indefinida)"
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New(issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("CONTRATO DE SERVICIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(contract.Title, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14,
			}),
		),
		col.New(5).Add(
			text.New(strings.ToUpper(contract.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(vigencia, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partiesRow: identificación de las partes.
func partiesRow(issuer appbilling.Issuer, account *entity.Account) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("EL PRESTADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(issuer.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New("ID fiscal: "+nonEmpty(issuer.TaxID, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("EL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(account.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New("ID fiscal: "+nonEmpty(account.TaxID, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// scopeRows: el alcance en párrafos, una fila por línea no vacía.
func scopeRows(scope string) []core.Row {
	var rows []core.Row
	for _, paragraph := range strings.Split(scope, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			rows = append(rows, row.New(2))
			continue
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(paragraph, props.Text{Size: 8.5, Top: 0.5}),
		)))
	}
	return rows
}

// contractAmountsRow: honorarios con IVA derivado.
func contractAmountsRow(contract *entity.Contract) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(6).Add(
			text.New("HONORARIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(3).Add(
			label("Base imponible:"),
			label(fmt.Sprintf("IVA (%s%%):", contract.VATRate.String())),
			label("Total:"),
		),
		col.New(3).Add(
			value(money(contract.Net.StringFixed(2), contract.Currency)),
			value(money(contract.VATAmount.StringFixed(2), contract.Currency)),
			value(money(contract.Total.StringFixed(2), contract.Currency)),
		),
	)
}

// signatureRow: bloque de firmas.
func signatureRow(issuer appbilling.Issuer, account *entity.Account) core.Row {
	sig := func(party string) []core.Component {
		return []core.Component{
			text.New("_____________________________", props.Text{Size: 9, Top: 8, Align: align.Center}),
			text.New(party, props.Text{Size: 8, Top: 14, Align: align.Center, Color: colorGray}),
		}
	}
	return row.New(22).Add(
		col.New(6).Add(sig("Por "+issuer.Name)...),
		col.New(6).Add(sig("Por "+account.Name)...),
	)
}
