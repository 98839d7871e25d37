// Package pdf implementa il report PDF dei movimenti finanziari.
//
// Layout della pagina A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ragione sociale + P.IVA  │  Titolo + periodo        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLA: Data | Descrizione | Tipo | IVA | Importo          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALI: Entrate / Uscite / SALDO NETTO                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

// ── Palette colori ────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var _ ports.MovementReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa MovementReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator costruisce il generatore.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera il PDF e restituisce i suoi byte.
func (g *MarotoReportGenerator) Generate(
	_ context.Context,
	company *entity.Company,
	movements []*entity.Movement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Report movimenti", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, movements))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generare il documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sezioni ───────────────────────────────────────────────────────────────────

// headerRow: ragione sociale + P.IVA (sx) e titolo + periodo (dx).
func headerRow(company *entity.Company, movements []*entity.Movement) core.Row {
	period := "—"
	if len(movements) > 0 {
		first := movements[len(movements)-1].Date
		last := movements[0].Date
		if first.After(last) {
			first, last = last, first
		}
		period = first.Format("02/01/2006") + " – " + last.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("P.IVA: "+company.VATNumber, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORT MOVIMENTI", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Periodo: "+period, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: intestazione della tabella movimenti.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Descrizione", 5, align.Left),
		h("Tipo", 1, align.Center),
		h("IVA", 2, align.Right),
		h("Importo", 2, align.Right),
	)
}

// tableRows: una riga per movimento. Le uscite in rosso con segno meno.
func tableRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		amountColor := colorPrimary
		amount := mv.Amount.StringFixed(2)
		tipo := "E"
		if mv.Type == entity.MovementTypeExpense {
			amountColor = colorRed
			amount = "-" + amount
			tipo = "U"
		}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mv.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				mv.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				tipo,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"€ "+mv.VATAmount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"€ "+amount,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}

// totalsRow: blocco dei totali allineato a destra.
func totalsRow(movements []*entity.Movement) core.Row {
	income, expense := decimal.Zero, decimal.Zero
	for _, mv := range movements {
		if mv.Type == entity.MovementTypeIncome {
			income = income.Add(mv.Amount)
		} else {
			expense = expense.Add(mv.Amount)
		}
	}
	net := income.Sub(expense)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Entrate:"),
			label("Uscite:"),
			grandLabel("SALDO NETTO:"),
		),
		col.New(3).Add(
			value("€ "+income.StringFixed(2)),
			value("€ "+expense.StringFixed(2)),
			grandValue("€ "+net.StringFixed(2)),
		),
		col.New(3),
	)
}
