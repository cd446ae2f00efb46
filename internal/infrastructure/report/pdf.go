// Package report implementa los renderizadores del catálogo exportable.
//
// Layout del PDF (A4):
//
//	┌─────────────────────────────────────────────┐
//	│  Catálogo            │  fecha + n.º productos │
//	│  ─────────────────────────────────────────  │
//	│  CATEGORÍA                                  │
//	│  SKU | Nombre | Precio | Cant. | Stock      │
//	│  ...                                        │
//	└─────────────────────────────────────────────┘
package report

import (
	"context"
	"fmt"
	"strconv"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ catalog.PDFRenderer = (*PDFRenderer)(nil)

// PDFRenderer genera el catálogo en PDF con Maroto v2.
type PDFRenderer struct {
	title string
}

// NewPDFRenderer construye el generador; title aparece en la cabecera y en los metadatos.
func NewPDFRenderer(title string) *PDFRenderer {
	if title == "" {
		title = "Catalog"
	}
	return &PDFRenderer{title: title}
}

// RenderPDF genera el PDF y devuelve sus bytes.
func (g *PDFRenderer) RenderPDF(_ context.Context, snap *catalog.Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, sec := range snap.Sections {
		m.AddRows(sectionTitleRow(sec))
		m.AddRows(tableHeaderRow())
		if len(sec.Products) == 0 {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New("(sin productos)", props.Text{Size: 8, Color: colorGray, Top: 1}),
			)))
		}
		for _, p := range sec.Products {
			m.AddRows(productRow(p))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *PDFRenderer) headerRow(snap *catalog.Snapshot) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(5).Add(
			text.New(snap.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(strconv.Itoa(snap.ProductCount())+" products", props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(sec catalog.Section) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(strings.ToUpper(sec.CategoryName), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: a})
	}
	return row.New(6).Add(
		col.New(2).Add(h("SKU", align.Left)),
		col.New(4).Add(h("Name", align.Left)),
		col.New(2).Add(h("Price", align.Right)),
		col.New(2).Add(h("Qty", align.Right)),
		col.New(2).Add(h("Stock", align.Center)),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Align: a})
	}
	stock := "no"
	if p.InStock {
		stock = "yes"
	}
	return row.New(5).Add(
		col.New(2).Add(cell(p.SKU, align.Left)),
		col.New(4).Add(cell(p.Name, align.Left)),
		col.New(2).Add(cell(formatAmount(p.Price)+" "+p.Currency, align.Right)),
		col.New(2).Add(cell(decimal.NewFromFloat(p.Quantity).String(), align.Right)),
		col.New(2).Add(cell(stock, align.Center)),
	)
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
