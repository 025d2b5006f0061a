package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
)

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// PDFExporter genera el extracto A4 del ledger con Maroto v2: una fila por cambio y su acumulado.
type PDFExporter struct {
	appName string
}

// NewPDFExporter construye el exportador; appName aparece como autor del documento.
func NewPDFExporter(appName string) *PDFExporter {
	return &PDFExporter{appName: appName}
}

// Export devuelve los bytes del PDF. Si digest no está vacío se imprime al pie junto con un QR.
func (e *PDFExporter) Export(st Statement, digest string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de inventario "+st.Relation.Key, true).
		WithAuthor(e.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(st.Changes) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range detailRows(st.Lines()) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow(st))

	if digest != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(digestRow(digest))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(st Statement) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("EXTRACTO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto: %s   |   Ubicación: %s", st.Relation.ProductName, st.Relation.LocationName), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(st.Relation.Key, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+st.GeneratedAt.UTC().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Instante (UTC)", 5, align.Left),
		h("Cambio neto", 3, align.Right),
		h("Acumulado", 3, align.Right),
	)
}

func detailRows(lines []Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		changeProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if l.NetChange.IsNegative() {
			changeProps.Color = colorNegative
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(l.Timestamp.Format(timestampLayout), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.NetChange.String(), changeProps)),
			col.New(3).Add(text.New(l.Cumulative.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func balanceRow(st Statement) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("SALDO FINAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(st.Balance().String(), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// digestRow: SHA-256 del XML canónico, en texto y en QR.
func digestRow(digest string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(digest, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Digest SHA-256 del XML canónico:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 6, Left: 3}),
			text.New(digest, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}
