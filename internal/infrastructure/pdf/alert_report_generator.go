// Package pdf implementa la generación del Reporte de Reposición: la
// representación imprimible del batch de alertas de stock bajo para el
// flujo de compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Reposición  │  Empresa + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días |    │
//	│         Proveedor                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de alertas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ alerts.ReportGenerator = (*AlertReportGenerator)(nil)

// AlertReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type AlertReportGenerator struct{}

// NewAlertReportGenerator construye el generador.
func NewAlertReportGenerator() *AlertReportGenerator { return &AlertReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *AlertReportGenerator) Generate(
	_ context.Context,
	companyID int64,
	batch *dto.AlertBatchDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reposición", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyID, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableAlertRows(batch.Alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(batch.TotalAlerts))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y empresa + fecha de generación (der).
func headerRow(companyID int64, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Posiciones bajo umbral con actividad de venta reciente", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Empresa: "+strconv.FormatInt(companyID, 10), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Center),
		h("Proveedor", 2, align.Left),
	)
}

// tableAlertRows: una fila por alerta, en el orden del batch.
func tableAlertRows(alertList []dto.AlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alertList))
	for _, a := range alertList {
		daysColor := colorGray
		if a.DaysUntilStockout <= 3 {
			daysColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.SKU, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(a.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(a.WarehouseName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(a.CurrentStock.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(a.Threshold.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(a.DaysUntilStockout, 10), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: daysColor,
			})),
			col.New(2).Add(text.New(a.Supplier.Name, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// footerRow: total de alertas del batch.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de alertas: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
