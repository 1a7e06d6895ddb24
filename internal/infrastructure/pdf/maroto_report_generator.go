// Package pdf genera el reporte de ventas en PDF para el API de
// administración: agregado de ventas arriba y los últimos pedidos en tabla.
package pdf

import (
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

	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.OrdersReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.OrdersReportGenerator usando
// Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOrdersReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateOrdersReport(stats repository.Stats, orders []entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, o := range orders {
		m.AddRows(orderRow(o))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow título y agregado de ventas.
func headerRow(stats repository.Stats) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Sales report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Orders: %d", stats.TotalOrders), props.Text{
				Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Total sales: %s$", stats.TotalSales.String()), props.Text{
				Size: 10, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(8).Add(
		col.New(1).Add(text.New("#", header)),
		col.New(3).Add(text.New("Buyer", header)),
		col.New(2).Add(text.New("Product", header)),
		col.New(1).Add(text.New("Size", header)),
		col.New(3).Add(text.New("Address", header)),
		col.New(2).Add(text.New("Status", header)),
	)
}

func orderRow(o entity.Order) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", o.ID), cell)),
		col.New(3).Add(text.New("@"+o.Username, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", o.ProductID), cell)),
		col.New(1).Add(text.New(o.Size, cell)),
		col.New(3).Add(text.New(o.Address, cell)),
		col.New(2).Add(text.New(o.Status, cell)),
	)
}
