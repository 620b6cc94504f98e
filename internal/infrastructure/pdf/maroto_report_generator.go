// Package pdf implementa los reportes PDF descargables de productos y
// usuarios usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por registro activo                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de registros                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/restobar-app/restobar-api/internal/application/ports"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ProductsReport genera el reporte de productos y devuelve sus bytes.
func (g *MarotoReportGenerator) ProductsReport(_ context.Context, products []*entity.Product) ([]byte, error) {
	m := newDocument("Reporte de Productos")

	m.AddRows(headerRow("Reporte de Productos"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		header("Nombre", 3, align.Left),
		header("Descripción", 4, align.Left),
		header("Categoría", 2, align.Center),
		header("Precio", 2, align.Right),
		header("Stock", 1, align.Right),
	))
	for _, p := range products {
		m.AddRows(row.New(6).Add(
			cell(p.Name, 3, align.Left),
			cell(p.Description, 4, align.Left),
			cell(categoryLabel(p.Category), 2, align.Center),
			cell("S/ "+p.Price.StringFixed(2), 2, align.Right),
			cell(fmt.Sprintf("%d", p.Stock), 1, align.Right),
		))
	}

	m.AddRows(footerRow(len(products)))
	return generate(m)
}

// UsersReport genera el reporte de usuarios y devuelve sus bytes.
func (g *MarotoReportGenerator) UsersReport(_ context.Context, users []*entity.User) ([]byte, error) {
	m := newDocument("Reporte de Usuarios")

	m.AddRows(headerRow("Reporte de Usuarios"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		header("Nombre", 3, align.Left),
		header("Documento", 3, align.Left),
		header("Celular", 2, align.Center),
		header("Correo", 3, align.Left),
		header("Rol", 1, align.Center),
	))
	for _, u := range users {
		m.AddRows(row.New(6).Add(
			cell(u.Name+" "+u.LastName, 3, align.Left),
			cell(u.DocumentType+" "+u.DocumentNumber, 3, align.Left),
			cell(u.Cellphone, 2, align.Center),
			cell(u.Email, 3, align.Left),
			cell(u.Role, 1, align.Center),
		))
	}

	m.AddRows(footerRow(len(users)))
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(cols ...core.Col) core.Row {
	return row.New(8).Add(cols...)
}

func header(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// footerRow: total de registros incluidos en el reporte.
func footerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 4, Color: colorGray,
			}),
		),
	)
}

func categoryLabel(category string) string {
	switch category {
	case entity.CategoryDish:
		return "Plato"
	case entity.CategoryBeverage:
		return "Bebida"
	default:
		return category
	}
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
