// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros   │  Fecha + total de activos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN por categoría: nombre (N) + costo de mantenimiento  │
//	│  TABLA: ID | Nombre | Serie | Marca | Estado | Ubicación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: activos / costo de mantenimiento                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

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

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/report"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, rep *dto.InventoryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(rep.Groups) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Nenhum ativo encontrado para os filtros informados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	}

	// Una sección por categoría
	for _, grp := range rep.Groups {
		m.AddRows(sectionRow(grp))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(grp.Items)...)
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y filtros (izq), fecha y total (der).
func headerRow(rep *dto.InventoryReportDTO) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtersLabel(rep), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d ativos", rep.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
		),
	)
}

// sectionRow: encabezado de categoría con conteo y costo acumulado.
func sectionRow(grp dto.InventoryReportGroup) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(fmt.Sprintf("%s (%d)", grp.Category, grp.Count), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
		col.New(4).Add(text.New("Manutenção: "+formatMoney(grp.MaintenanceCost), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 4,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla de activos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("ID", 1, align.Center),
		h("Nome", 3, align.Left),
		h("Nº Série", 2, align.Left),
		h("Marca", 2, align.Left),
		h("Status", 2, align.Left),
		h("Localização", 2, align.Left),
	)
}

// tableDetailRows: una fila por activo.
func tableDetailRows(items []dto.AssetResponse) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(items))
	for _, a := range items {
		result = append(result, row.New(6).Add(
			cell(strconv.FormatInt(a.ID, 10), 1, align.Center),
			cell(a.Name, 3, align.Left),
			cell(a.SerialNumber, 2, align.Left),
			cell(nonEmpty(a.Brand, "—"), 2, align.Left),
			cell(a.StatusLabel, 2, align.Left),
			cell(nonEmpty(a.Location, "—"), 2, align.Left),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(rep *dto.InventoryReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(14).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label("Total de ativos:"),
			text.New("Custo de manutenção:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			value(strconv.Itoa(rep.Total), 0),
			value(formatMoney(rep.MaintenanceCost), 6),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func filtersLabel(rep *dto.InventoryReportDTO) string {
	parts := make([]string, 0, 3)
	if rep.Search != "" {
		parts = append(parts, "Busca: "+rep.Search)
	}
	if rep.Category != "" && !strings.EqualFold(rep.Category, "all") {
		parts = append(parts, "Categoria: "+rep.Category)
	}
	if rep.Status != "" && !strings.EqualFold(rep.Status, "all") {
		parts = append(parts, "Status: "+entity.AssetStatus(rep.Status).Label())
	}
	if len(parts) == 0 {
		return "Todos os ativos"
	}
	return strings.Join(parts, "   |   ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney R$ con separador de miles "." y decimales ",". Ej: 1234.5 → "R$ 1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := "R$ " + string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
