// Package report genera el reporte de inventario: la misma tubería filtro → agrupación
// del catálogo, con una sección por categoría y el costo de mantenimiento acumulado.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

const defaultTitle = "Relatório de Inventário"

// ReportUseCase construye el reporte de inventario y su PDF.
type ReportUseCase struct {
	assets      repository.AssetRepository
	maintenance repository.MaintenanceRepository
	generator   InventoryPDFGenerator
	title       string
	log         zerolog.Logger
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. title vacío usa el título por defecto.
func NewReportUseCase(
	assets repository.AssetRepository,
	maintenance repository.MaintenanceRepository,
	generator InventoryPDFGenerator,
	title string,
	log zerolog.Logger,
) *ReportUseCase {
	if title == "" {
		title = defaultTitle
	}
	return &ReportUseCase{
		assets:      assets,
		maintenance: maintenance,
		generator:   generator,
		title:       title,
		log:         log.With().Str("component", "reports").Logger(),
		now:         time.Now,
	}
}

// Build filtra el catálogo con c y agrupa el resultado por categoría.
// Un resultado vacío no es error: el reporte sale sin secciones.
func (uc *ReportUseCase) Build(ctx context.Context, c domcatalog.Criteria) (*dto.InventoryReportDTO, error) {
	records, err := uc.assets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: activos: %w", err)
	}
	tickets, err := uc.maintenance.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: mantenimientos: %w", err)
	}

	costByAsset := make(map[int64]decimal.Decimal)
	for _, t := range tickets {
		if t.Cost == nil {
			continue
		}
		costByAsset[t.AssetID] = costByAsset[t.AssetID].Add(*t.Cost)
	}

	filtered := domcatalog.Filter(records, c)
	display := domcatalog.Present(filtered, true)

	out := &dto.InventoryReportDTO{
		Title:           uc.title,
		GeneratedAt:     uc.now(),
		Search:          c.Search,
		Category:        c.Category,
		Status:          c.Status,
		Total:           len(filtered),
		MaintenanceCost: decimal.Zero,
		Groups:          make([]dto.InventoryReportGroup, 0, len(display.Groups)),
	}
	for _, g := range display.Groups {
		section := dto.InventoryReportGroup{
			Category:        string(g.Category),
			Count:           g.Count,
			MaintenanceCost: decimal.Zero,
			Items:           dto.NewAssetResponses(g.Assets),
		}
		for _, a := range g.Assets {
			section.MaintenanceCost = section.MaintenanceCost.Add(costByAsset[a.ID])
		}
		out.MaintenanceCost = out.MaintenanceCost.Add(section.MaintenanceCost)
		out.Groups = append(out.Groups, section)
	}
	return out, nil
}

// PDF construye el reporte y lo renderiza. Devuelve los bytes y el nombre sugerido del archivo.
func (uc *ReportUseCase) PDF(ctx context.Context, c domcatalog.Criteria) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.Build(ctx, c)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInventoryPDF(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("inventario-%s.pdf", rep.GeneratedAt.Format("20060102-1504"))
	uc.log.Info().Int("assets", rep.Total).Int("sections", len(rep.Groups)).Int("bytes", len(pdfBytes)).Msg("reporte generado")
	return pdfBytes, filename, nil
}
