package report

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
)

// InventoryPDFGenerator genera la representación PDF del reporte de inventario.
// Implementado en infrastructure/pdf con Maroto.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *dto.InventoryReportDTO) ([]byte, error)
}
