package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/report"
)

// ReportHandler reporte de inventario en JSON y PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Reporte de inventario agrupado por categoría
// @Tags         reports
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre, serie o categoría"
// @Param        category  query  string  false  "Categoría exacta o all"
// @Param        status    query  string  false  "Estado exacto o all"
// @Success      200  {object}  dto.InventoryReportDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.Context(), queryCriteria(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        search    query  string  false  "Texto en nombre, serie o categoría"
// @Param        category  query  string  false  "Categoría exacta o all"
// @Param        status    query  string  false  "Estado exacto o all"
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.PDF(c.Context(), queryCriteria(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
