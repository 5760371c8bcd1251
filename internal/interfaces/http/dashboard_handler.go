package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_assets, by_status[5], by_category,
// open_maintenance, recent_activity[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
