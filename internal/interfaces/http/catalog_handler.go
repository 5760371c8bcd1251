package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/Activos-api/internal/application/catalog"
)

// CatalogHandler expone la página de catálogo como sesiones: cada sesión es un
// controlador con su propia lista, criterios y modo de agrupación.
type CatalogHandler struct {
	sessions *appcatalog.SessionManager
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(sessions *appcatalog.SessionManager) *CatalogHandler {
	return &CatalogHandler{sessions: sessions}
}

// Open godoc
// @Summary      Abrir sesión de catálogo
// @Tags         catalog
// @Produce      json
// @Success      201  {object}  dto.CatalogViewResponse
// @Router       /api/catalog/sessions [post]
func (h *CatalogHandler) Open(c *fiber.Ctx) error {
	id, v, cats, err := h.sessions.Open(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appcatalog.NewViewResponse(id, v, cats))
}

// Get godoc
// @Summary      Vista actual de la sesión
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CatalogViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return h.do(c, func(ctrl *appcatalog.Controller) appcatalog.View { return ctrl.View() })
}

// SetCriteria godoc
// @Summary      Cambiar búsqueda, categoría y/o estado
// @Description  Las claves ausentes conservan su valor. Valores que no son texto se toman como "".
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  catalog.Criteria  true  "Criterios"
// @Success      200   {object}  dto.CatalogViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id}/criteria [put]
func (h *CatalogHandler) SetCriteria(c *fiber.Ctx) error {
	patch, err := parseCriteriaPatch(c.Body())
	if err != nil {
		return invalidBody(c)
	}
	return h.do(c, func(ctrl *appcatalog.Controller) appcatalog.View {
		next := patch.Apply(ctrl.View().Criteria)
		return ctrl.ApplyCriteria(next.Search, next.Category, next.Status)
	})
}

// ToggleGroup godoc
// @Summary      Alternar agrupación por categoría
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CatalogViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id}/group [post]
func (h *CatalogHandler) ToggleGroup(c *fiber.Ctx) error {
	return h.do(c, func(ctrl *appcatalog.Controller) appcatalog.View { return ctrl.OnGroupToggle() })
}

// Refresh godoc
// @Summary      Releer el catálogo y recalcular la sesión
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CatalogViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id}/refresh [post]
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	id := c.Params("id")
	v, cats, err := h.sessions.Refresh(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appcatalog.NewViewResponse(id, v, cats))
}

// Register godoc
// @Summary      Acción "Cadastrar Ativo"
// @Description  Devuelve la vista con navigate=cadastro; la API no navega.
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CatalogViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id}/register [post]
func (h *CatalogHandler) Register(c *fiber.Ctx) error {
	return h.do(c, func(ctrl *appcatalog.Controller) appcatalog.View { return ctrl.OnRegisterRequested() })
}

// Close godoc
// @Summary      Cerrar sesión de catálogo
// @Tags         catalog
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/sessions/{id} [delete]
func (h *CatalogHandler) Close(c *fiber.Ctx) error {
	if err := h.sessions.Close(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) do(c *fiber.Ctx, fn func(*appcatalog.Controller) appcatalog.View) error {
	id := c.Params("id")
	v, cats, err := h.sessions.Do(id, fn)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appcatalog.NewViewResponse(id, v, cats))
}
