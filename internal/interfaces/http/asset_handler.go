package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
)

// AssetHandler maneja las peticiones HTTP del catálogo de activos.
type AssetHandler struct {
	uc            *usecase.AssetUseCase
	maxImageBytes int64
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase, maxImageBytes int64) *AssetHandler {
	return &AssetHandler{uc: uc, maxImageBytes: maxImageBytes}
}

// List godoc
// @Summary      Listar activos (filtro y agrupación sin sesión)
// @Tags         assets
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre, serie o categoría"
// @Param        category  query  string  false  "Categoría exacta o all"
// @Param        status    query  string  false  "Estado exacto o all"
// @Param        group     query  bool    false  "Agrupar por categoría"
// @Success      200  {object}  dto.CatalogViewResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), queryCriteria(c), c.QueryBool("group", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar activo
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.RegisterAssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Produce      json
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar activo (edición completa)
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del activo"
// @Param        body  body  dto.ReplaceAssetRequest  true  "Registro completo"
// @Success      200   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Replace(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ReplaceAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Replace(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Cargar imagen del activo
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int   true  "ID del activo"
// @Param        image  formData  file  true  "Archivo de imagen"
// @Success      200    {object}  dto.AssetResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Failure      415    {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/image [post]
func (h *AssetHandler) UploadImage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo image requerido"})
	}
	if h.maxImageBytes > 0 && fh.Size > h.maxImageBytes {
		return writeError(c, domain.ErrImageTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.UploadImage(c.Context(), id, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetImage godoc
// @Summary      Descargar imagen del activo
// @Tags         assets
// @Produce      image/png
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/image [get]
func (h *AssetHandler) GetImage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	ct, data, err := h.uc.Image(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, ct)
	return c.Send(data)
}

// History godoc
// @Summary      Historial de un activo
// @Tags         assets
// @Produce      json
// @Param        id     path   int  true   "ID del activo"
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200    {object}  dto.MovementListResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/history [get]
func (h *AssetHandler) History(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.History(c.Context(), id, historyLimit(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecentHistory godoc
// @Summary      Línea de tiempo global de movimientos
// @Tags         assets
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200    {object}  dto.MovementListResponse
// @Router       /api/history [get]
func (h *AssetHandler) RecentHistory(c *fiber.Ctx) error {
	out, err := h.uc.RecentHistory(c.Context(), historyLimit(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func historyLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	return limit
}
