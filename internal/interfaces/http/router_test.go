package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	appcatalog "github.com/jhoicas/Activos-api/internal/application/catalog"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/report"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Activos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testMaxImage = 1024

// buildTestApp construye la API completa sobre repositorios en memoria con dos activos:
//  1. Notebook Dell (Computadores, em_uso)
//  2. Monitor LG (Monitores, livre)
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()
	assetsRepo := memory.NewAssetRepository()
	movements := memory.NewMovementRepository()
	tickets := memory.NewMaintenanceRepository()

	assetUC := usecase.NewAssetUseCase(assetsRepo, movements, assetsRepo, testMaxImage, log)
	_, _, err := assetUC.Import(context.Background(), []*entity.Asset{
		{ID: 1, Name: "Notebook Dell", Category: entity.CategoryComputers, SerialNumber: "SN000001", Brand: "Dell", Status: entity.StatusInUse, Location: "TI"},
		{ID: 2, Name: "Monitor LG", Category: entity.CategoryMonitors, SerialNumber: "SN000002", Brand: "LG", Status: entity.StatusFree, Location: "RH"},
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AssetUC:       assetUC,
		MaintenanceUC: usecase.NewMaintenanceUseCase(tickets, assetUC, log),
		DashboardUC:   appanalytics.NewDashboardUseCase(assetsRepo, tickets, movements),
		ReportUC:      report.NewReportUseCase(assetsRepo, tickets, infrapdf.NewMarotoReportGenerator(), "", log),
		Sessions:      appcatalog.NewSessionManager(assetsRepo, time.Minute, log),
		MaxImageBytes: testMaxImage,
	})
	return app
}

// do lanza una petición JSON y devuelve la respuesta.
func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Assets
// ──────────────────────────────────────────────────────────────────────────────

func TestAssets_ListFiltraPorQuery(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/assets?search=dell", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decode[dto.CatalogViewResponse](t, resp)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(1), v.Items[0].ID)

	resp = do(t, app, http.MethodGet, "/api/assets?group=true", nil)
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, "grouped", v.Layout)
	require.Len(t, v.Groups, 2)
	assert.Equal(t, "Computadores", v.Groups[0].Category)
	assert.Equal(t, 1, v.Groups[0].Count)
}

func TestAssets_RegistroYConflicto(t *testing.T) {
	app := buildTestApp(t)
	body := map[string]any{
		"name": "Cadeira Giratória", "category": "Cadeiras", "serial_number": "CAD-01", "location": "RH",
	}

	resp := do(t, app, http.MethodPost, "/api/assets", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.RegisterAssetResponse](t, resp)
	assert.Equal(t, int64(3), out.Asset.ID)
	assert.Equal(t, "livre", out.Asset.Status)
	assert.Equal(t, "catalogo", out.Navigate)

	resp = do(t, app, http.MethodPost, "/api/assets", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/assets", nil)
	v := decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, int64(3), v.Items[0].ID, "el registro nuevo aparece primero")
}

func TestAssets_RegistroInvalidoDevuelveMotivos(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/assets", map[string]any{"name": "X", "category": "Naves"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.NotEmpty(t, e.Fields)

	resp = do(t, app, http.MethodPost, "/api/assets", "{no-json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssets_GetReplaceEHistorial(t *testing.T) {
	app := buildTestApp(t)

	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/assets/99", nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodGet, "/api/assets/abc", nil).StatusCode)

	resp := do(t, app, http.MethodPut, "/api/assets/2", map[string]any{
		"name": "Monitor LG", "category": "Monitores", "serial_number": "SN000002",
		"status": "baixado", "location": "RH",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[dto.AssetResponse](t, resp)
	assert.Equal(t, "baixado", a.Status)

	resp = do(t, app, http.MethodGet, "/api/assets/2/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	h := decode[dto.MovementListResponse](t, resp)
	require.Len(t, h.Items, 1)
	assert.Equal(t, "status", h.Items[0].Kind)

	resp = do(t, app, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func uploadImage(t *testing.T, app *fiber.App, id, contentType string, data []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="foto.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/assets/"+id+"/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAssets_Imagen(t *testing.T) {
	app := buildTestApp(t)

	assert.Equal(t, http.StatusUnsupportedMediaType, uploadImage(t, app, "1", "text/plain", []byte("x")).StatusCode)
	assert.Equal(t, http.StatusRequestEntityTooLarge, uploadImage(t, app, "1", "image/png", make([]byte, testMaxImage+1)).StatusCode)

	resp := uploadImage(t, app, "1", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[dto.AssetResponse](t, resp)
	assert.Equal(t, "/api/assets/1/image", a.ImageURL)

	resp = do(t, app, http.MethodGet, "/api/assets/1/image", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "png-bytes", string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalog sessions
// ──────────────────────────────────────────────────────────────────────────────

func openSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/catalog/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decode[dto.CatalogViewResponse](t, resp)
	require.NotEmpty(t, v.SessionID)
	assert.Equal(t, 2, v.Shown)
	assert.Equal(t, []string{"Computadores", "Monitores"}, v.Categories)
	return v.SessionID
}

func TestCatalogSession_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	id := openSession(t, app)
	base := "/api/catalog/sessions/" + id

	resp := do(t, app, http.MethodPut, base+"/criteria", map[string]any{"category": "Monitores"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decode[dto.CatalogViewResponse](t, resp)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(2), v.Items[0].ID)

	resp = do(t, app, http.MethodPost, base+"/group", nil)
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.True(t, v.GroupBy)
	assert.Equal(t, "Monitores", v.Category, "la agrupación conserva los criterios")
	require.Len(t, v.Groups, 1)

	resp = do(t, app, http.MethodPut, base+"/criteria", map[string]any{"search": "inexistente", "category": "all"})
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, 0, v.Shown)
	require.NotNil(t, v.EmptyState)
	assert.Equal(t, "cadastro", v.EmptyState.Action)

	resp = do(t, app, http.MethodPost, base+"/register", nil)
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, "cadastro", v.Navigate)

	resp = do(t, app, http.MethodGet, base, nil)
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.Empty(t, v.Navigate, "la señal de navegación no persiste")

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, base, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, base, nil).StatusCode)
}

func TestCatalogSession_CriteriosMalFormadosSeVacian(t *testing.T) {
	app := buildTestApp(t)
	base := "/api/catalog/sessions/" + openSession(t, app)

	do(t, app, http.MethodPut, base+"/criteria", map[string]any{"search": "dell"})
	resp := do(t, app, http.MethodPut, base+"/criteria", `{"search": 42, "status": null}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, "", v.Search)
	assert.Equal(t, 2, v.Shown)

	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPut, base+"/criteria", "[1,2").StatusCode)

	// JSON válido que no es objeto: no cambia los criterios vigentes.
	do(t, app, http.MethodPut, base+"/criteria", map[string]any{"category": "Monitores"})
	for _, body := range []string{`"dell"`, `[1,2]`, `42`, `true`} {
		resp := do(t, app, http.MethodPut, base+"/criteria", body)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		v := decode[dto.CatalogViewResponse](t, resp)
		assert.Equal(t, "Monitores", v.Category, body)
		assert.Equal(t, 1, v.Shown, body)
	}
}

func TestCatalogSession_RefreshVeRegistrosNuevos(t *testing.T) {
	app := buildTestApp(t)
	base := "/api/catalog/sessions/" + openSession(t, app)

	do(t, app, http.MethodPost, "/api/assets", map[string]any{
		"name": "Switch", "category": "Rede", "serial_number": "SW-1", "location": "TI",
	})

	v := decode[dto.CatalogViewResponse](t, do(t, app, http.MethodGet, base, nil))
	assert.Equal(t, 2, v.Total, "la sesión trabaja sobre su instantánea")

	resp := do(t, app, http.MethodPost, base+"/refresh", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decode[dto.CatalogViewResponse](t, resp)
	assert.Equal(t, 3, v.Total)
	assert.Contains(t, v.Categories, "Rede")
}

// ──────────────────────────────────────────────────────────────────────────────
// Maintenance, dashboard, reports
// ──────────────────────────────────────────────────────────────────────────────

func TestMaintenance_CicloHTTP(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/maintenance", map[string]any{
		"asset_id": 2, "type": "preventiva", "scheduled_at": "2025-04-01T09:00:00Z",
		"responsible": "Equipe TI", "description": "Limpeza", "cost": "80.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	tk := decode[dto.MaintenanceResponse](t, resp)

	list := decode[dto.MaintenanceListResponse](t, do(t, app, http.MethodGet, "/api/maintenance?search=monitor", nil))
	assert.Equal(t, 1, list.Total)

	resp = do(t, app, http.MethodPut, "/api/maintenance/"+tk.ID+"/status", map[string]any{"status": "concluida"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/maintenance/"+tk.ID+"/status", map[string]any{"status": "em_andamento"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/maintenance", map[string]any{"asset_id": 99, "type": "preventiva",
		"scheduled_at": "2025-04-01T09:00:00Z", "responsible": "x", "description": "y"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard_Summary(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 2, s.TotalAssets)
	assert.Len(t, s.ByStatus, 5)
	assert.Equal(t, 50, s.ByStatus[0].Percentage)
}

func TestReports_JSONyPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/reports/inventory?category=Monitores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep := decode[dto.InventoryReportDTO](t, resp)
	assert.Equal(t, 1, rep.Total)
	require.Len(t, rep.Groups, 1)

	resp = do(t, app, http.MethodGet, "/api/reports/inventory.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
