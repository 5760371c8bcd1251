package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Activos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildMiddlewareApp monta RequestID + RequestLogger delante de dos rutas dummy.
func buildMiddlewareApp(out *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID(), apphttp.RequestLogger(zerolog.New(out).Level(zerolog.DebugLevel)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": apphttp.GetRequestID(c)})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"code": "NOT_FOUND"})
	})
	return app
}

// lastLogLine decodifica la última línea JSON escrita por el logger.
func lastLogLine(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestID_GeneraIdentificador(t *testing.T) {
	var out bytes.Buffer
	app := buildMiddlewareApp(&out)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	id := resp.Header.Get(apphttp.HeaderRequestID)
	assert.Len(t, id, 36, "uuid en formato canónico")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body["request_id"])
}

func TestRequestID_RespetaCabeceraDelCliente(t *testing.T) {
	var out bytes.Buffer
	app := buildMiddlewareApp(&out)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
	assert.Equal(t, "abc-123", lastLogLine(t, &out)["request_id"])
}

func TestRequestLogger_NivelSegunEstado(t *testing.T) {
	var out bytes.Buffer
	app := buildMiddlewareApp(&out)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	line := lastLogLine(t, &out)
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "/ok", line["path"])
	assert.EqualValues(t, 200, line["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	line = lastLogLine(t, &out)
	assert.Equal(t, "warn", line["level"])
	assert.EqualValues(t, 404, line["status"])
	assert.Equal(t, "GET", line["method"])
}
