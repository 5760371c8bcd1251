package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	appcatalog "github.com/jhoicas/Activos-api/internal/application/catalog"
	"github.com/jhoicas/Activos-api/internal/application/report"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC       *usecase.AssetUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *report.ReportUseCase
	Sessions      *appcatalog.SessionManager
	MaxImageBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Assets
	assets := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.MaxImageBytes)
	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Replace)
	assets.Post("/:id/image", assetHandler.UploadImage)
	assets.Get("/:id/image", assetHandler.GetImage)
	assets.Get("/:id/history", assetHandler.History)
	api.Get("/history", assetHandler.RecentHistory)

	// Catalog sessions (página de catálogo)
	sessions := api.Group("/catalog/sessions")
	catalogHandler := NewCatalogHandler(deps.Sessions)
	sessions.Post("/", catalogHandler.Open)
	sessions.Get("/:id", catalogHandler.Get)
	sessions.Put("/:id/criteria", catalogHandler.SetCriteria)
	sessions.Post("/:id/group", catalogHandler.ToggleGroup)
	sessions.Post("/:id/refresh", catalogHandler.Refresh)
	sessions.Post("/:id/register", catalogHandler.Register)
	sessions.Delete("/:id", catalogHandler.Close)

	// Maintenance
	maintenance := api.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Put("/:id/status", maintenanceHandler.UpdateStatus)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
}
