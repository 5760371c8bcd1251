package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	appcatalog "github.com/jhoicas/Activos-api/internal/application/catalog"
	"github.com/jhoicas/Activos-api/internal/application/report"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Almacenamiento en memoria del proceso
	assetRepo := memory.NewAssetRepository()
	movementRepo := memory.NewMovementRepository()
	maintenanceRepo := memory.NewMaintenanceRepository()

	assetUC := usecase.NewAssetUseCase(assetRepo, movementRepo, assetRepo, cfg.Upload.MaxImageBytes(), log.Zerolog())
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, assetUC, log.Zerolog())
	dashboardUC := appanalytics.NewDashboardUseCase(assetRepo, maintenanceRepo, movementRepo)
	reportUC := report.NewReportUseCase(assetRepo, maintenanceRepo, infrapdf.NewMarotoReportGenerator(), "", log.Zerolog())

	// Carga inicial: PostgreSQL → YAML → generador de prueba
	src, closeSrc, err := selectSource(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("fuente de datos inicial")
	}
	if err := loadCatalog(ctx, src, assetUC, maintenanceUC, log.Component("seed")); err != nil {
		log.Fatal().Err(err).Str("source", src.Name()).Msg("carga del catálogo")
	}
	closeSrc()

	sessions := appcatalog.NewSessionManager(assetRepo, cfg.Catalog.SessionTTL, log.Zerolog())
	go sessions.Run(ctx, time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Upload.MaxImageBytes()) + 1<<20,
	})
	app.Use(recover.New(), httpRouter.RequestID(), httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Activos API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.File).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:       assetUC,
		MaintenanceUC: maintenanceUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Sessions:      sessions,
		MaxImageBytes: cfg.Upload.MaxImageBytes(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
