package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/internal/infrastructure/seed"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// selectSource elige la primera fuente disponible: PostgreSQL, archivo YAML o generador de prueba.
// El cierre devuelto libera la conexión cuando la fuente es la base de datos.
func selectSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (seed.Source, func(), error) {
	noop := func() {}

	if cfg.DB.Enabled {
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		pool, err := postgres.NewPool(connectCtx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		log.Info().Msg("catálogo: importación desde PostgreSQL")
		return postgres.NewAssetSource(pool, log.Component("postgres")), pool.Close, nil
	}

	if cfg.Catalog.SeedPath != "" {
		src, err := seed.NewFileSource(cfg.Catalog.SeedPath)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("path", cfg.Catalog.SeedPath).Msg("catálogo: archivo de semilla")
		return src, noop, nil
	}

	log.Info().Int("count", cfg.Catalog.MockCount).Uint64("seed", cfg.Catalog.MockSeed).Msg("catálogo: datos de prueba")
	return seed.NewMockSource(cfg.Catalog.MockCount, cfg.Catalog.MockSeed, time.Time{}), noop, nil
}

// loadCatalog importa activos y órdenes de mantenimiento de src en los repositorios en memoria.
func loadCatalog(
	ctx context.Context,
	src seed.Source,
	assets *usecase.AssetUseCase,
	maintenance *usecase.MaintenanceUseCase,
	log zerolog.Logger,
) error {
	records, err := src.LoadAssets(ctx)
	if err != nil {
		return fmt.Errorf("leer activos: %w", err)
	}
	loaded, dropped, err := assets.Import(ctx, records)
	if err != nil {
		return err
	}

	tickets, err := src.LoadMaintenance(ctx)
	if err != nil {
		return fmt.Errorf("leer mantenimientos: %w", err)
	}
	tLoaded, tDropped, err := maintenance.Import(ctx, tickets)
	if err != nil {
		return err
	}

	log.Info().
		Str("source", src.Name()).
		Int("assets", loaded).Int("assets_dropped", dropped).
		Int("maintenance", tLoaded).Int("maintenance_dropped", tDropped).
		Msg("catálogo cargado")
	return nil
}
