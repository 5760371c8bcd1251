// Package analytics contiene los casos de uso de indicadores del inventario
// (Dashboard de activos).
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

const dashboardRecentActivity = 5 // movimientos en el widget de actividad reciente

// DashboardUseCase genera el resumen del inventario.
//
// Fuentes de datos: catálogo de activos, órdenes de mantenimiento e historial (solo lectura).
type DashboardUseCase struct {
	assets      repository.AssetRepository
	maintenance repository.MaintenanceRepository
	movements   repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	assets repository.AssetRepository,
	maintenance repository.MaintenanceRepository,
	movements repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{assets: assets, maintenance: maintenance, movements: movements}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. assets.List          → TotalAssets + ByStatus + ByCategory
//  2. maintenance.List     → OpenMaintenance
//  3. movements.List(5)    → RecentActivity
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	// ── Goroutines para paralelizar las 3 lecturas ────────────────────────────
	type assetsResult struct {
		list []*entity.Asset
		err  error
	}
	type ticketsResult struct {
		list []*entity.MaintenanceTicket
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	assetsCh := make(chan assetsResult, 1)
	ticketsCh := make(chan ticketsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.assets.List(ctx)
		assetsCh <- assetsResult{list, err}
	}()
	go func() {
		list, err := uc.maintenance.List(ctx)
		ticketsCh <- ticketsResult{list, err}
	}()
	go func() {
		list, err := uc.movements.List(ctx, dashboardRecentActivity)
		movementsCh <- movementsResult{list, err}
	}()

	assets := <-assetsCh
	tickets := <-ticketsCh
	movements := <-movementsCh

	if assets.err != nil {
		return nil, fmt.Errorf("dashboard: activos: %w", assets.err)
	}
	if tickets.err != nil {
		return nil, fmt.Errorf("dashboard: mantenimientos: %w", tickets.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: historial: %w", movements.err)
	}

	// ── Conteos ───────────────────────────────────────────────────────────────
	open := 0
	for _, t := range tickets.list {
		if t.Status.Open() {
			open++
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalAssets:     len(assets.list),
		ByStatus:        statusKPIs(assets.list),
		ByCategory:      categoryKPIs(assets.list),
		OpenMaintenance: open,
		RecentActivity:  dto.NewMovementResponses(movements.list),
	}, nil
}

// statusKPIs un elemento por estado válido, en orden fijo, con porcentaje redondeado.
func statusKPIs(list []*entity.Asset) []dto.StatusKPIDTO {
	counts := make(map[entity.AssetStatus]int, len(entity.AssetStatuses))
	for _, a := range list {
		counts[a.Status]++
	}
	out := make([]dto.StatusKPIDTO, 0, len(entity.AssetStatuses))
	for _, s := range entity.AssetStatuses {
		out = append(out, dto.StatusKPIDTO{
			Status:     string(s),
			Label:      s.Label(),
			Count:      counts[s],
			Percentage: percentage(counts[s], len(list)),
		})
	}
	return out
}

// categoryKPIs reutiliza el agrupador del catálogo: categorías en orden de primera aparición.
func categoryKPIs(list []*entity.Asset) []dto.CategoryKPIDTO {
	groups := domcatalog.Present(list, true).Groups
	out := make([]dto.CategoryKPIDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryKPIDTO{Category: string(g.Category), Count: g.Count})
	}
	return out
}

// percentage n sobre total redondeado al entero más cercano; 0 si total es 0.
func percentage(n, total int) int {
	if total == 0 {
		return 0
	}
	return (n*200 + total) / (total * 2)
}
