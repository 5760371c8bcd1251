package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

type failingTickets struct{ *memory.MaintenanceRepo }

func (failingTickets) List(context.Context) ([]*entity.MaintenanceTicket, error) {
	return nil, errors.New("boom")
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	assets := memory.NewAssetRepository()
	require.NoError(t, assets.Load(ctx, []*entity.Asset{
		{ID: 1, Category: entity.CategoryMonitors, SerialNumber: "1", Status: entity.StatusFree},
		{ID: 2, Category: entity.CategoryComputers, SerialNumber: "2", Status: entity.StatusInUse},
		{ID: 3, Category: entity.CategoryMonitors, SerialNumber: "3", Status: entity.StatusFree},
	}))
	tickets := memory.NewMaintenanceRepository()
	require.NoError(t, tickets.Load(ctx, []*entity.MaintenanceTicket{
		{ID: "a", AssetID: 1, Status: entity.MaintenanceScheduled},
		{ID: "b", AssetID: 2, Status: entity.MaintenanceCompleted},
		{ID: "c", AssetID: 3, Status: entity.MaintenanceInProgress},
	}))
	movs := memory.NewMovementRepository()
	for i := 0; i < 7; i++ {
		require.NoError(t, movs.Append(ctx, &entity.Movement{ID: string(rune('a' + i)), AssetID: 1}))
	}

	out, err := analytics.NewDashboardUseCase(assets, tickets, movs).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalAssets)
	require.Len(t, out.ByStatus, len(entity.AssetStatuses))
	assert.Equal(t, "livre", out.ByStatus[0].Status)
	assert.Equal(t, 2, out.ByStatus[0].Count)
	assert.Equal(t, 67, out.ByStatus[0].Percentage)
	assert.Equal(t, 33, out.ByStatus[1].Percentage)
	assert.Equal(t, 0, out.ByStatus[4].Percentage)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Monitores", out.ByCategory[0].Category)
	assert.Equal(t, 2, out.ByCategory[0].Count)

	assert.Equal(t, 2, out.OpenMaintenance)
	require.Len(t, out.RecentActivity, 5)
	assert.Equal(t, "g", out.RecentActivity[0].ID)
}

func TestGetSummary_CatalogoVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewAssetRepository(), memory.NewMaintenanceRepository(), memory.NewMovementRepository())
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalAssets)
	for _, s := range out.ByStatus {
		assert.Zero(t, s.Percentage)
	}
	assert.Empty(t, out.ByCategory)
}

func TestGetSummary_ErrorDeFuente(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewAssetRepository(), failingTickets{memory.NewMaintenanceRepository()}, memory.NewMovementRepository())
	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}
