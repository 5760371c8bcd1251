package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/seed"
)

func TestFile_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	mock := seed.NewMockSource(30, 9, fixedNow)
	assets, _ := mock.LoadAssets(ctx)
	tickets, _ := mock.LoadMaintenance(ctx)

	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, seed.WriteFile(path, seed.NewFile(assets, tickets)))

	src, err := seed.NewFileSource(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml:"+path, src.Name())

	got, err := src.LoadAssets(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(assets))
	assert.Equal(t, assets[4].SerialNumber, got[4].SerialNumber)
	assert.Equal(t, assets[4].Category, got[4].Category)
	assert.True(t, assets[4].CreatedAt.Equal(got[4].CreatedAt))

	gotTickets, err := src.LoadMaintenance(ctx)
	require.NoError(t, err)
	require.Len(t, gotTickets, len(tickets))
	for i := range tickets {
		assert.True(t, tickets[i].Cost.Equal(*gotTickets[i].Cost))
	}
}

func TestFileSource_FormatoManual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
assets:
  - id: 1
    name: Notebook Dell
    category: Computadores
    serial: SN1
    status: em_uso
maintenance:
  - asset_id: 1
    type: corretiva
    status: agendada
    scheduled_at: 2025-03-10T09:00:00Z
    cost: "120.50"
`), 0o644))

	src, err := seed.NewFileSource(path)
	require.NoError(t, err)
	assets, err := src.LoadAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, entity.StatusInUse, assets[0].Status)

	tickets, err := src.LoadMaintenance(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "120.5", tickets[0].Cost.String())
}

func TestFileSource_Errores(t *testing.T) {
	_, err := seed.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maintenance:\n  - asset_id: 1\n    cost: abc\n"), 0o644))
	src, err := seed.NewFileSource(path)
	require.NoError(t, err)
	_, err = src.LoadMaintenance(context.Background())
	assert.Error(t, err)
}
