package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

func asset(id int64, serial string) *entity.Asset {
	return &entity.Asset{ID: id, Name: "Ativo", Category: entity.CategoryComputers, SerialNumber: serial, Status: entity.StatusFree}
}

func TestAssetRepo_AddAntepone(t *testing.T) {
	ctx := context.Background()
	r := memory.NewAssetRepository()
	require.NoError(t, r.Load(ctx, []*entity.Asset{asset(1, "A1"), asset(2, "A2")}))

	id, err := r.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	require.NoError(t, r.Add(ctx, asset(id, "A3")))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
}

func TestAssetRepo_SerialUnicoSinMayusculas(t *testing.T) {
	ctx := context.Background()
	r := memory.NewAssetRepository()
	require.NoError(t, r.Add(ctx, asset(1, "sn-001")))

	got, err := r.GetBySerial(ctx, "  SN-001 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	err = r.Add(ctx, asset(2, "SN-001"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestAssetRepo_ReplaceConservaPosicion(t *testing.T) {
	ctx := context.Background()
	r := memory.NewAssetRepository()
	require.NoError(t, r.Load(ctx, []*entity.Asset{asset(1, "A1"), asset(2, "A2")}))

	next := asset(1, "A1-B")
	next.Name = "Editado"
	require.NoError(t, r.Replace(ctx, next))

	list, _ := r.List(ctx)
	assert.Equal(t, "Editado", list[0].Name)
	old, _ := r.GetBySerial(ctx, "A1")
	assert.Nil(t, old, "el serial anterior queda libre")

	assert.True(t, errors.Is(r.Replace(ctx, asset(2, "A1-B")), domain.ErrDuplicate))
	assert.True(t, errors.Is(r.Replace(ctx, asset(9, "X")), domain.ErrNotFound))
}

func TestAssetRepo_ListDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	r := memory.NewAssetRepository()
	require.NoError(t, r.Load(ctx, []*entity.Asset{asset(1, "A1")}))

	list, _ := r.List(ctx)
	list[0] = nil
	again, _ := r.List(ctx)
	require.NotNil(t, again[0])
}

func TestAssetRepo_Imagen(t *testing.T) {
	ctx := context.Background()
	r := memory.NewAssetRepository()
	require.NoError(t, r.Add(ctx, asset(1, "A1")))

	_, _, err := r.GetImage(ctx, 1)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	data := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, r.PutImage(ctx, 1, "image/png", data))
	data[0] = 0

	ct, got, err := r.GetImage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, byte(0x89), got[0])

	assert.True(t, errors.Is(r.PutImage(ctx, 7, "image/png", data), domain.ErrNotFound))
}
