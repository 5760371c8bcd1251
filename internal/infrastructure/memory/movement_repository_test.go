package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

func TestMovementRepo_OrdenYLimite(t *testing.T) {
	ctx := context.Background()
	r := memory.NewMovementRepository()
	for i, id := range []int64{1, 2, 1, 1} {
		require.NoError(t, r.Append(ctx, &entity.Movement{ID: string(rune('a' + i)), AssetID: id}))
	}

	byAsset, err := r.ListByAsset(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, byAsset, 3)
	assert.Equal(t, "d", byAsset[0].ID)
	assert.Equal(t, "a", byAsset[2].ID)

	limited, _ := r.ListByAsset(ctx, 1, 2)
	assert.Len(t, limited, 2)

	all, _ := r.List(ctx, 3)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"d", "c", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})

	none, _ := r.ListByAsset(ctx, 42, 0)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
