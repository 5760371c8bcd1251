package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestStore_ValoresIniciales(t *testing.T) {
	s := catalog.NewStore()
	assert.Empty(t, s.Assets())
	assert.True(t, s.Criteria().IsZero())
	assert.False(t, s.GroupBy())
}

func TestStore_SetAssetsConservaOrdenEIdentidad(t *testing.T) {
	records := mixedAssets()
	s := catalog.NewStore()
	s.SetAssets(records)

	got := s.Assets()
	assert.Equal(t, ids(records), ids(got))
	assert.Same(t, records[2], got[2])

	// Reemplazo completo.
	s.SetAssets(records[:1])
	assert.Len(t, s.Assets(), 1)
}

func TestStore_AssetsDevuelveCopiaDeLaSecuencia(t *testing.T) {
	s := catalog.NewStore()
	s.SetAssets(mixedAssets())

	got := s.Assets()
	got[0] = &entity.Asset{ID: 99}
	assert.Equal(t, int64(1), s.Assets()[0].ID)
}

func TestStore_CriteriosYAgrupacion(t *testing.T) {
	s := catalog.NewStore()
	s.SetCriteria("dell", "Computadores", "all")
	s.SetGroupBy(true)

	assert.Equal(t, catalog.Criteria{Search: "dell", Category: "Computadores", Status: "all"}, s.Criteria())
	assert.False(t, s.Criteria().IsZero())
	assert.True(t, s.GroupBy())
}
