package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestPresent_PlanoDevuelveLaListaSinCambios(t *testing.T) {
	records := mixedAssets()
	d := catalog.Present(records, false)

	assert.Equal(t, catalog.LayoutFlat, d.Layout)
	assert.Equal(t, records, d.Assets)
	assert.Empty(t, d.Groups)
}

func TestPresent_EscenarioAgrupado(t *testing.T) {
	d := catalog.Present(scenarioAssets(), true)

	require.Equal(t, catalog.LayoutGrouped, d.Layout)
	require.Len(t, d.Groups, 2)
	assert.Equal(t, entity.AssetCategory("Computadores"), d.Groups[0].Category)
	assert.Equal(t, 1, d.Groups[0].Count)
	assert.Equal(t, entity.AssetCategory("Monitores"), d.Groups[1].Category)
	assert.Equal(t, 1, d.Groups[1].Count)
}

func TestPresent_OrdenDePrimeraAparicionNoAlfabetico(t *testing.T) {
	records := []*entity.Asset{
		{ID: 1, Category: entity.CategoryMonitors},
		{ID: 2, Category: entity.CategoryChairs},
		{ID: 3, Category: entity.CategoryMonitors},
		{ID: 4, Category: entity.CategoryComputers},
		{ID: 5, Category: entity.CategoryChairs},
	}
	d := catalog.Present(records, true)

	require.Len(t, d.Groups, 3)
	assert.Equal(t, entity.CategoryMonitors, d.Groups[0].Category)
	assert.Equal(t, entity.CategoryChairs, d.Groups[1].Category)
	assert.Equal(t, entity.CategoryComputers, d.Groups[2].Category)
	assert.Equal(t, []int64{1, 3}, ids(d.Groups[0].Assets))
	assert.Equal(t, []int64{2, 5}, ids(d.Groups[1].Assets))
}

func TestPresent_ConservaRegistros(t *testing.T) {
	for _, c := range []catalog.Criteria{catalog.NoCriteria(), {Search: "e"}, {Search: "nada"}} {
		filtered := catalog.Filter(mixedAssets(), c)
		grouped := catalog.Present(filtered, true)
		flat := catalog.Present(filtered, false)

		total := 0
		for _, g := range grouped.Groups {
			assert.Equal(t, len(g.Assets), g.Count)
			total += g.Count
		}
		assert.Equal(t, len(filtered), total)
		assert.Equal(t, len(filtered), grouped.Len())
		assert.ElementsMatch(t, flat.Flatten(), grouped.Flatten())
	}
}

func TestPresent_ListaVaciaAgrupadaSinGrupos(t *testing.T) {
	d := catalog.Present([]*entity.Asset{}, true)
	assert.Equal(t, catalog.LayoutGrouped, d.Layout)
	assert.Empty(t, d.Groups)
	assert.Equal(t, 0, d.Len())
}
