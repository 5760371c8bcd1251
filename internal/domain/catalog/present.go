package catalog

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// Layout forma de la estructura de presentación.
type Layout string

const (
	LayoutFlat    Layout = "flat"
	LayoutGrouped Layout = "grouped"
)

// Group registros de una categoría, en el orden relativo de la lista filtrada.
type Group struct {
	Category entity.AssetCategory
	Count    int
	Assets   []*entity.Asset
}

// Display estructura consumida por la capa de vista: lista plana o grupos por categoría.
type Display struct {
	Layout Layout
	Assets []*entity.Asset // solo en LayoutFlat
	Groups []Group         // solo en LayoutGrouped
}

// Present construye la estructura de presentación a partir de la lista ya filtrada.
// Con groupByCategory los grupos aparecen en el orden en que se vio su primer miembro.
// Nunca duplica ni descarta registros.
func Present(filtered []*entity.Asset, groupByCategory bool) Display {
	if !groupByCategory {
		return Display{Layout: LayoutFlat, Assets: filtered}
	}

	groups := make([]Group, 0)
	index := make(map[entity.AssetCategory]int)
	for _, a := range filtered {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, Group{Category: a.Category})
		}
		groups[i].Assets = append(groups[i].Assets, a)
		groups[i].Count++
	}
	return Display{Layout: LayoutGrouped, Groups: groups}
}

// Len total de registros presentes en la estructura.
func (d Display) Len() int {
	if d.Layout != LayoutGrouped {
		return len(d.Assets)
	}
	n := 0
	for _, g := range d.Groups {
		n += g.Count
	}
	return n
}

// Flatten devuelve los registros de la estructura en orden de presentación.
func (d Display) Flatten() []*entity.Asset {
	if d.Layout != LayoutGrouped {
		return d.Assets
	}
	out := make([]*entity.Asset, 0, d.Len())
	for _, g := range d.Groups {
		out = append(out, g.Assets...)
	}
	return out
}
