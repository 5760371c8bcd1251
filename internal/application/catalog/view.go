package catalog

import (
	"github.com/jhoicas/Activos-api/internal/application/dto"
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// emptyState textos del marcador de catálogo vacío.
var emptyState = dto.EmptyStateResponse{
	Title:   "Nenhum ativo encontrado",
	Message: "Tente ajustar os filtros ou cadastre um novo ativo",
	Action:  string(PageRegister),
}

// NewViewResponse convierte una View en la respuesta HTTP. Si la vista está vacía
// se envía el marcador en lugar de la lista o los grupos.
func NewViewResponse(sessionID string, v View, categories []entity.AssetCategory) dto.CatalogViewResponse {
	out := dto.CatalogViewResponse{
		SessionID:  sessionID,
		Search:     v.Criteria.Search,
		Category:   v.Criteria.Category,
		Status:     v.Criteria.Status,
		GroupBy:    v.GroupBy,
		Total:      v.Total,
		Shown:      v.Display.Len(),
		Layout:     string(v.Display.Layout),
		Categories: make([]string, 0, len(categories)),
		Navigation: dto.Navigation{Navigate: string(v.Navigate)},
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, string(c))
	}

	if v.Empty {
		es := emptyState
		out.EmptyState = &es
		return out
	}

	switch v.Display.Layout {
	case domcatalog.LayoutGrouped:
		out.Groups = make([]dto.CatalogGroupResponse, 0, len(v.Display.Groups))
		for _, g := range v.Display.Groups {
			out.Groups = append(out.Groups, dto.CatalogGroupResponse{
				Category: string(g.Category),
				Count:    g.Count,
				Items:    dto.NewAssetResponses(g.Assets),
			})
		}
	default:
		out.Items = dto.NewAssetResponses(v.Display.Assets)
	}
	return out
}
