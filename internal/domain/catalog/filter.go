package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Filter devuelve los registros que cumplen todos los criterios, en el mismo orden relativo
// de la entrada. Los elementos incluidos son los mismos punteros (no copias).
//
// Un registro se incluye si:
//   - Search está vacío o es subcadena (sin distinguir mayúsculas) de Name, SerialNumber o Category;
//   - Category es comodín o igual a la categoría del registro;
//   - Status es comodín o igual al estado del registro.
func Filter(records []*entity.Asset, c Criteria) []*entity.Asset {
	out := make([]*entity.Asset, 0, len(records))
	if len(records) == 0 {
		return out
	}

	// Caser tiene estado: uno por llamada.
	fold := cases.Fold()
	needle := fold.String(c.Search)

	for _, a := range records {
		if a == nil {
			continue
		}
		if !IsWildcard(c.Category) && string(a.Category) != c.Category {
			continue
		}
		if !IsWildcard(c.Status) && string(a.Status) != c.Status {
			continue
		}
		if needle != "" && !matchesSearch(fold, a, needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(fold cases.Caser, a *entity.Asset, needle string) bool {
	return strings.Contains(fold.String(a.Name), needle) ||
		strings.Contains(fold.String(a.SerialNumber), needle) ||
		strings.Contains(fold.String(string(a.Category)), needle)
}
