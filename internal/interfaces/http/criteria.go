package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
)

// criteriaPatch criterios recibidos en el cuerpo. nil = la clave no vino y se conserva el valor actual.
type criteriaPatch struct {
	Search   *string
	Category *string
	Status   *string
}

// parseCriteriaPatch decodifica {search, category, status}. Los valores que no son texto
// (número, null, objeto) se interpretan como "". Un JSON válido que no es objeto no cambia nada;
// solo el JSON mal escrito es error.
func parseCriteriaPatch(body []byte) (criteriaPatch, error) {
	var p criteriaPatch
	if len(body) == 0 {
		return p, nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return p, err
	}
	raw, ok := decoded.(map[string]any)
	if !ok {
		return p, nil
	}
	p.Search = coerce(raw, "search")
	p.Category = coerce(raw, "category")
	p.Status = coerce(raw, "status")
	return p, nil
}

// Apply completa los criterios ausentes con los vigentes.
func (p criteriaPatch) Apply(current domcatalog.Criteria) domcatalog.Criteria {
	if p.Search != nil {
		current.Search = *p.Search
	}
	if p.Category != nil {
		current.Category = *p.Category
	}
	if p.Status != nil {
		current.Status = *p.Status
	}
	return current
}

func coerce(raw map[string]any, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	s, _ := v.(string)
	return &s
}

// queryCriteria lee ?search=&category=&status= de la URL.
func queryCriteria(c *fiber.Ctx) domcatalog.Criteria {
	return domcatalog.Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
}
