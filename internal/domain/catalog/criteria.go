// Package catalog contiene el núcleo del catálogo de activos: el almacén de la sesión,
// el motor de filtrado y el adaptador de agrupación. Todo es puro, síncrono y en memoria.
package catalog

import "strings"

// Wildcard valor de selección que significa "sin restricción" (además de la cadena vacía).
const Wildcard = "all"

// Criteria parámetros activos de búsqueda y filtro.
type Criteria struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// NoCriteria devuelve criterios que no restringen nada.
func NoCriteria() Criteria {
	return Criteria{Category: Wildcard, Status: Wildcard}
}

// IsWildcard indica si un valor de selección no restringe (vacío o "all").
func IsWildcard(v string) bool {
	return v == "" || strings.EqualFold(v, Wildcard)
}

// IsZero indica si los criterios no filtran ningún registro.
func (c Criteria) IsZero() bool {
	return c.Search == "" && IsWildcard(c.Category) && IsWildcard(c.Status)
}
