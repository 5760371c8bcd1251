package dto

// CatalogGroupResponse grupo de activos de una categoría.
type CatalogGroupResponse struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Items    []AssetResponse `json:"items"`
}

// EmptyStateResponse marcador que la vista muestra cuando el filtro no devuelve nada.
type EmptyStateResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"` // página sugerida (registro)
}

// CatalogViewResponse estructura de presentación del catálogo.
// Layout "flat" usa Items; "grouped" usa Groups; si EmptyState != nil no hay lista.
type CatalogViewResponse struct {
	SessionID  string                 `json:"session_id,omitempty"`
	Search     string                 `json:"search"`
	Category   string                 `json:"category"`
	Status     string                 `json:"status"`
	GroupBy    bool                   `json:"group_by"`
	Total      int                    `json:"total"`
	Shown      int                    `json:"shown"`
	Layout     string                 `json:"layout"`
	Items      []AssetResponse        `json:"items,omitempty"`
	Groups     []CatalogGroupResponse `json:"groups,omitempty"`
	EmptyState *EmptyStateResponse    `json:"empty_state,omitempty"`
	Categories []string               `json:"categories"`
	Navigation
}
