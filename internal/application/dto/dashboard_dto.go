package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del inventario: total, distribución por estado y por categoría, mantenimiento abierto.
type DashboardSummaryDTO struct {
	TotalAssets int `json:"total_assets"`

	// Un elemento por estado válido, en orden fijo (livre, em_uso, assistencia, manutencao, baixado).
	ByStatus []StatusKPIDTO `json:"by_status"`

	// Categorías en el orden en que aparecen en el catálogo.
	ByCategory []CategoryKPIDTO `json:"by_category"`

	OpenMaintenance int                `json:"open_maintenance"`
	RecentActivity  []MovementResponse `json:"recent_activity"`
}

// StatusKPIDTO conteo de activos en un estado. Percentage es entero redondeado sobre el total.
type StatusKPIDTO struct {
	Status     string `json:"status"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// CategoryKPIDTO conteo de activos en una categoría.
type CategoryKPIDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
