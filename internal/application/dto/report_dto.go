package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReportDTO reporte de inventario agrupado por categoría (variante JSON del PDF).
type InventoryReportDTO struct {
	Title           string                 `json:"title"`
	GeneratedAt     time.Time              `json:"generated_at"`
	Search          string                 `json:"search"`
	Category        string                 `json:"category"`
	Status          string                 `json:"status"`
	Total           int                    `json:"total"`
	MaintenanceCost decimal.Decimal        `json:"maintenance_cost"`
	Groups          []InventoryReportGroup `json:"groups"`
}

// InventoryReportGroup sección del reporte para una categoría.
type InventoryReportGroup struct {
	Category        string          `json:"category"`
	Count           int             `json:"count"`
	MaintenanceCost decimal.Decimal `json:"maintenance_cost"`
	Items           []AssetResponse `json:"items"`
}
