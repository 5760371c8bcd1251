package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest entrada para abrir una orden de mantenimiento.
type CreateMaintenanceRequest struct {
	AssetID     int64            `json:"asset_id" validate:"gt=0"`
	Type        string           `json:"type" validate:"maintenancetype"`
	ScheduledAt time.Time        `json:"scheduled_at" validate:"required"`
	Responsible string           `json:"responsible" validate:"notblank,max=200"`
	Description string           `json:"description" validate:"notblank,max=2000"`
	Cost        *decimal.Decimal `json:"cost"`
	Notes       string           `json:"notes" validate:"max=2000"`
}

// UpdateMaintenanceStatusRequest cambio de estado de una orden.
type UpdateMaintenanceStatusRequest struct {
	Status string           `json:"status" validate:"maintenancestatus"`
	Cost   *decimal.Decimal `json:"cost"`
	Notes  *string          `json:"notes"`
}

// MaintenanceResponse salida de una orden de mantenimiento.
type MaintenanceResponse struct {
	ID          string           `json:"id"`
	AssetID     int64            `json:"asset_id"`
	AssetName   string           `json:"asset_name"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Responsible string           `json:"responsible"`
	Description string           `json:"description"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MaintenanceListResponse listado filtrado de órdenes.
type MaintenanceListResponse struct {
	Items     []MaintenanceResponse `json:"items"`
	Total     int                   `json:"total"`
	TotalCost decimal.Decimal       `json:"total_cost"`
}
