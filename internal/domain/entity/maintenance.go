package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType tipo de mantenimiento.
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventiva"
	MaintenanceCorrective MaintenanceType = "corretiva"
	MaintenancePredictive MaintenanceType = "preditiva"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenancePredictive:
		return true
	default:
		return false
	}
}

// MaintenanceStatus estado de una orden de mantenimiento.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "agendada"
	MaintenanceInProgress MaintenanceStatus = "em_andamento"
	MaintenanceCompleted  MaintenanceStatus = "concluida"
	MaintenanceCancelled  MaintenanceStatus = "cancelada"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	default:
		return false
	}
}

// Open indica si la orden sigue abierta (agendada o en curso).
func (s MaintenanceStatus) Open() bool {
	return s == MaintenanceScheduled || s == MaintenanceInProgress
}

// MaintenanceTicket orden de mantenimiento sobre un activo.
// Cost es opcional (nil si aún no se conoce).
type MaintenanceTicket struct {
	ID          string
	AssetID     int64
	AssetName   string
	Type        MaintenanceType
	Status      MaintenanceStatus
	ScheduledAt time.Time
	CompletedAt *time.Time
	Responsible string
	Description string
	Cost        *decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
