package entity

import "time"

// AssetCategory categoría de un activo (conjunto cerrado).
type AssetCategory string

const (
	CategoryComputers   AssetCategory = "Computadores"
	CategoryMonitors    AssetCategory = "Monitores"
	CategoryPrinters    AssetCategory = "Impressoras"
	CategoryChairs      AssetCategory = "Cadeiras"
	CategoryPeripherals AssetCategory = "Periféricos"
	CategoryFurniture   AssetCategory = "Móveis"
	CategoryTelephony   AssetCategory = "Telefonia"
	CategoryNetwork     AssetCategory = "Rede"
	CategorySecurity    AssetCategory = "Segurança"
	CategoryOther       AssetCategory = "Outros"
)

// AssetCategories lista las categorías válidas en el orden en que se muestran en el formulario.
var AssetCategories = []AssetCategory{
	CategoryComputers, CategoryMonitors, CategoryPrinters, CategoryChairs, CategoryPeripherals,
	CategoryFurniture, CategoryTelephony, CategoryNetwork, CategorySecurity, CategoryOther,
}

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c AssetCategory) Valid() bool {
	for _, v := range AssetCategories {
		if c == v {
			return true
		}
	}
	return false
}

// AssetStatus estado de un activo. No es una máquina de estados: las transiciones
// las realizan los flujos de registro, edición y mantenimiento.
type AssetStatus string

const (
	StatusFree           AssetStatus = "livre"
	StatusInUse          AssetStatus = "em_uso"
	StatusInService      AssetStatus = "assistencia"
	StatusInMaintenance  AssetStatus = "manutencao"
	StatusDecommissioned AssetStatus = "baixado"
)

// AssetStatuses lista los estados válidos.
var AssetStatuses = []AssetStatus{
	StatusFree, StatusInUse, StatusInService, StatusInMaintenance, StatusDecommissioned,
}

func (s AssetStatus) Valid() bool {
	switch s {
	case StatusFree, StatusInUse, StatusInService, StatusInMaintenance, StatusDecommissioned:
		return true
	default:
		return false
	}
}

// Label devuelve la etiqueta legible del estado (la misma que muestra el dashboard).
func (s AssetStatus) Label() string {
	switch s {
	case StatusFree:
		return "Livre"
	case StatusInUse:
		return "Em Uso"
	case StatusInService:
		return "Assistência"
	case StatusInMaintenance:
		return "Manutenção"
	case StatusDecommissioned:
		return "Baixado"
	default:
		return string(s)
	}
}

// Asset representa un equipo físico rastreado (computador, monitor, impresora, silla...).
// Es inmutable una vez creado: una edición reemplaza el registro completo conservando el ID.
// Nunca se elimina; dar de baja es el estado StatusDecommissioned.
type Asset struct {
	ID                      int64
	Name                    string
	Category                AssetCategory
	SerialNumber            string
	Brand                   string
	Status                  AssetStatus
	Location                string
	LastMovementDescription string
	ImageURL                string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
