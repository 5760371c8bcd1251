package dto

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CreateAssetRequest entrada del formulario de registro de activos.
type CreateAssetRequest struct {
	Name         string `json:"name" yaml:"name" validate:"notblank,max=200"`
	Category     string `json:"category" yaml:"category" validate:"assetcategory"`
	SerialNumber string `json:"serial_number" yaml:"serial" validate:"notblank,max=100"`
	Brand        string `json:"brand" yaml:"brand" validate:"max=100"`
	Status       string `json:"status" yaml:"status" validate:"omitempty,assetstatus"`
	Location     string `json:"location" yaml:"location" validate:"notblank,max=200"`
	ImageURL     string `json:"image_url" yaml:"image_url" validate:"omitempty,max=2048"`
}

// ReplaceAssetRequest reemplazo completo de un activo (edición). El ID no cambia.
type ReplaceAssetRequest struct {
	Name                    string `json:"name" validate:"notblank,max=200"`
	Category                string `json:"category" validate:"assetcategory"`
	SerialNumber            string `json:"serial_number" validate:"notblank,max=100"`
	Brand                   string `json:"brand" validate:"max=100"`
	Status                  string `json:"status" validate:"assetstatus"`
	Location                string `json:"location" validate:"notblank,max=200"`
	LastMovementDescription string `json:"last_movement_description" validate:"max=500"`
	ImageURL                string `json:"image_url" validate:"omitempty,max=2048"`
}

// AssetRecordInput forma mínima de un registro importado (semilla o base externa).
type AssetRecordInput struct {
	ID           int64  `json:"id" validate:"gt=0"`
	Name         string `json:"name" validate:"notblank"`
	Category     string `json:"category" validate:"assetcategory"`
	SerialNumber string `json:"serial_number" validate:"notblank"`
	Status       string `json:"status" validate:"assetstatus"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID                      int64     `json:"id"`
	Name                    string    `json:"name"`
	Category                string    `json:"category"`
	SerialNumber            string    `json:"serial_number"`
	Brand                   string    `json:"brand,omitempty"`
	Status                  string    `json:"status"`
	StatusLabel             string    `json:"status_label"`
	Location                string    `json:"location"`
	LastMovementDescription string    `json:"last_movement_description"`
	ImageURL                string    `json:"image_url,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// RegisterAssetResponse resultado del registro: el activo y la página a la que volver.
type RegisterAssetResponse struct {
	Asset AssetResponse `json:"asset"`
	Navigation
}

// MovementResponse evento del historial.
type MovementResponse struct {
	ID          string    `json:"id"`
	AssetID     int64     `json:"asset_id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// MovementListResponse timeline de movimientos (más reciente primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}

// NewAssetResponse convierte la entidad en su representación de salida.
func NewAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:                      a.ID,
		Name:                    a.Name,
		Category:                string(a.Category),
		SerialNumber:            a.SerialNumber,
		Brand:                   a.Brand,
		Status:                  string(a.Status),
		StatusLabel:             a.Status.Label(),
		Location:                a.Location,
		LastMovementDescription: a.LastMovementDescription,
		ImageURL:                a.ImageURL,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// NewAssetResponses convierte una lista conservando el orden.
func NewAssetResponses(list []*entity.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAssetResponse(a))
	}
	return out
}

// NewMovementResponses convierte el historial conservando el orden.
func NewMovementResponses(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MovementResponse{
			ID:          m.ID,
			AssetID:     m.AssetID,
			Kind:        string(m.Kind),
			Description: m.Description,
			At:          m.At,
		})
	}
	return out
}
