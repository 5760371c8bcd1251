package dto

import "github.com/jhoicas/Activos-api/internal/domain"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Navigation señal opaca de navegación que la vista debe seguir (la API no navega).
type Navigation struct {
	Navigate string `json:"navigate,omitempty"`
}
