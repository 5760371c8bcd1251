package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrInvalidCategory  = errors.New("categoría inválida")
	ErrInvalidStatus    = errors.New("estado inválido")
	ErrSessionNotFound  = errors.New("sesión de catálogo no encontrada")
	ErrImageTooLarge    = errors.New("imagen excede el tamaño máximo")
	ErrUnsupportedImage = errors.New("solo se permiten archivos de imagen")
)

// FieldError describe un campo rechazado y la regla que falló.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError agrupa los motivos de rechazo de un registro en la frontera del productor.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s(%s)", f.Field, f.Rule))
	}
	return "validación: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
