package entity

import "time"

// MovementKind tipo de evento en el historial de un activo.
type MovementKind string

const (
	MovementRegistered MovementKind = "cadastro"
	MovementStatus     MovementKind = "status"
	MovementEdited     MovementKind = "edicao"
	MovementImage      MovementKind = "imagem"
)

// Movement evento del historial (timeline) de un activo.
type Movement struct {
	ID          string
	AssetID     int64
	Kind        MovementKind
	Description string
	At          time.Time
}
