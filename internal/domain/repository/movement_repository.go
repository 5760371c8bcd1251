package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// MovementRepository define el puerto del historial de movimientos.
// Los listados devuelven el evento más reciente primero.
type MovementRepository interface {
	Append(ctx context.Context, m *entity.Movement) error
	ListByAsset(ctx context.Context, assetID int64, limit int) ([]*entity.Movement, error)
	List(ctx context.Context, limit int) ([]*entity.Movement, error)
}
