package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial en memoria, en orden de llegada.
type MovementRepo struct {
	mu    sync.RWMutex
	items []*entity.Movement
}

func NewMovementRepository() *MovementRepo {
	return &MovementRepo{}
}

func (r *MovementRepo) Append(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
	return nil
}

// ListByAsset eventos de un activo, más reciente primero. limit <= 0 significa sin límite.
func (r *MovementRepo) ListByAsset(_ context.Context, assetID int64, limit int) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Movement, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].AssetID != assetID {
			continue
		}
		out = append(out, r.items[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// List eventos de todos los activos, más reciente primero.
func (r *MovementRepo) List(_ context.Context, limit int) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*entity.Movement, 0, n)
	for i := len(r.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
