package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo órdenes en memoria, más reciente primero. Entrega y guarda copias
// para que los llamadores no muten el estado sin pasar por Update.
type MaintenanceRepo struct {
	mu    sync.RWMutex
	items []*entity.MaintenanceTicket
}

func NewMaintenanceRepository() *MaintenanceRepo {
	return &MaintenanceRepo{}
}

func (r *MaintenanceRepo) Create(_ context.Context, t *entity.MaintenanceTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(t.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.items = append([]*entity.MaintenanceTicket{clone(t)}, r.items...)
	return nil
}

func (r *MaintenanceRepo) Update(_ context.Context, t *entity.MaintenanceTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(t.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items[i] = clone(t)
	return nil
}

// GetByID devuelve nil, nil si no existe.
// Delete quita la orden. Solo se usa para deshacer una creación que no pudo completarse.
func (r *MaintenanceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *MaintenanceRepo) GetByID(_ context.Context, id string) (*entity.MaintenanceTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return clone(r.items[i]), nil
}

func (r *MaintenanceRepo) List(_ context.Context) ([]*entity.MaintenanceTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.MaintenanceTicket, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, clone(t))
	}
	return out, nil
}

func (r *MaintenanceRepo) Load(_ context.Context, tickets []*entity.MaintenanceTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]*entity.MaintenanceTicket, 0, len(tickets))
	for _, t := range tickets {
		r.items = append(r.items, clone(t))
	}
	return nil
}

func (r *MaintenanceRepo) indexOf(id string) int {
	for i, t := range r.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clone(t *entity.MaintenanceTicket) *entity.MaintenanceTicket {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.Cost != nil {
		cost := *t.Cost
		c.Cost = &cost
	}
	return &c
}
