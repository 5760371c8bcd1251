package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// MaintenanceRepository define el puerto de persistencia para órdenes de mantenimiento.
type MaintenanceRepository interface {
	Create(ctx context.Context, t *entity.MaintenanceTicket) error
	Update(ctx context.Context, t *entity.MaintenanceTicket) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.MaintenanceTicket, error)
	List(ctx context.Context) ([]*entity.MaintenanceTicket, error)
	Load(ctx context.Context, tickets []*entity.MaintenanceTicket) error
}
