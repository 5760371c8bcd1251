// Package seed provee las fuentes con las que se llena el catálogo al arrancar:
// archivo YAML o generador determinista de datos de prueba.
package seed

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Source fuente de solo lectura de activos y órdenes de mantenimiento.
// La implementan MockSource, FileSource y postgres.AssetSource.
type Source interface {
	Name() string
	LoadAssets(ctx context.Context) ([]*entity.Asset, error)
	LoadMaintenance(ctx context.Context) ([]*entity.MaintenanceTicket, error)
}
