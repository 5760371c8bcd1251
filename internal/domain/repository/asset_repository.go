package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetRepository define el puerto de almacenamiento de activos de la sesión del servidor.
// List devuelve los activos en orden de catálogo (los más recientes primero).
type AssetRepository interface {
	NextID(ctx context.Context) (int64, error)
	Add(ctx context.Context, asset *entity.Asset) error
	Replace(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id int64) (*entity.Asset, error)
	GetBySerial(ctx context.Context, serial string) (*entity.Asset, error)
	List(ctx context.Context) ([]*entity.Asset, error)
	Load(ctx context.Context, assets []*entity.Asset) error
}

// AssetImageStore guarda la imagen asociada a un activo.
type AssetImageStore interface {
	PutImage(ctx context.Context, assetID int64, contentType string, data []byte) error
	GetImage(ctx context.Context, assetID int64) (contentType string, data []byte, err error)
}
