// Package memory implementa los puertos de almacenamiento en memoria del proceso.
// El catálogo vive mientras vive el servidor; no hay escritura a disco ni a base de datos.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var (
	_ repository.AssetRepository = (*AssetRepo)(nil)
	_ repository.AssetImageStore = (*AssetRepo)(nil)
)

type storedImage struct {
	contentType string
	data        []byte
}

// AssetRepo catálogo en memoria. Los registros son inmutables: Replace sustituye el puntero.
// El orden de List es el de catálogo: los registrados por Add quedan al inicio.
type AssetRepo struct {
	mu       sync.RWMutex
	assets   []*entity.Asset
	byID     map[int64]int
	bySerial map[string]int64
	lastID   int64
	images   map[int64]storedImage
}

// NewAssetRepository construye el repositorio vacío.
func NewAssetRepository() *AssetRepo {
	return &AssetRepo{
		byID:     make(map[int64]int),
		bySerial: make(map[string]int64),
		images:   make(map[int64]storedImage),
	}
}

// NextID reserva el siguiente ID. Los IDs nunca se reutilizan.
func (r *AssetRepo) NextID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID, nil
}

// Add inserta el activo al inicio del catálogo.
func (r *AssetRepo) Add(_ context.Context, a *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; ok {
		return domain.ErrDuplicate
	}
	key := serialKey(a.SerialNumber)
	if _, ok := r.bySerial[key]; ok {
		return domain.ErrDuplicate
	}
	r.assets = append([]*entity.Asset{a}, r.assets...)
	r.reindex()
	if a.ID > r.lastID {
		r.lastID = a.ID
	}
	return nil
}

// Replace sustituye el registro con el mismo ID conservando su posición.
func (r *AssetRepo) Replace(_ context.Context, a *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	key := serialKey(a.SerialNumber)
	if owner, ok := r.bySerial[key]; ok && owner != a.ID {
		return domain.ErrDuplicate
	}
	delete(r.bySerial, serialKey(r.assets[i].SerialNumber))
	r.assets[i] = a
	r.bySerial[key] = a.ID
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *AssetRepo) GetByID(_ context.Context, id int64) (*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.assets[i], nil
}

// GetBySerial busca por número de serie sin distinguir mayúsculas ni espacios exteriores.
func (r *AssetRepo) GetBySerial(_ context.Context, serial string) (*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySerial[serialKey(serial)]
	if !ok {
		return nil, nil
	}
	return r.assets[r.byID[id]], nil
}

// List devuelve una copia de la secuencia (mismos punteros).
func (r *AssetRepo) List(_ context.Context) ([]*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]*entity.Asset, 0, len(r.assets)), r.assets...), nil
}

// Load reemplaza el catálogo completo. El llamador garantiza IDs y seriales únicos.
func (r *AssetRepo) Load(_ context.Context, assets []*entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = append(make([]*entity.Asset, 0, len(assets)), assets...)
	r.images = make(map[int64]storedImage)
	r.reindex()
	for _, a := range r.assets {
		if a.ID > r.lastID {
			r.lastID = a.ID
		}
	}
	return nil
}

// PutImage guarda una copia de la imagen.
func (r *AssetRepo) PutImage(_ context.Context, assetID int64, contentType string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[assetID]; !ok {
		return domain.ErrNotFound
	}
	r.images[assetID] = storedImage{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

// GetImage devuelve ErrNotFound si el activo no tiene imagen cargada.
func (r *AssetRepo) GetImage(_ context.Context, assetID int64) (string, []byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[assetID]
	if !ok {
		return "", nil, domain.ErrNotFound
	}
	return img.contentType, img.data, nil
}

func (r *AssetRepo) reindex() {
	r.byID = make(map[int64]int, len(r.assets))
	r.bySerial = make(map[string]int64, len(r.assets))
	for i, a := range r.assets {
		r.byID[a.ID] = i
		r.bySerial[serialKey(a.SerialNumber)] = a.ID
	}
}

func serialKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
