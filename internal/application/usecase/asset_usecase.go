package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appcatalog "github.com/jhoicas/Activos-api/internal/application/catalog"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/domain"
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

const dateLayout = "02/01/2006"

// AssetUseCase casos de uso del catálogo de activos: registro (productor de registros),
// reemplazo, listado filtrado, imagen e historial. Los activos nunca se eliminan.
type AssetUseCase struct {
	repo          repository.AssetRepository
	movements     repository.MovementRepository
	images        repository.AssetImageStore
	maxImageBytes int64
	log           zerolog.Logger
	now           func() time.Time
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	repo repository.AssetRepository,
	movements repository.MovementRepository,
	images repository.AssetImageStore,
	maxImageBytes int64,
	log zerolog.Logger,
) *AssetUseCase {
	return &AssetUseCase{
		repo:          repo,
		movements:     movements,
		images:        images,
		maxImageBytes: maxImageBytes,
		log:           log.With().Str("component", "assets").Logger(),
		now:           time.Now,
	}
}

// Register valida y agrega un activo nuevo al inicio del catálogo.
// Rechaza con motivos (ValidationError) y rechaza números de serie repetidos (ErrDuplicate).
func (uc *AssetUseCase) Register(ctx context.Context, in dto.CreateAssetRequest) (*dto.RegisterAssetResponse, error) {
	in = trimCreate(in)
	if in.Status == "" {
		in.Status = string(entity.StatusFree)
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySerial(ctx, in.SerialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	id, err := uc.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("asignar id: %w", err)
	}
	now := uc.now()
	asset := &entity.Asset{
		ID:                      id,
		Name:                    in.Name,
		Category:                entity.AssetCategory(in.Category),
		SerialNumber:            in.SerialNumber,
		Brand:                   in.Brand,
		Status:                  entity.AssetStatus(in.Status),
		Location:                in.Location,
		LastMovementDescription: "Cadastrado em " + now.Format(dateLayout),
		ImageURL:                in.ImageURL,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Add(ctx, asset); err != nil {
		return nil, err
	}
	uc.record(ctx, asset.ID, entity.MovementRegistered, asset.LastMovementDescription, now)

	uc.log.Info().Int64("asset_id", asset.ID).Str("serial", asset.SerialNumber).
		Str("category", string(asset.Category)).Msg("activo registrado")

	return &dto.RegisterAssetResponse{
		Asset:      dto.NewAssetResponse(asset),
		Navigation: dto.Navigation{Navigate: string(appcatalog.PageCatalog)},
	}, nil
}

// Replace reemplaza el activo completo conservando su ID y fecha de creación.
func (uc *AssetUseCase) Replace(ctx context.Context, id int64, in dto.ReplaceAssetRequest) (*dto.AssetResponse, error) {
	in = trimReplace(in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	current, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.repo.GetBySerial(ctx, in.SerialNumber)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	next := &entity.Asset{
		ID:                      current.ID,
		Name:                    in.Name,
		Category:                entity.AssetCategory(in.Category),
		SerialNumber:            in.SerialNumber,
		Brand:                   in.Brand,
		Status:                  entity.AssetStatus(in.Status),
		Location:                in.Location,
		LastMovementDescription: in.LastMovementDescription,
		ImageURL:                in.ImageURL,
		CreatedAt:               current.CreatedAt,
		UpdatedAt:               now,
	}
	if next.ImageURL == "" {
		next.ImageURL = current.ImageURL
	}

	kind := entity.MovementEdited
	desc := "Editado em " + now.Format(dateLayout)
	if next.Status != current.Status {
		kind = entity.MovementStatus
		desc = statusChangeDescription(current.Status, next.Status, now)
	}
	// El último movimiento resume el evento más reciente: un cambio de estado siempre lo
	// reemplaza, y el texto anterior devuelto tal cual por el formulario no cuenta como propio.
	if kind == entity.MovementStatus ||
		next.LastMovementDescription == "" ||
		next.LastMovementDescription == current.LastMovementDescription {
		next.LastMovementDescription = desc
	}
	if err := uc.repo.Replace(ctx, next); err != nil {
		return nil, err
	}
	uc.record(ctx, id, kind, desc, now)
	uc.log.Info().Int64("asset_id", id).Str("kind", string(kind)).Msg("activo reemplazado")

	out := dto.NewAssetResponse(next)
	return &out, nil
}

// ChangeStatus reemplaza el activo con un nuevo estado y deja constancia en el historial.
// Si description está vacía se genera una descripción estándar.
func (uc *AssetUseCase) ChangeStatus(ctx context.Context, id int64, status entity.AssetStatus, description string) (*entity.Asset, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	current, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	now := uc.now()
	if description == "" {
		description = statusChangeDescription(current.Status, status, now)
	}
	next := *current
	next.Status = status
	next.LastMovementDescription = description
	next.UpdatedAt = now
	if err := uc.repo.Replace(ctx, &next); err != nil {
		return nil, err
	}
	uc.record(ctx, id, entity.MovementStatus, description, now)
	return &next, nil
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewAssetResponse(a)
	return &out, nil
}

// List ejecuta la tubería filtro → presentación sobre el catálogo completo, sin sesión.
func (uc *AssetUseCase) List(ctx context.Context, c domcatalog.Criteria, groupBy bool) (*dto.CatalogViewResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ctrl := appcatalog.NewController(records)
	v := ctrl.ApplyCriteria(c.Search, c.Category, c.Status)
	if groupBy {
		v = ctrl.OnGroupToggle()
	}
	out := appcatalog.NewViewResponse("", v, ctrl.Categories())
	return &out, nil
}

// History devuelve el historial de un activo (más reciente primero).
func (uc *AssetUseCase) History(ctx context.Context, id int64, limit int) (*dto.MovementListResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.movements.ListByAsset(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{Items: dto.NewMovementResponses(list)}, nil
}

// RecentHistory devuelve la línea de tiempo global.
func (uc *AssetUseCase) RecentHistory(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movements.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{Items: dto.NewMovementResponses(list)}, nil
}

// UploadImage guarda la imagen del activo y apunta ImageURL al recurso servido por la API.
func (uc *AssetUseCase) UploadImage(ctx context.Context, id int64, contentType string, data []byte) (*dto.AssetResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrUnsupportedImage
	}
	if uc.maxImageBytes > 0 && int64(len(data)) > uc.maxImageBytes {
		return nil, domain.ErrImageTooLarge
	}
	current, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.images.PutImage(ctx, id, contentType, data); err != nil {
		return nil, fmt.Errorf("guardar imagen: %w", err)
	}
	now := uc.now()
	next := *current
	next.ImageURL = fmt.Sprintf("/api/assets/%d/image", id)
	next.UpdatedAt = now
	if err := uc.repo.Replace(ctx, &next); err != nil {
		return nil, err
	}
	uc.record(ctx, id, entity.MovementImage, "Imagem atualizada em "+now.Format(dateLayout), now)

	out := dto.NewAssetResponse(&next)
	return &out, nil
}

// Image devuelve la imagen guardada del activo.
func (uc *AssetUseCase) Image(ctx context.Context, id int64) (string, []byte, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return "", nil, err
	}
	return uc.images.GetImage(ctx, id)
}

// Import carga registros de una fuente externa (semilla, base de datos) reemplazando el catálogo.
// Los registros mal formados o con ID/serial repetido se descartan con un aviso en el log.
func (uc *AssetUseCase) Import(ctx context.Context, records []*entity.Asset) (loaded, dropped int, err error) {
	now := uc.now()
	seenID := make(map[int64]struct{}, len(records))
	seenSerial := make(map[string]struct{}, len(records))
	valid := make([]*entity.Asset, 0, len(records))

	for _, a := range records {
		if a == nil {
			dropped++
			continue
		}
		if verr := validation.Struct(dto.AssetRecordInput{
			ID:           a.ID,
			Name:         a.Name,
			Category:     string(a.Category),
			SerialNumber: a.SerialNumber,
			Status:       string(a.Status),
		}); verr != nil {
			uc.log.Warn().Int64("asset_id", a.ID).Err(verr).Msg("registro importado descartado")
			dropped++
			continue
		}
		serialKey := strings.ToUpper(strings.TrimSpace(a.SerialNumber))
		_, dupID := seenID[a.ID]
		_, dupSerial := seenSerial[serialKey]
		if dupID || dupSerial {
			uc.log.Warn().Int64("asset_id", a.ID).Str("serial", a.SerialNumber).Msg("registro importado duplicado")
			dropped++
			continue
		}
		seenID[a.ID] = struct{}{}
		seenSerial[serialKey] = struct{}{}

		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = a.CreatedAt
		}
		if a.LastMovementDescription == "" {
			a.LastMovementDescription = "Cadastrado em " + a.CreatedAt.Format(dateLayout)
		}
		valid = append(valid, a)
	}

	if err := uc.repo.Load(ctx, valid); err != nil {
		return 0, dropped, fmt.Errorf("cargar catálogo: %w", err)
	}
	return len(valid), dropped, nil
}

func (uc *AssetUseCase) get(ctx context.Context, id int64) (*entity.Asset, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// record agrega un evento al historial. Un fallo del historial no revierte la operación.
func (uc *AssetUseCase) record(ctx context.Context, assetID int64, kind entity.MovementKind, desc string, at time.Time) {
	m := &entity.Movement{
		ID:          uuid.NewString(),
		AssetID:     assetID,
		Kind:        kind,
		Description: desc,
		At:          at,
	}
	if err := uc.movements.Append(ctx, m); err != nil {
		uc.log.Error().Err(err).Int64("asset_id", assetID).Msg("registrar movimiento")
	}
}

func statusChangeDescription(from, to entity.AssetStatus, at time.Time) string {
	return fmt.Sprintf("Status alterado de %s para %s em %s", from.Label(), to.Label(), at.Format(dateLayout))
}

func trimCreate(in dto.CreateAssetRequest) dto.CreateAssetRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.SerialNumber = strings.TrimSpace(in.SerialNumber)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}

func trimReplace(in dto.ReplaceAssetRequest) dto.ReplaceAssetRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.SerialNumber = strings.TrimSpace(in.SerialNumber)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}
