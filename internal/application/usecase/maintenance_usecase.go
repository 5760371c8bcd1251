package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/domain"
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// MaintenanceUseCase órdenes de mantenimiento. Abrir una orden sobre un activo libre o en uso
// lo pasa a "manutencao"; cerrar la última orden abierta lo devuelve a "livre".
type MaintenanceUseCase struct {
	repo   repository.MaintenanceRepository
	assets *AssetUseCase
	log    zerolog.Logger
	now    func() time.Time
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, assets *AssetUseCase, log zerolog.Logger) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		repo:   repo,
		assets: assets,
		log:    log.With().Str("component", "maintenance").Logger(),
		now:    time.Now,
	}
}

// Create abre una orden agendada para un activo existente.
func (uc *MaintenanceUseCase) Create(ctx context.Context, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	in.Responsible = strings.TrimSpace(in.Responsible)
	in.Description = strings.TrimSpace(in.Description)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validateCost(in.Cost); err != nil {
		return nil, err
	}
	asset, err := uc.assets.get(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status == entity.StatusDecommissioned {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	t := &entity.MaintenanceTicket{
		ID:          uuid.NewString(),
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		Type:        entity.MaintenanceType(in.Type),
		Status:      entity.MaintenanceScheduled,
		ScheduledAt: in.ScheduledAt,
		Responsible: in.Responsible,
		Description: in.Description,
		Cost:        in.Cost,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	if asset.Status == entity.StatusFree || asset.Status == entity.StatusInUse {
		desc := "Em manutenção desde " + in.ScheduledAt.Format(dateLayout)
		if _, err := uc.assets.ChangeStatus(ctx, asset.ID, entity.StatusInMaintenance, desc); err != nil {
			if derr := uc.repo.Delete(ctx, t.ID); derr != nil {
				uc.log.Error().Err(derr).Str("ticket_id", t.ID).Msg("deshacer orden de mantenimiento")
			}
			return nil, fmt.Errorf("mantenimiento: actualizar estado del activo: %w", err)
		}
	}
	uc.log.Info().Str("ticket_id", t.ID).Int64("asset_id", t.AssetID).Str("type", string(t.Type)).Msg("orden de mantenimiento creada")
	return toMaintenanceResponse(t), nil
}

// UpdateStatus cambia el estado de una orden abierta. Las órdenes cerradas no se reabren.
func (uc *MaintenanceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateMaintenanceStatusRequest) (*dto.MaintenanceResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validateCost(in.Cost); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !t.Status.Open() {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	t.Status = entity.MaintenanceStatus(in.Status)
	if t.Status == entity.MaintenanceCompleted {
		t.CompletedAt = &now
	}
	if in.Cost != nil {
		t.Cost = in.Cost
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	t.UpdatedAt = now
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	if !t.Status.Open() {
		if err := uc.releaseAsset(ctx, t, now); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Str("ticket_id", t.ID).Str("status", string(t.Status)).Msg("orden de mantenimiento actualizada")
	return toMaintenanceResponse(t), nil
}

// List filtra órdenes por nombre del activo (subcadena sin distinguir mayúsculas) y estado exacto.
func (uc *MaintenanceUseCase) List(ctx context.Context, search, status string) (*dto.MaintenanceListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	needle := fold.String(search)

	out := &dto.MaintenanceListResponse{Items: make([]dto.MaintenanceResponse, 0, len(all)), TotalCost: decimal.Zero}
	for _, t := range all {
		if !domcatalog.IsWildcard(status) && string(t.Status) != status {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(t.AssetName), needle) {
			continue
		}
		out.Items = append(out.Items, *toMaintenanceResponse(t))
		if t.Cost != nil {
			out.TotalCost = out.TotalCost.Add(*t.Cost)
		}
	}
	out.Total = len(out.Items)
	return out, nil
}

// Import carga órdenes externas; descarta las de tipo/estado inválido o activo inexistente.
func (uc *MaintenanceUseCase) Import(ctx context.Context, tickets []*entity.MaintenanceTicket) (loaded, dropped int, err error) {
	valid := make([]*entity.MaintenanceTicket, 0, len(tickets))
	for _, t := range tickets {
		if t == nil || !t.Type.Valid() || !t.Status.Valid() {
			dropped++
			continue
		}
		a, err := uc.assets.repo.GetByID(ctx, t.AssetID)
		if err != nil {
			return 0, dropped, err
		}
		if a == nil {
			uc.log.Warn().Str("ticket_id", t.ID).Int64("asset_id", t.AssetID).Msg("orden importada sin activo, descartada")
			dropped++
			continue
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.AssetName == "" {
			t.AssetName = a.Name
		}
		valid = append(valid, t)
	}
	if err := uc.repo.Load(ctx, valid); err != nil {
		return 0, dropped, fmt.Errorf("cargar mantenimientos: %w", err)
	}
	return len(valid), dropped, nil
}

// releaseAsset devuelve el activo a "livre" si ya no quedan órdenes abiertas sobre él.
func (uc *MaintenanceUseCase) releaseAsset(ctx context.Context, closed *entity.MaintenanceTicket, now time.Time) error {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range all {
		if t.AssetID == closed.AssetID && t.ID != closed.ID && t.Status.Open() {
			return nil
		}
	}
	asset, err := uc.assets.get(ctx, closed.AssetID)
	if err != nil {
		return err
	}
	if asset.Status != entity.StatusInMaintenance {
		return nil
	}
	desc := "Manutenção concluída em " + now.Format(dateLayout)
	if closed.Status == entity.MaintenanceCancelled {
		desc = "Manutenção cancelada em " + now.Format(dateLayout)
	}
	_, err = uc.assets.ChangeStatus(ctx, asset.ID, entity.StatusFree, desc)
	return err
}

func validateCost(c *decimal.Decimal) error {
	if c != nil && c.IsNegative() {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "cost", Rule: "gte=0"}}}
	}
	return nil
}

func toMaintenanceResponse(t *entity.MaintenanceTicket) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:          t.ID,
		AssetID:     t.AssetID,
		AssetName:   t.AssetName,
		Type:        string(t.Type),
		Status:      string(t.Status),
		ScheduledAt: t.ScheduledAt,
		CompletedAt: t.CompletedAt,
		Responsible: t.Responsible,
		Description: t.Description,
		Cost:        t.Cost,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
