package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/seed"
)

var _ seed.Source = (*AssetSource)(nil)

const selectAssets = `
	SELECT id, name, category, serial_number, COALESCE(brand, ''), status, COALESCE(location, ''),
	       COALESCE(last_movement_description, ''), COALESCE(image_url, ''), created_at, updated_at
	FROM assets
	ORDER BY created_at DESC, id DESC`

const selectMaintenance = `
	SELECT id::text, asset_id, type, status, scheduled_at, completed_at, COALESCE(responsible, ''),
	       COALESCE(description, ''), cost, COALESCE(notes, ''), created_at, updated_at
	FROM maintenance_tickets
	ORDER BY created_at DESC`

// AssetSource importa activos y órdenes de mantenimiento desde PostgreSQL. Solo ejecuta SELECT.
// La validación de cada registro queda a cargo del importador.
type AssetSource struct {
	q   Querier
	log zerolog.Logger
}

// NewAssetSource construye la fuente. Pasar pool o tx (Querier).
func NewAssetSource(q Querier, log zerolog.Logger) *AssetSource {
	return &AssetSource{q: q, log: log}
}

func (s *AssetSource) Name() string { return "postgres" }

// LoadAssets lee la tabla assets completa, más reciente primero.
func (s *AssetSource) LoadAssets(ctx context.Context) ([]*entity.Asset, error) {
	rows, err := s.q.Query(ctx, selectAssets)
	if err != nil {
		return nil, fmt.Errorf("select assets: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows assets: %w", err)
	}
	return list, nil
}

// LoadMaintenance lee la tabla maintenance_tickets. Si la tabla no existe devuelve lista vacía.
func (s *AssetSource) LoadMaintenance(ctx context.Context) ([]*entity.MaintenanceTicket, error) {
	rows, err := s.q.Query(ctx, selectMaintenance)
	if err != nil {
		if isUndefinedTable(err) {
			s.log.Warn().Msg("tabla maintenance_tickets inexistente, se omite")
			return []*entity.MaintenanceTicket{}, nil
		}
		return nil, fmt.Errorf("select maintenance: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.MaintenanceTicket, 0)
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		// pgx puede diferir el error de la consulta hasta la iteración.
		if isUndefinedTable(err) {
			s.log.Warn().Msg("tabla maintenance_tickets inexistente, se omite")
			return []*entity.MaintenanceTicket{}, nil
		}
		return nil, fmt.Errorf("rows maintenance: %w", err)
	}
	return list, nil
}

func scanAsset(scan func(dest ...any) error) (*entity.Asset, error) {
	var a entity.Asset
	var category, status string
	err := scan(
		&a.ID, &a.Name, &category, &a.SerialNumber, &a.Brand, &status, &a.Location,
		&a.LastMovementDescription, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Category = entity.AssetCategory(category)
	a.Status = entity.AssetStatus(status)
	return &a, nil
}

func scanTicket(scan func(dest ...any) error) (*entity.MaintenanceTicket, error) {
	var t entity.MaintenanceTicket
	var typ, status string
	var completedAt *time.Time
	var cost decimal.NullDecimal
	err := scan(
		&t.ID, &t.AssetID, &typ, &status, &t.ScheduledAt, &completedAt, &t.Responsible,
		&t.Description, &cost, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Type = entity.MaintenanceType(typ)
	t.Status = entity.MaintenanceStatus(status)
	t.CompletedAt = completedAt
	if cost.Valid {
		c := cost.Decimal
		t.Cost = &c
	}
	return &t, nil
}
