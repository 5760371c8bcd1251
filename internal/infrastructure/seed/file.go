package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// File formato del archivo de semilla.
//
//	assets:
//	  - id: 1
//	    name: Dell Computador 001
//	    category: Computadores
//	    serial: SN000001
//	    status: livre
//	maintenance:
//	  - asset_id: 1
//	    type: corretiva
//	    status: agendada
//	    cost: "120.50"
type File struct {
	Assets      []AssetRecord       `yaml:"assets"`
	Maintenance []MaintenanceRecord `yaml:"maintenance,omitempty"`
}

// AssetRecord activo tal como aparece en el archivo.
type AssetRecord struct {
	ID           int64     `yaml:"id"`
	Name         string    `yaml:"name"`
	Category     string    `yaml:"category"`
	SerialNumber string    `yaml:"serial"`
	Brand        string    `yaml:"brand,omitempty"`
	Status       string    `yaml:"status"`
	Location     string    `yaml:"location,omitempty"`
	LastMovement string    `yaml:"last_movement,omitempty"`
	ImageURL     string    `yaml:"image_url,omitempty"`
	CreatedAt    time.Time `yaml:"created_at,omitempty"`
}

// MaintenanceRecord orden de mantenimiento tal como aparece en el archivo.
// Cost es texto para no perder precisión decimal.
type MaintenanceRecord struct {
	ID          string     `yaml:"id,omitempty"`
	AssetID     int64      `yaml:"asset_id"`
	Type        string     `yaml:"type"`
	Status      string     `yaml:"status"`
	ScheduledAt time.Time  `yaml:"scheduled_at"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty"`
	Responsible string     `yaml:"responsible,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Cost        string     `yaml:"cost,omitempty"`
	Notes       string     `yaml:"notes,omitempty"`
}

// ReadFile lee y decodifica un archivo de semilla.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("seed: decodificar %s: %w", path, err)
	}
	return &f, nil
}

// WriteFile codifica f en YAML y lo escribe en path.
func WriteFile(path string, f *File) error {
	raw, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("seed: codificar: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("seed: escribir %s: %w", path, err)
	}
	return nil
}

// NewFile construye el archivo a partir de entidades.
func NewFile(assets []*entity.Asset, tickets []*entity.MaintenanceTicket) *File {
	f := &File{
		Assets:      make([]AssetRecord, 0, len(assets)),
		Maintenance: make([]MaintenanceRecord, 0, len(tickets)),
	}
	for _, a := range assets {
		f.Assets = append(f.Assets, AssetRecord{
			ID:           a.ID,
			Name:         a.Name,
			Category:     string(a.Category),
			SerialNumber: a.SerialNumber,
			Brand:        a.Brand,
			Status:       string(a.Status),
			Location:     a.Location,
			LastMovement: a.LastMovementDescription,
			ImageURL:     a.ImageURL,
			CreatedAt:    a.CreatedAt.UTC(),
		})
	}
	for _, t := range tickets {
		rec := MaintenanceRecord{
			ID:          t.ID,
			AssetID:     t.AssetID,
			Type:        string(t.Type),
			Status:      string(t.Status),
			ScheduledAt: t.ScheduledAt.UTC(),
			CompletedAt: t.CompletedAt,
			Responsible: t.Responsible,
			Description: t.Description,
			Notes:       t.Notes,
		}
		if t.Cost != nil {
			rec.Cost = t.Cost.String()
		}
		f.Maintenance = append(f.Maintenance, rec)
	}
	return f
}

// FileSource fuente respaldada por un archivo YAML. El archivo se lee una vez.
type FileSource struct {
	path string
	file *File
}

// NewFileSource lee el archivo y construye la fuente.
func NewFileSource(path string) (*FileSource, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, file: f}, nil
}

func (s *FileSource) Name() string { return "yaml:" + s.path }

// LoadAssets convierte los registros del archivo. La validación queda a cargo del importador.
func (s *FileSource) LoadAssets(_ context.Context) ([]*entity.Asset, error) {
	out := make([]*entity.Asset, 0, len(s.file.Assets))
	for _, r := range s.file.Assets {
		out = append(out, &entity.Asset{
			ID:                      r.ID,
			Name:                    r.Name,
			Category:                entity.AssetCategory(r.Category),
			SerialNumber:            r.SerialNumber,
			Brand:                   r.Brand,
			Status:                  entity.AssetStatus(r.Status),
			Location:                r.Location,
			LastMovementDescription: r.LastMovement,
			ImageURL:                r.ImageURL,
			CreatedAt:               r.CreatedAt,
			UpdatedAt:               r.CreatedAt,
		})
	}
	return out, nil
}

// LoadMaintenance convierte las órdenes del archivo. Un costo ilegible es error de la fuente.
func (s *FileSource) LoadMaintenance(_ context.Context) ([]*entity.MaintenanceTicket, error) {
	out := make([]*entity.MaintenanceTicket, 0, len(s.file.Maintenance))
	for i, r := range s.file.Maintenance {
		t := &entity.MaintenanceTicket{
			ID:          r.ID,
			AssetID:     r.AssetID,
			Type:        entity.MaintenanceType(r.Type),
			Status:      entity.MaintenanceStatus(r.Status),
			ScheduledAt: r.ScheduledAt,
			CompletedAt: r.CompletedAt,
			Responsible: r.Responsible,
			Description: r.Description,
			Notes:       r.Notes,
			CreatedAt:   r.ScheduledAt,
			UpdatedAt:   r.ScheduledAt,
		}
		if r.Cost != "" {
			cost, err := decimal.NewFromString(r.Cost)
			if err != nil {
				return nil, fmt.Errorf("seed: maintenance[%d].cost: %w", i, err)
			}
			t.Cost = &cost
		}
		out = append(out, t)
	}
	return out, nil
}
