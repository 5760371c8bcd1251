package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var (
	mockCategories = []struct {
		category entity.AssetCategory
		noun     string
	}{
		{entity.CategoryComputers, "Computador"},
		{entity.CategoryMonitors, "Monitor"},
		{entity.CategoryPrinters, "Impressora"},
		{entity.CategoryChairs, "Cadeira"},
	}
	mockStatuses = []entity.AssetStatus{
		entity.StatusFree, entity.StatusInUse, entity.StatusInService, entity.StatusInMaintenance,
	}
	mockBrands    = []string{"Dell", "HP", "Lenovo", "Samsung", "LG", "Canon", "Epson"}
	mockLocations = []string{"Administrativo", "TI", "Vendas", "RH"}
	mockStart     = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// MockSource genera un catálogo de prueba. Con la misma semilla y el mismo now
// produce siempre los mismos registros.
type MockSource struct {
	Count int
	Seed  uint64
	Now   time.Time
}

// NewMockSource construye la fuente. now cero usa la hora actual.
func NewMockSource(count int, seed uint64, now time.Time) *MockSource {
	if now.IsZero() {
		now = time.Now()
	}
	return &MockSource{Count: count, Seed: seed, Now: now}
}

func (s *MockSource) Name() string { return "mock" }

// LoadAssets genera Count activos con IDs 1..Count.
func (s *MockSource) LoadAssets(_ context.Context) ([]*entity.Asset, error) {
	return GenerateAssets(s.Count, s.Seed, s.Now), nil
}

// LoadMaintenance genera una orden en curso por cada activo en manutenção.
func (s *MockSource) LoadMaintenance(_ context.Context) ([]*entity.MaintenanceTicket, error) {
	return GenerateMaintenance(GenerateAssets(s.Count, s.Seed, s.Now), s.Seed), nil
}

// GenerateAssets genera count activos deterministas.
func GenerateAssets(count int, seed uint64, now time.Time) []*entity.Asset {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	span := now.Sub(mockStart)
	if span <= 0 {
		span = time.Hour
	}

	out := make([]*entity.Asset, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		cat := mockCategories[r.IntN(len(mockCategories))]
		status := mockStatuses[r.IntN(len(mockStatuses))]
		brand := mockBrands[r.IntN(len(mockBrands))]
		location := mockLocations[r.IntN(len(mockLocations))]
		at := mockStart.Add(time.Duration(r.Int64N(int64(span))))

		out = append(out, &entity.Asset{
			ID:                      int64(i),
			Name:                    fmt.Sprintf("%s %s %03d", brand, cat.noun, i),
			Category:                cat.category,
			SerialNumber:            fmt.Sprintf("SN%06d", i),
			Brand:                   brand,
			Status:                  status,
			Location:                location,
			LastMovementDescription: "Movimentado em " + at.Format("02/01/2006"),
			ImageURL:                fmt.Sprintf("https://picsum.photos/300/200?random=%d", i),
			CreatedAt:               at,
			UpdatedAt:               at,
		})
	}
	return out
}

// GenerateMaintenance genera órdenes "em_andamento" para los activos en manutenção.
// Los IDs se derivan del activo para que sean estables entre ejecuciones.
func GenerateMaintenance(assets []*entity.Asset, seed uint64) []*entity.MaintenanceTicket {
	r := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	types := []entity.MaintenanceType{entity.MaintenancePreventive, entity.MaintenanceCorrective, entity.MaintenancePredictive}

	out := make([]*entity.MaintenanceTicket, 0)
	for _, a := range assets {
		if a.Status != entity.StatusInMaintenance {
			continue
		}
		cost := decimal.New(int64(5000+r.IntN(75000)), -2)
		out = append(out, &entity.MaintenanceTicket{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "mock-maintenance-%d", a.ID)).String(),
			AssetID:     a.ID,
			AssetName:   a.Name,
			Type:        types[r.IntN(len(types))],
			Status:      entity.MaintenanceInProgress,
			ScheduledAt: a.UpdatedAt,
			Responsible: "Equipe " + a.Location,
			Description: "Manutenção de " + a.Name,
			Cost:        &cost,
			CreatedAt:   a.UpdatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}
	return out
}
