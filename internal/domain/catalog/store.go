package catalog

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// Store dueño de la secuencia de activos de una sesión y de los criterios activos.
// No es seguro para uso concurrente: lo muta solo el controlador de página que lo posee.
type Store struct {
	assets   []*entity.Asset
	criteria Criteria
	groupBy  bool
}

// NewStore construye un almacén vacío sin criterios.
func NewStore() *Store {
	return &Store{criteria: NoCriteria()}
}

// SetAssets reemplaza la secuencia completa. No valida más allá del tipo.
func (s *Store) SetAssets(records []*entity.Asset) {
	s.assets = append(make([]*entity.Asset, 0, len(records)), records...)
}

// Assets devuelve la secuencia completa en orden de inserción.
func (s *Store) Assets() []*entity.Asset {
	return append(make([]*entity.Asset, 0, len(s.assets)), s.assets...)
}

// SetCriteria guarda los tres campos de filtro; vacío o "all" significa sin restricción.
func (s *Store) SetCriteria(search, category, status string) {
	s.criteria = Criteria{Search: search, Category: category, Status: status}
}

func (s *Store) Criteria() Criteria { return s.criteria }

// SetGroupBy fija el modo de agrupación.
func (s *Store) SetGroupBy(flag bool) { s.groupBy = flag }

func (s *Store) GroupBy() bool { return s.groupBy }
