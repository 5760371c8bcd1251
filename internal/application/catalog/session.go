package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// SnapshotSource fuente de la lista completa de activos con la que se inicia una sesión.
type SnapshotSource interface {
	List(ctx context.Context) ([]*entity.Asset, error)
}

type session struct {
	mu       sync.Mutex
	ctrl     *Controller
	lastSeen time.Time
}

// SessionManager mantiene un Controller por sesión de catálogo. Cada sesión se crea al abrir
// la página y se destruye al salir de ella (Close) o al expirar por inactividad.
// Las llamadas sobre una misma sesión se serializan; sesiones distintas no se bloquean entre sí.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
	source   SnapshotSource
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSessionManager construye el administrador. ttl <= 0 desactiva la expiración.
func NewSessionManager(source SnapshotSource, ttl time.Duration, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*session),
		source:   source,
		ttl:      ttl,
		now:      time.Now,
		log:      log.With().Str("component", "catalog_sessions").Logger(),
	}
}

// Open crea una sesión con una instantánea del catálogo y devuelve su ID y la vista inicial.
func (m *SessionManager) Open(ctx context.Context) (string, View, []entity.AssetCategory, error) {
	records, err := m.source.List(ctx)
	if err != nil {
		return "", View{}, nil, fmt.Errorf("catálogo: instantánea: %w", err)
	}
	ctrl := NewController(records)
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &session{ctrl: ctrl, lastSeen: m.now()}
	open := len(m.sessions)
	m.mu.Unlock()

	m.log.Debug().Str("session_id", id).Int("assets", len(records)).Int("open", open).Msg("sesión abierta")
	return id, ctrl.View(), ctrl.Categories(), nil
}

// Do ejecuta fn sobre el controlador de la sesión con acceso exclusivo.
func (m *SessionManager) Do(id string, fn func(*Controller) View) (View, []entity.AssetCategory, error) {
	s, err := m.get(id)
	if err != nil {
		return View{}, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = m.now()
	v := fn(s.ctrl)
	return v, s.ctrl.Categories(), nil
}

// Refresh vuelve a leer la lista completa y recalcula la sesión con sus criterios actuales.
func (m *SessionManager) Refresh(ctx context.Context, id string) (View, []entity.AssetCategory, error) {
	if _, err := m.get(id); err != nil {
		return View{}, nil, err
	}
	records, err := m.source.List(ctx)
	if err != nil {
		return View{}, nil, fmt.Errorf("catálogo: instantánea: %w", err)
	}
	return m.Do(id, func(c *Controller) View { return c.Reload(records) })
}

// Close destruye la sesión.
func (m *SessionManager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.log.Debug().Str("session_id", id).Msg("sesión cerrada")
	return nil
}

// Len número de sesiones abiertas.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep elimina las sesiones inactivas por más de ttl y devuelve cuántas eliminó.
func (m *SessionManager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		expired := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if expired {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info().Int("removed", removed).Int("open", len(m.sessions)).Msg("sesiones expiradas eliminadas")
	}
	return removed
}

// Run barre sesiones expiradas periódicamente hasta que ctx se cancele.
func (m *SessionManager) Run(ctx context.Context, every time.Duration) {
	if m.ttl <= 0 || every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *SessionManager) get(id string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}
