// Package memory implementa el almacén de borradores en memoria del proceso
// (desarrollo y tests). Los borradores se pierden al reiniciar.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var (
	_ repository.DraftStore   = (*DraftStore)(nil)
	_ repository.DraftSweeper = (*DraftStore)(nil)
)

type entry struct {
	data    []byte
	savedAt time.Time
}

// DraftStore guarda el documento serializado: cada Load devuelve una copia independiente.
type DraftStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewDraftStore construye el almacén. ttl <= 0 desactiva el vencimiento.
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{entries: make(map[string]entry), ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *DraftStore) WithClock(now func() time.Time) *DraftStore {
	s.now = now
	return s
}

// Load devuelve nil, nil si no hay borrador o está vencido.
func (s *DraftStore) Load(_ context.Context, sessionID string) (*wizard.Record, error) {
	s.mu.RLock()
	e, ok := s.entries[wizard.DraftKey(sessionID)]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return nil, nil
	}
	var rec wizard.Record
	if err := json.Unmarshal(e.data, &rec); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &rec, nil
}

// Save sobrescribe el documento completo.
func (s *DraftStore) Save(_ context.Context, sessionID string, rec *wizard.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	s.mu.Lock()
	s.entries[wizard.DraftKey(sessionID)] = entry{data: data, savedAt: s.now()}
	s.mu.Unlock()
	return nil
}

// Clear borra el borrador de la sesión.
func (s *DraftStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, wizard.DraftKey(sessionID))
	s.mu.Unlock()
	return nil
}

// DeleteExpired borra los borradores sin guardar desde hace más de olderThan.
func (s *DraftStore) DeleteExpired(_ context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for k, e := range s.entries {
		if now.Sub(e.savedAt) > olderThan {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}

// Len cantidad de borradores guardados, vencidos incluidos.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *DraftStore) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.savedAt) > s.ttl
}
