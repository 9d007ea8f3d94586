package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var (
	_ repository.DraftStore   = (*DraftStore)(nil)
	_ repository.DraftSweeper = (*DraftStore)(nil)
)

// DraftStore borradores del asistente en la tabla onboarding_drafts (JSONB).
// Un borrador con updated_at anterior a now()-ttl se lee como ausente; el barrido lo borra después.
// El corte se calcula con el reloj de la base, el mismo que sella updated_at.
type DraftStore struct {
	q   Querier
	ttl time.Duration
}

// NewDraftStore construye el adaptador. Pasar pool o tx (Querier).
func NewDraftStore(q Querier, ttl time.Duration) *DraftStore {
	return &DraftStore{q: q, ttl: ttl}
}

// Load devuelve nil, nil si no hay borrador vigente.
func (s *DraftStore) Load(ctx context.Context, sessionID string) (*wizard.Record, error) {
	query := `SELECT data FROM onboarding_drafts WHERE draft_key = $1
		AND ($2::double precision <= 0 OR updated_at >= now() - $2::double precision * interval '1 second')`
	var data []byte
	err := s.q.QueryRow(ctx, query, wizard.DraftKey(sessionID), s.ttl.Seconds()).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var rec wizard.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &rec, nil
}

// Save sobrescribe el documento completo (upsert).
func (s *DraftStore) Save(ctx context.Context, sessionID string, rec *wizard.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	query := `
		INSERT INTO onboarding_drafts (draft_key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (draft_key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, wizard.DraftKey(sessionID), data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear borra el borrador de la sesión.
func (s *DraftStore) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM onboarding_drafts WHERE draft_key = $1`, wizard.DraftKey(sessionID)); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// DeleteExpired borra los borradores sin guardar desde hace más de olderThan.
func (s *DraftStore) DeleteExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	query := `DELETE FROM onboarding_drafts WHERE updated_at < now() - $1::double precision * interval '1 second'`
	tag, err := s.q.Exec(ctx, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("delete expired drafts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
