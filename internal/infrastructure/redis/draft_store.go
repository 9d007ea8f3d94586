// Package redis implementa el almacén de borradores sobre Redis. El vencimiento
// lo aplica Redis con el TTL de la clave, renovado en cada guardado.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.DraftStore = (*DraftStore)(nil)

// DraftStore guarda el documento JSON bajo onboarding.DraftKey(sessionID).
type DraftStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient abre el cliente desde una URL redis:// y verifica la conexión.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewDraftStore construye el adaptador. ttl <= 0 guarda sin vencimiento.
func NewDraftStore(client *goredis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Load devuelve nil, nil si la clave no existe (nunca creada o vencida).
func (s *DraftStore) Load(ctx context.Context, sessionID string) (*wizard.Record, error) {
	data, err := s.client.Get(ctx, wizard.DraftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
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

// Save sobrescribe el documento y renueva el TTL.
func (s *DraftStore) Save(ctx context.Context, sessionID string, rec *wizard.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, wizard.DraftKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear borra la clave de la sesión.
func (s *DraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, wizard.DraftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
