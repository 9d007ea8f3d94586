package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

// DraftStore define el puerto de persistencia del borrador del asistente (DIP).
// El documento se guarda entero bajo onboarding.DraftKey(sessionID).
// Las implementaciones viven en infrastructure (memoria, Redis, PostgreSQL).
type DraftStore interface {
	// Load devuelve nil, nil si no hay borrador o si está vencido.
	Load(ctx context.Context, sessionID string) (*onboarding.Record, error)
	Save(ctx context.Context, sessionID string, rec *onboarding.Record) error
	// Clear no falla si el borrador no existe.
	Clear(ctx context.Context, sessionID string) error
}

// DraftSweeper lo implementan los almacenes sin vencimiento nativo.
// La antigüedad se mide con el reloj del propio almacén.
type DraftSweeper interface {
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int, error)
}
