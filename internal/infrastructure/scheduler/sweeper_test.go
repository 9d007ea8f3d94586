package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/memory"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/scheduler"
)

type recorderSpy struct{ total int }

func (r *recorderSpy) DraftsSwept(n int) { r.total += n }

type failingSweeper struct{}

func (failingSweeper) DeleteExpired(context.Context, time.Duration) (int, error) {
	return 0, errors.New("db down")
}

// ── RunOnce ─────────────────────────────────────────────────────────────────

func TestDraftSweeper_RunOnce_BorraSoloLosVencidos(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clock := now.Add(-80 * time.Hour)

	store := memory.NewDraftStore(72*time.Hour).WithClock(func() time.Time { return clock })
	require.NoError(t, store.Save(ctx, "vieja", wizard.NewRecord(clock)))
	clock = now.Add(-1 * time.Hour)
	require.NoError(t, store.Save(ctx, "nueva", wizard.NewRecord(clock)))

	rec := &recorderSpy{}
	sw := scheduler.NewDraftSweeper(store, 72*time.Hour, rec, nil)
	n, err := sw.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, rec.total)
	assert.Equal(t, 1, store.Len())
}

func TestDraftSweeper_RunOnce_PropagaError(t *testing.T) {
	sw := scheduler.NewDraftSweeper(failingSweeper{}, time.Hour, nil, nil)
	_, err := sw.RunOnce(context.Background())
	assert.Error(t, err)
}

// ── Start ───────────────────────────────────────────────────────────────────

func TestDraftSweeper_Start_ExpresionInvalida(t *testing.T) {
	sw := scheduler.NewDraftSweeper(failingSweeper{}, time.Hour, nil, nil)
	assert.Error(t, sw.Start("cada rato"))
}

func TestDraftSweeper_StartStop(t *testing.T) {
	sw := scheduler.NewDraftSweeper(memory.NewDraftStore(time.Hour), time.Hour, nil, nil)
	require.NoError(t, sw.Start("@every 1h"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sw.Stop(ctx)
}
