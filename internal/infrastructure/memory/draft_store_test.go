package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/memory"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestDraftStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := memory.NewDraftStore(time.Hour)

	rec, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, rec)

	in := wizard.NewRecord(time.Now())
	in.Draft.Organization = &entity.OrganizationInfo{Name: "Acme", Slug: "acme"}
	require.NoError(t, s.Save(ctx, "s1", in))

	got, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.Draft.Organization.Slug)

	got.Draft.Organization.Slug = "cambiado"
	again, _ := s.Load(ctx, "s1")
	assert.Equal(t, "acme", again.Draft.Organization.Slug, "Load devuelve copias")

	require.NoError(t, s.Clear(ctx, "s1"))
	require.NoError(t, s.Clear(ctx, "s1"), "borrar dos veces no falla")
	rec, _ = s.Load(ctx, "s1")
	assert.Nil(t, rec)
}

func TestDraftStore_Vencimiento(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := memory.NewDraftStore(72 * time.Hour).WithClock(c.now)

	require.NoError(t, s.Save(ctx, "viejo", wizard.NewRecord(c.t)))
	c.t = c.t.Add(48 * time.Hour)
	require.NoError(t, s.Save(ctx, "nuevo", wizard.NewRecord(c.t)))

	c.t = c.t.Add(25 * time.Hour)
	rec, err := s.Load(ctx, "viejo")
	require.NoError(t, err)
	assert.Nil(t, rec, "vencido se lee como ausente")
	rec, _ = s.Load(ctx, "nuevo")
	assert.NotNil(t, rec)

	n, err := s.DeleteExpired(ctx, 72*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())
}
