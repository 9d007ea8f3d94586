package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/postgres"
)

// organizationArgs un comodín por cada columna del INSERT de organizations.
func organizationArgs() []interface{} {
	args := make([]interface{}, 22)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func sampleOrganization() *entity.Organization {
	return &entity.Organization{
		ID:            "00000000-0000-0000-0000-000000000001",
		Name:          "Acme",
		Slug:          "acme",
		Country:       "BR",
		PlanID:        "starter",
		BillingCycle:  entity.BillingMonthly,
		PlanPrice:     decimal.NewFromInt(29),
		PaymentMethod: entity.PaymentPix,
		Notifications: entity.DefaultNotifications(),
		OwnerID:       "user-1",
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestOrganizationRepo_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO organizations").
		WithArgs(organizationArgs()...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := postgres.NewOrganizationRepository(mock).Create(context.Background(), sampleOrganization())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepo_SlugDuplicado(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO organizations").
		WithArgs(organizationArgs()...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "organizations_slug_key"})

	err := postgres.NewOrganizationRepository(mock).Create(context.Background(), sampleOrganization())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepo_OtroErrorNoEsDuplicado(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO organizations").
		WithArgs(organizationArgs()...).
		WillReturnError(errors.New("conn reset"))

	err := postgres.NewOrganizationRepository(mock).Create(context.Background(), sampleOrganization())
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
}

// ── Invitaciones ────────────────────────────────────────────────────────────

func TestOrganizationRepo_InvitacionRepetida(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO organization_invitations").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "ana@acme.com", "agent", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "organization_invitations_email_key"})

	err := postgres.NewOrganizationRepository(mock).AddInvitations(context.Background(), []*entity.Invitation{
		{ID: "i1", OrganizationID: "o1", Email: "ana@acme.com", Role: entity.RoleAgent, CreatedAt: time.Now()},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
