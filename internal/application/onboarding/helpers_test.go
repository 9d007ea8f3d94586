package onboarding_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

// ── Mocks ─────────────────────────────────────────────────────────────────────

type orgServiceMock struct{ mock.Mock }

func (m *orgServiceMock) CreateOrganization(ctx context.Context, in dto.CreateOrganizationRequest) (*entity.Organization, error) {
	args := m.Called(ctx, in)
	org, _ := args.Get(0).(*entity.Organization)
	return org, args.Error(1)
}

type publisherMock struct{ mock.Mock }

func (m *publisherMock) PublishOrganizationCreated(ctx context.Context, org *entity.Organization) error {
	return m.Called(ctx, org).Error(0)
}

type metricsSpy struct {
	saved    []wizard.Step
	skipped  []wizard.Step
	statuses []appon.Status
}

func (m *metricsSpy) StepSaved(s wizard.Step)   { m.saved = append(m.saved, s) }
func (m *metricsSpy) StepSkipped(s wizard.Step) { m.skipped = append(m.skipped, s) }
func (m *metricsSpy) SubmissionFinished(st appon.Status, _ time.Duration) {
	m.statuses = append(m.statuses, st)
}

func strPtr(s string) *string { return &s }

// validBROrganization sección organization-info válida para Brasil.
func validBROrganization() dto.OrganizationInfoRequest {
	return dto.OrganizationInfoRequest{
		Name:       "Acme Imóveis",
		Slug:       "acme-imoveis",
		City:       "São Paulo",
		State:      "SP",
		Country:    "br",
		Type:       "real_estate_agency",
		TaxID:      strPtr("12.345.678/0001-90"),
		PostalCode: strPtr("01310-100"),
	}
}
