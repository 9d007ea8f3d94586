package orgservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/orgservice"
)

func strPtr(s string) *string { return &s }

func sampleRequest() dto.CreateOrganizationRequest {
	return dto.CreateOrganizationRequest{
		Name:          "Acme Imóveis",
		Slug:          "acme-imoveis",
		Country:       "BR",
		TaxID:         strPtr("12.345.678/0001-90"),
		PlanID:        "professional",
		BillingCycle:  "yearly",
		PaymentMethod: "pix",
		Notifications: entity.DefaultNotifications(),
		Properties:    []dto.PropertyRequest{{Name: "Torre A", Units: 10, Kind: "residential"}},
		Invitations:   []dto.InvitationRequest{{Email: "Ana@Acme.com", Role: "agent"}},
		OwnerID:       "user-1",
	}
}

// ── Local ─────────────────────────────────────────────────────────────────────

type orgRepoMock struct{ mock.Mock }

func (m *orgRepoMock) Create(ctx context.Context, org *entity.Organization) error {
	return m.Called(ctx, org).Error(0)
}
func (m *orgRepoMock) AddProperties(ctx context.Context, props []*entity.Property) error {
	return m.Called(ctx, props).Error(0)
}
func (m *orgRepoMock) AddInvitations(ctx context.Context, invs []*entity.Invitation) error {
	return m.Called(ctx, invs).Error(0)
}

// fakeTx ejecuta fn con el mock, sin transacción real.
type fakeTx struct{ repo repository.OrganizationRepository }

func (f fakeTx) RunOrganization(_ context.Context, fn func(repository.OrganizationRepository) error) error {
	return fn(f.repo)
}

func TestLocalService_CreaOrganizacionConInmueblesEInvitaciones(t *testing.T) {
	repo := &orgRepoMock{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.Organization) bool {
		return o.Slug == "acme-imoveis" && o.PlanPrice.String() == "990" && o.TaxID == "12.345.678/0001-90" && o.OwnerID == "user-1"
	})).Return(nil)
	repo.On("AddProperties", mock.Anything, mock.MatchedBy(func(p []*entity.Property) bool {
		return len(p) == 1 && p[0].Units == 10
	})).Return(nil)
	repo.On("AddInvitations", mock.Anything, mock.MatchedBy(func(i []*entity.Invitation) bool {
		return len(i) == 1 && i[0].Email == "ana@acme.com"
	})).Return(nil)

	org, err := orgservice.NewLocalService(fakeTx{repo: repo}).CreateOrganization(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, org.ID)
	assert.Equal(t, entity.BillingYearly, org.BillingCycle)
	assert.Equal(t, entity.PaymentPix, org.PaymentMethod)
	repo.AssertExpectations(t)
}

func TestLocalService_SlugTomado(t *testing.T) {
	repo := &orgRepoMock{}
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, err := orgservice.NewLocalService(fakeTx{repo: repo}).CreateOrganization(context.Background(), sampleRequest())
	var rej *appon.RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, appon.RejectSlugTaken, rej.Code)
	assert.Equal(t, orgservice.MessageSlugTaken, rej.Message)
	repo.AssertNotCalled(t, "AddProperties", mock.Anything, mock.Anything)
}

func TestLocalService_PlanInexistente(t *testing.T) {
	in := sampleRequest()
	in.PlanID = "gold"
	_, err := orgservice.NewLocalService(fakeTx{repo: &orgRepoMock{}}).CreateOrganization(context.Background(), in)
	var rej *appon.RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, orgservice.MessageUnknownPlan, rej.Message)
}

// ── Remote ────────────────────────────────────────────────────────────────────

func TestRemoteService_Creada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations", r.URL.Path)
		assert.Equal(t, "Bearer k3y", r.Header.Get("Authorization"))
		assert.Equal(t, "acme-imoveis", r.Header.Get("Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasPhone := body["phone"]
		assert.False(t, hasPhone, "los opcionales ausentes no se envían")
		assert.Equal(t, "12.345.678/0001-90", body["taxId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"org-9","name":"Acme Imóveis","slug":"acme-imoveis","country":"BR","planPrice":"990","createdAt":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	org, err := orgservice.NewRemoteService(srv.URL+"/", "k3y", time.Second).CreateOrganization(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "org-9", org.ID)
	assert.Equal(t, "990", org.PlanPrice.String())
}

func TestRemoteService_RechazoConMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"SLUG_TAKEN","message":"slug taken"}`))
	}))
	defer srv.Close()

	_, err := orgservice.NewRemoteService(srv.URL, "", time.Second).CreateOrganization(context.Background(), sampleRequest())
	var rej *appon.RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "slug taken", rej.Message)
}

func TestRemoteService_ErrorDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := orgservice.NewRemoteService(srv.URL, "", time.Second).CreateOrganization(context.Background(), sampleRequest())
	require.Error(t, err)
	var rej *appon.RejectionError
	assert.False(t, errors.As(err, &rej))
}
