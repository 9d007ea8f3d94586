package onboarding_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

func strPtr(s string) *string { return &s }

func fields(err error) []string {
	var out []string
	for _, fe := range domain.FieldErrors(err) {
		out = append(out, fe.Field)
	}
	return out
}

func TestValidateOrganizationInfo_BrasilValido(t *testing.T) {
	info := entity.OrganizationInfo{
		Name:       "Acme Imóveis",
		Slug:       "acme-imoveis",
		Country:    "BR",
		Type:       entity.OrganizationRealEstateAgency,
		TaxID:      strPtr("12.345.678/0001-90"),
		PostalCode: strPtr("01310-100"),
	}
	assert.NoError(t, onboarding.ValidateOrganizationInfo(country.Default(), info))
}

func TestValidateOrganizationInfo_ErroresPorCampo(t *testing.T) {
	info := entity.OrganizationInfo{
		Name:    "",
		Slug:    "Acme_Inc",
		Country: "BR",
		Type:    "castle",
		TaxID:   strPtr("12345678000190"),
		Email:   strPtr("no-es-email"),
	}
	err := onboarding.ValidateOrganizationInfo(country.Default(), info)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.ElementsMatch(t, []string{"name", "slug", "type", "taxId", "postalCode", "email"}, fields(err))
}

func TestValidateOrganizationInfo_TaxIDSoloObligatorioSiElPaisLoExige(t *testing.T) {
	us := entity.OrganizationInfo{Name: "Acme", Slug: "acme", Country: "US", PostalCode: strPtr("10001")}
	assert.NoError(t, onboarding.ValidateOrganizationInfo(country.Default(), us))

	co := entity.OrganizationInfo{Name: "Acme", Slug: "acme", Country: "CO"}
	assert.Equal(t, []string{"taxId"}, fields(onboarding.ValidateOrganizationInfo(country.Default(), co)))
}

func TestValidateOrganizationInfo_PaisNoSoportado(t *testing.T) {
	for _, code := range []string{"CL", "ZZ"} {
		info := entity.OrganizationInfo{Name: "Acme", Slug: "acme", Country: code}
		assert.Equal(t, []string{"country"}, fields(onboarding.ValidateOrganizationInfo(country.Default(), info)), code)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, onboarding.ValidSlug("acme-123"))
	assert.False(t, onboarding.ValidSlug("Acme"))
	assert.False(t, onboarding.ValidSlug("acme inc"))
	assert.False(t, onboarding.ValidSlug(""))
}

func TestValidateBranding(t *testing.T) {
	logo := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG"))
	assert.NoError(t, onboarding.ValidateBranding(entity.Branding{Logo: logo, PrimaryColor: "#1A2b3C"}))
	assert.NoError(t, onboarding.ValidateBranding(entity.Branding{}))

	err := onboarding.ValidateBranding(entity.Branding{Logo: "http://x/logo.png", PrimaryColor: "blue"})
	assert.ElementsMatch(t, []string{"logo", "primaryColor"}, fields(err))

	err = onboarding.ValidateBranding(entity.Branding{Logo: "data:image/png;base64,@@@"})
	assert.Equal(t, []string{"logo"}, fields(err))
}

func TestValidateTeam(t *testing.T) {
	ok := entity.Team{Invitations: []entity.Invite{
		{Email: "ana@acme.com", Role: entity.RoleAdmin},
		{Email: "luis@acme.com", Role: entity.RoleAgent},
	}}
	assert.NoError(t, onboarding.ValidateTeam(ok))

	bad := entity.Team{Invitations: []entity.Invite{
		{Email: "ana@acme.com", Role: entity.RoleAdmin},
		{Email: "ANA@acme.com", Role: "owner"},
	}}
	assert.ElementsMatch(t, []string{"invitations[1].email", "invitations[1].role"}, fields(onboarding.ValidateTeam(bad)))
}

func TestValidateProperties(t *testing.T) {
	err := onboarding.ValidateProperties([]entity.PropertyDraft{
		{Name: "Torre A", Units: 24, Kind: entity.PropertyResidential},
		{Name: "", Units: 0, Kind: "castle"},
	})
	assert.ElementsMatch(t, []string{"properties[1].name", "properties[1].units", "properties[1].kind"}, fields(err))
}

func TestValidatePlan(t *testing.T) {
	draft := entity.OrganizationDraft{}
	assert.NoError(t, onboarding.ValidatePlan(entity.PlanSelection{PlanID: "starter", BillingCycle: entity.BillingMonthly}, draft))

	err := onboarding.ValidatePlan(entity.PlanSelection{PlanID: "gold", BillingCycle: entity.BillingMonthly}, draft)
	assert.Equal(t, []string{"planId"}, fields(err))

	many := make([]entity.PropertyDraft, 11)
	err = onboarding.ValidatePlan(entity.PlanSelection{PlanID: "starter", BillingCycle: entity.BillingYearly}, entity.OrganizationDraft{Properties: many})
	assert.Equal(t, []string{"planId"}, fields(err), "starter admite hasta 10 inmuebles")
}

func TestValidatePaymentMethod(t *testing.T) {
	br := entity.OrganizationDraft{Organization: &entity.OrganizationInfo{Country: "BR"}}
	us := entity.OrganizationDraft{Organization: &entity.OrganizationInfo{Country: "US"}}

	assert.NoError(t, onboarding.ValidatePaymentMethod(country.Default(), entity.PaymentPix, br))
	assert.Error(t, onboarding.ValidatePaymentMethod(country.Default(), entity.PaymentPix, us))
	assert.NoError(t, onboarding.ValidatePaymentMethod(country.Default(), entity.PaymentBoleto, entity.OrganizationDraft{}))
	assert.Error(t, onboarding.ValidatePaymentMethod(country.Default(), "cash", br))
}
