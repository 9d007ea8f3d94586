package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
)

func newCountryUC() *usecase.CountryUseCase {
	return usecase.NewCountryUseCase(country.Default())
}

func TestCountryUseCase_List(t *testing.T) {
	list := newCountryUC().List()
	codes := make([]string, 0, len(list))
	for _, c := range list {
		codes = append(codes, c.Code)
		assert.True(t, c.Enabled)
	}
	assert.Equal(t, []string{"BR", "US", "MX", "CO", "AR", "PT"}, codes)
}

func TestCountryUseCase_Get(t *testing.T) {
	uc := newCountryUC()

	br, err := uc.Get("BR")
	require.NoError(t, err)
	assert.Equal(t, "BRL", br.CurrencyCode)
	assert.True(t, br.RequiredFields["taxId"])
	assert.Contains(t, br.PaymentMethods, "pix")

	_, err = uc.Get("CL")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound, "deshabilitado no se expone")

	_, err = uc.Get("ZZ")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestCountryUseCase_Requirement(t *testing.T) {
	uc := newCountryUC()
	assert.True(t, uc.Requirement("BR", "taxId").Required)
	assert.False(t, uc.Requirement("US", "taxId").Required)
	assert.True(t, uc.Requirement("US", "taxId").HasRule)
	assert.False(t, uc.Requirement("ZZ", "taxId").Required)
}

func TestCountryUseCase_Validate(t *testing.T) {
	uc := newCountryUC()
	assert.True(t, uc.Validate("BR", dto.ValidateFieldRequest{Field: "taxId", Value: "12.345.678/0001-90"}).Valid)
	assert.False(t, uc.Validate("BR", dto.ValidateFieldRequest{Field: "taxId", Value: "12345678000190"}).Valid)
	assert.False(t, uc.Validate("ZZ", dto.ValidateFieldRequest{Field: "taxId", Value: "1"}).Valid)
}

func TestCountryUseCase_Format(t *testing.T) {
	uc := newCountryUC()

	out, err := uc.Format("BR", dto.FormatFieldRequest{Field: "taxId", Value: "12345678000190"})
	require.NoError(t, err)
	assert.Equal(t, "12.345.678/0001-90", out.Formatted)
	assert.True(t, out.Valid)

	out, err = uc.Format("CO", dto.FormatFieldRequest{Field: "taxId", Value: "900123456"})
	require.NoError(t, err)
	assert.Equal(t, "900.123.456-8", out.Formatted)

	_, err = uc.Format("BR", dto.FormatFieldRequest{Field: "phone", Value: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Format("BR", dto.FormatFieldRequest{Field: "taxId", Value: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Format("ZZ", dto.FormatFieldRequest{Field: "taxId", Value: "123"})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestPlanUseCase_List(t *testing.T) {
	plans := usecase.NewPlanUseCase().List()
	require.Len(t, plans, 3)
	assert.Equal(t, "starter", plans[0].ID)
	assert.Equal(t, "29", plans[0].MonthlyPrice.String())
	assert.Equal(t, "290", plans[0].YearlyPrice.String())
	assert.Equal(t, 0, plans[2].MaxProperties)
}
