package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de países
// ──────────────────────────────────────────────────────────────────────────────

func testTable() []country.CountryConfig {
	return []country.CountryConfig{
		{
			Code: "BR", Name: "Brasil", CurrencyCode: "BRL", Locale: "pt-BR", Timezone: "America/Sao_Paulo",
			Enabled:         true,
			RequiredFields:  map[country.Field]bool{country.FieldTaxID: true},
			ValidationRules: map[country.Field]string{country.FieldTaxID: `\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`},
			PaymentMethods:  []entity.PaymentMethod{entity.PaymentPix},
		},
		{
			Code: "CL", Name: "Chile", CurrencyCode: "CLP", Locale: "es-CL", Timezone: "America/Santiago",
			Enabled:         false,
			RequiredFields:  map[country.Field]bool{country.FieldTaxID: true},
			ValidationRules: map[country.Field]string{country.FieldTaxID: `\d{1,2}\.\d{3}\.\d{3}-[\dkK]`},
			PaymentMethods:  []entity.PaymentMethod{entity.PaymentCreditCard},
		},
		{
			Code: "US", Name: "United States", CurrencyCode: "USD", Locale: "en-US", Timezone: "America/New_York",
			Enabled:        true,
			PaymentMethods: []entity.PaymentMethod{entity.PaymentCreditCard},
		},
	}
}

func TestListEnabled_SoloHabilitadosEnOrden(t *testing.T) {
	reg, err := country.NewRegistry(testTable())
	require.NoError(t, err)

	list := reg.ListEnabled()
	require.Len(t, list, 2)
	assert.Equal(t, "BR", list[0].Code)
	assert.Equal(t, "US", list[1].Code)
	for _, c := range list {
		assert.True(t, c.Enabled)
	}
}

func TestListEnabled_RegistroDelProceso(t *testing.T) {
	enabled := map[string]bool{}
	for _, c := range country.ListEnabled() {
		enabled[c.Code] = true
	}
	assert.True(t, enabled["BR"])
	assert.True(t, enabled["CO"])
	assert.False(t, enabled["CL"], "Chile está registrado pero deshabilitado")
	assert.False(t, enabled["ZZ"])
}

func TestListEnabled_DevuelveCopias(t *testing.T) {
	reg, err := country.NewRegistry(testTable())
	require.NoError(t, err)

	list := reg.ListEnabled()
	list[0].RequiredFields[country.FieldTaxID] = false
	list[0].Name = "mutado"

	again, err := reg.GetByCode("BR")
	require.NoError(t, err)
	assert.Equal(t, "Brasil", again.Name)
	assert.True(t, again.RequiredFields[country.FieldTaxID], "el registro es inmutable")
}

func TestGetByCode(t *testing.T) {
	reg, err := country.NewRegistry(testTable())
	require.NoError(t, err)

	br, err := reg.GetByCode("BR")
	require.NoError(t, err)
	assert.Equal(t, "BRL", br.CurrencyCode)

	cl, err := reg.GetByCode("CL")
	require.NoError(t, err, "un país deshabilitado sigue siendo inspeccionable")
	assert.False(t, cl.Enabled)

	_, err = reg.GetByCode("ZZ")
	assert.True(t, country.IsNotFound(err))

	_, err = reg.GetByCode("br")
	assert.True(t, country.IsNotFound(err), "los códigos se comparan en mayúsculas exactas")
}

func TestIsSupported(t *testing.T) {
	reg, err := country.NewRegistry(testTable())
	require.NoError(t, err)

	assert.True(t, reg.IsSupported("BR"))
	assert.False(t, reg.IsSupported("CL"), "deshabilitado")
	assert.False(t, reg.IsSupported("ZZ"), "desconocido")
	assert.False(t, reg.IsSupported(""))
}

func TestLookup_VarianteCerrada(t *testing.T) {
	reg, err := country.NewRegistry(testTable())
	require.NoError(t, err)

	br := reg.Lookup("BR")
	assert.False(t, br.IsUnsupported())
	assert.Equal(t, "BR", br.Code())
	assert.True(t, br.RequiresField(country.FieldTaxID))
	assert.True(t, br.OffersPaymentMethod(entity.PaymentPix))
	assert.False(t, br.OffersPaymentMethod(entity.PaymentBoleto))

	for _, code := range []string{"CL", "ZZ", ""} {
		c := reg.Lookup(code)
		assert.True(t, c.IsUnsupported(), code)
		assert.Equal(t, "", c.Code())
		assert.False(t, c.RequiresField(country.FieldTaxID))
		assert.False(t, c.ValidateField(country.FieldTaxID, "12.345.678/0001-90"))
	}
}

func TestNewRegistry_TablaInvalida(t *testing.T) {
	_, err := country.NewRegistry([]country.CountryConfig{{Code: "BR"}, {Code: "BR"}})
	assert.Error(t, err, "código duplicado")

	_, err = country.NewRegistry([]country.CountryConfig{{Code: "bra"}})
	assert.Error(t, err, "código mal formado")

	_, err = country.NewRegistry([]country.CountryConfig{{
		Code:            "BR",
		ValidationRules: map[country.Field]string{country.FieldTaxID: `(`},
	}})
	assert.Error(t, err, "patrón que no compila")
}

func TestCheck_RegistroDelProcesoEsConsistente(t *testing.T) {
	assert.NoError(t, country.Default().Check())
}

func TestCheck_DetectaMetadatosInvalidos(t *testing.T) {
	reg, err := country.NewRegistry([]country.CountryConfig{{
		Code: "BR", Locale: "es-AR", CurrencyCode: "XXXX", Timezone: "Mars/Olympus",
		RequiredFields: map[country.Field]bool{country.FieldTaxID: true},
	}})
	require.NoError(t, err)

	err = reg.Check()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "región")
	assert.Contains(t, msg, "moneda")
	assert.Contains(t, msg, "zona horaria")
	assert.Contains(t, msg, "sin regla")
	assert.Contains(t, msg, "sin medios de pago")
}
