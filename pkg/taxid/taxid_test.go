package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/pkg/taxid"
)

func TestFormat_PorPais(t *testing.T) {
	cases := []struct {
		country, raw, want string
	}{
		{"BR", "12345678000190", "12.345.678/0001-90"},
		{"BR", "12.345.678/0001-90", "12.345.678/0001-90"},
		{"US", "123456789", "12-3456789"},
		{"AR", "20123456789", "20-12345678-9"},
		{"PT", "123 456 789", "123456789"},
		{"CO", "900123456", "900.123.456-8"},
		{"CO", "900.123.456-8", "900.123.456-8"},
		{"MX", "gode 561231 gr8", "GODE561231GR8"},
		{"CL", "12345678k", "12.345.678-K"},
		{"CL", "7654321-0", "7.654.321-0"},
	}
	for _, tc := range cases {
		got, err := taxid.Format(tc.country, tc.raw)
		require.NoError(t, err, "%s %s", tc.country, tc.raw)
		assert.Equal(t, tc.want, got, "%s %s", tc.country, tc.raw)
	}
}

func TestFormat_LongitudIncorrecta(t *testing.T) {
	_, err := taxid.Format("BR", "1234")
	assert.Error(t, err)

	_, err = taxid.Format("CO", "12345")
	assert.Error(t, err)
}

func TestFormat_NITConDigitoErroneo(t *testing.T) {
	_, err := taxid.Format("CO", "9001234561")
	assert.Error(t, err, "el DV 1 no corresponde al NIT 900123456")
}

func TestFormat_PaisSinFormato(t *testing.T) {
	_, err := taxid.Format("ZZ", "123")
	assert.ErrorIs(t, err, taxid.ErrUnsupportedCountry)
}

func TestComputeNITVerificationDigit(t *testing.T) {
	dv, err := taxid.ComputeNITVerificationDigit("900123456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)

	_, err = taxid.ComputeNITVerificationDigit("123")
	assert.Error(t, err)
}
