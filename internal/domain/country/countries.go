package country

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

var (
	cardAndTransfer = []entity.PaymentMethod{entity.PaymentCreditCard, entity.PaymentBankTransfer}
	brazilPayments  = []entity.PaymentMethod{entity.PaymentCreditCard, entity.PaymentPix, entity.PaymentBoleto, entity.PaymentBankTransfer}
)

// supportedCountries tabla estática del registro. El orden es el de presentación.
var supportedCountries = []CountryConfig{
	{
		Code: "BR", Name: "Brasil",
		CurrencyCode: "BRL", CurrencySymbol: "R$",
		Locale: "pt-BR", Timezone: "America/Sao_Paulo",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID:      true,
			FieldPostalCode: true,
			FieldPhone:      false,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`, // CNPJ
			FieldPostalCode: `^\d{5}-\d{3}$`,                    // CEP
			FieldPhone:      `^\(\d{2}\) \d{4,5}-\d{4}$`,
		},
		PaymentMethods: brazilPayments,
	},
	{
		Code: "US", Name: "United States",
		CurrencyCode: "USD", CurrencySymbol: "$",
		Locale: "en-US", Timezone: "America/New_York",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID:      false,
			FieldPostalCode: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{2}-\d{7}$`, // EIN
			FieldPostalCode: `^\d{5}(-\d{4})?$`,
			FieldPhone:      `^\(\d{3}\) \d{3}-\d{4}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
	{
		Code: "MX", Name: "México",
		CurrencyCode: "MXN", CurrencySymbol: "$",
		Locale: "es-MX", Timezone: "America/Mexico_City",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID:      true,
			FieldPostalCode: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}$`, // RFC
			FieldPostalCode: `^\d{5}$`,
			FieldPhone:      `^\d{2} \d{4} \d{4}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
	{
		Code: "CO", Name: "Colombia",
		CurrencyCode: "COP", CurrencySymbol: "$",
		Locale: "es-CO", Timezone: "America/Bogota",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{3}\.\d{3}\.\d{3}-\d$`, // NIT con DV
			FieldPostalCode: `^\d{6}$`,
			FieldPhone:      `^\d{3} \d{3} \d{4}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
	{
		Code: "AR", Name: "Argentina",
		CurrencyCode: "ARS", CurrencySymbol: "$",
		Locale: "es-AR", Timezone: "America/Argentina/Buenos_Aires",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{2}-\d{8}-\d$`, // CUIT
			FieldPostalCode: `^[A-Z]\d{4}[A-Z]{3}$`,
			FieldPhone:      `^\d{2} \d{4}-\d{4}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
	{
		Code: "PT", Name: "Portugal",
		CurrencyCode: "EUR", CurrencySymbol: "€",
		Locale: "pt-PT", Timezone: "Europe/Lisbon",
		Enabled: true,
		RequiredFields: map[Field]bool{
			FieldTaxID:      true,
			FieldPostalCode: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{9}$`, // NIF
			FieldPostalCode: `^\d{4}-\d{3}$`,
			FieldPhone:      `^\d{3} \d{3} \d{3}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
	{
		// Chile queda registrado pero deshabilitado hasta cerrar la integración de facturación.
		Code: "CL", Name: "Chile",
		CurrencyCode: "CLP", CurrencySymbol: "$",
		Locale: "es-CL", Timezone: "America/Santiago",
		Enabled: false,
		RequiredFields: map[Field]bool{
			FieldTaxID: true,
		},
		ValidationRules: map[Field]string{
			FieldTaxID:      `^\d{1,2}\.\d{3}\.\d{3}-[\dkK]$`, // RUT
			FieldPostalCode: `^\d{7}$`,
			FieldPhone:      `^\d \d{4} \d{4}$`,
		},
		PaymentMethods: cardAndTransfer,
	},
}
