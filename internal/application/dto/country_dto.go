package dto

import "github.com/shopspring/decimal"

// CountryResponse entrada pública del registro de países.
type CountryResponse struct {
	Code            string            `json:"code"`
	Name            string            `json:"name"`
	CurrencyCode    string            `json:"currencyCode"`
	CurrencySymbol  string            `json:"currencySymbol"`
	Locale          string            `json:"locale"`
	Timezone        string            `json:"timezone"`
	Enabled         bool              `json:"enabled"`
	RequiredFields  map[string]bool   `json:"requiredFields"`
	ValidationRules map[string]string `json:"validationRules"`
	PaymentMethods  []string          `json:"paymentMethods"`
}

// FieldRequirementResponse obligatoriedad de un campo en un país.
type FieldRequirementResponse struct {
	Country  string `json:"country"`
	Field    string `json:"field"`
	Required bool   `json:"required"`
	HasRule  bool   `json:"hasRule"`
}

// ValidateFieldRequest valor ya formateado a validar contra la regla del país.
type ValidateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValidateFieldResponse resultado de la validación de formato.
type ValidateFieldResponse struct {
	Valid bool `json:"valid"`
}

// FormatFieldRequest valor crudo a formatear (solo taxId).
type FormatFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FormatFieldResponse valor con puntuación canónica y si cumple la regla del país.
type FormatFieldResponse struct {
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

// PlanResponse plan del catálogo con precios en USD.
type PlanResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	MonthlyPrice  decimal.Decimal `json:"monthlyPrice"`
	YearlyPrice   decimal.Decimal `json:"yearlyPrice"`
	MaxProperties int             `json:"maxProperties"` // 0 = ilimitado
	MaxMembers    int             `json:"maxMembers"`
	Features      []string        `json:"features"`
}
