package usecase

import (
	"errors"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/pkg/taxid"
)

// CountryUseCase expone el registro de países y el servicio de validación.
type CountryUseCase struct {
	registry *country.Registry
}

// NewCountryUseCase construye el caso de uso sobre un registro ya verificado.
func NewCountryUseCase(registry *country.Registry) *CountryUseCase {
	return &CountryUseCase{registry: registry}
}

// List devuelve los países habilitados en orden de registro.
func (uc *CountryUseCase) List() []dto.CountryResponse {
	list := uc.registry.ListEnabled()
	out := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *configToCountryResponse(c))
	}
	return out
}

// Get obtiene un país habilitado. Devuelve domain.ErrCountryNotFound si no existe o está deshabilitado.
func (uc *CountryUseCase) Get(code string) (*dto.CountryResponse, error) {
	cfg, err := uc.registry.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return nil, domain.ErrCountryNotFound
	}
	return configToCountryResponse(cfg), nil
}

// Requirement informa si el país exige el campo. País o campo desconocidos: no obligatorio.
func (uc *CountryUseCase) Requirement(code, field string) dto.FieldRequirementResponse {
	f := country.Field(field)
	return dto.FieldRequirementResponse{
		Country:  code,
		Field:    field,
		Required: uc.registry.RequiresField(code, f),
		HasRule:  uc.registry.HasRule(code, f),
	}
}

// Validate valida un valor ya formateado. Nunca reformatea.
func (uc *CountryUseCase) Validate(code string, in dto.ValidateFieldRequest) dto.ValidateFieldResponse {
	return dto.ValidateFieldResponse{
		Valid: uc.registry.ValidateField(code, country.Field(in.Field), in.Value),
	}
}

// Format da formato canónico a un identificador tributario y lo valida contra la regla del país.
func (uc *CountryUseCase) Format(code string, in dto.FormatFieldRequest) (*dto.FormatFieldResponse, error) {
	if country.Field(in.Field) != country.FieldTaxID {
		return nil, domain.NewFieldError("field", "solo se formatea taxId")
	}
	if _, err := uc.registry.GetByCode(code); err != nil {
		return nil, err
	}
	formatted, err := taxid.Format(code, in.Value)
	if err != nil {
		if errors.Is(err, taxid.ErrUnsupportedCountry) {
			return nil, domain.ErrCountryUnsupported
		}
		return nil, domain.NewFieldError("value", err.Error())
	}
	return &dto.FormatFieldResponse{
		Formatted: formatted,
		Valid:     uc.registry.ValidateField(code, country.FieldTaxID, formatted),
	}, nil
}

func configToCountryResponse(c country.CountryConfig) *dto.CountryResponse {
	required := make(map[string]bool, len(c.RequiredFields))
	for f, v := range c.RequiredFields {
		required[string(f)] = v
	}
	rules := make(map[string]string, len(c.ValidationRules))
	for f, p := range c.ValidationRules {
		rules[string(f)] = p
	}
	methods := make([]string, 0, len(c.PaymentMethods))
	for _, m := range c.PaymentMethods {
		methods = append(methods, string(m))
	}
	return &dto.CountryResponse{
		Code:            c.Code,
		Name:            c.Name,
		CurrencyCode:    c.CurrencyCode,
		CurrencySymbol:  c.CurrencySymbol,
		Locale:          c.Locale,
		Timezone:        c.Timezone,
		Enabled:         c.Enabled,
		RequiredFields:  required,
		ValidationRules: rules,
		PaymentMethods:  methods,
	}
}
