package country

import (
	"regexp"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// RequiresField informa si el campo es obligatorio para el país.
// Un país desconocido o sin entrada para el campo equivale a "no obligatorio".
func (r *Registry) RequiresField(code string, field Field) bool {
	i, ok := r.index[code]
	if !ok {
		return false
	}
	return r.entries[i].RequiredFields[field]
}

// ValidateField valida el valor ya formateado contra la regla del país.
// Devuelve false si el país es desconocido, si no hay regla para el campo o si
// el valor no coincide por completo. No reformatea la entrada.
func (r *Registry) ValidateField(code string, field Field, raw string) bool {
	i, ok := r.index[code]
	if !ok {
		return false
	}
	return matchRule(r.rules[i], field, raw)
}

// HasRule informa si el país registra una regla de formato para el campo.
func (r *Registry) HasRule(code string, field Field) bool {
	i, ok := r.index[code]
	if !ok {
		return false
	}
	_, has := r.rules[i][field]
	return has
}

func matchRule(rules map[Field]*regexp.Regexp, field Field, raw string) bool {
	re, ok := rules[field]
	if !ok {
		return false
	}
	return re.MatchString(raw)
}

// RequiresField consulta el registro del proceso.
func RequiresField(code string, field Field) bool { return defaultRegistry.RequiresField(code, field) }

// ValidateField consulta el registro del proceso.
func ValidateField(code string, field Field, raw string) bool {
	return defaultRegistry.ValidateField(code, field, raw)
}

// Country variante cerrada de país: uno de los registrados y habilitados, o Unsupported.
// El valor cero es Unsupported.
type Country struct {
	cfg   *CountryConfig
	rules map[Field]*regexp.Regexp
}

// Unsupported variante para cualquier código desconocido o deshabilitado.
var Unsupported = Country{}

// IsUnsupported informa si es la variante Unsupported.
func (c Country) IsUnsupported() bool { return c.cfg == nil }

// Code código del país ("" si Unsupported).
func (c Country) Code() string {
	if c.cfg == nil {
		return ""
	}
	return c.cfg.Code
}

// Config copia de la entrada del registro (vacía si Unsupported).
func (c Country) Config() CountryConfig {
	if c.cfg == nil {
		return CountryConfig{}
	}
	return c.cfg.clone()
}

// RequiresField informa si el campo es obligatorio.
func (c Country) RequiresField(field Field) bool {
	if c.cfg == nil {
		return false
	}
	return c.cfg.RequiredFields[field]
}

// HasRule informa si existe regla de formato para el campo.
func (c Country) HasRule(field Field) bool {
	_, ok := c.rules[field]
	return ok
}

// ValidateField valida el valor formateado contra la regla del país.
func (c Country) ValidateField(field Field, raw string) bool {
	return matchRule(c.rules, field, raw)
}

// OffersPaymentMethod informa si el medio de pago se ofrece en el país.
func (c Country) OffersPaymentMethod(m entity.PaymentMethod) bool {
	if c.cfg == nil {
		return false
	}
	for _, pm := range c.cfg.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
