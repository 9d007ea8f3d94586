// Package country es el registro de países soportados: metadatos, campos exigidos
// y reglas de formato por país. El registro se construye una vez al iniciar el
// proceso y es de solo lectura; añadir un país es añadir una entrada, no código.
package country

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Field campo de la organización sujeto a reglas por país.
type Field string

// Campos conocidos por el registro.
const (
	FieldTaxID      Field = "taxId"
	FieldPostalCode Field = "postalCode"
	FieldPhone      Field = "phone"
)

var codePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// CountryConfig entrada del registro. ValidationRules guarda el patrón fuente;
// el registro mantiene la versión compilada.
type CountryConfig struct {
	Code            string
	Name            string
	CurrencyCode    string
	CurrencySymbol  string
	Locale          string
	Timezone        string
	Enabled         bool
	RequiredFields  map[Field]bool
	ValidationRules map[Field]string
	PaymentMethods  []entity.PaymentMethod
}

func (c CountryConfig) clone() CountryConfig {
	out := c
	out.RequiredFields = make(map[Field]bool, len(c.RequiredFields))
	for k, v := range c.RequiredFields {
		out.RequiredFields[k] = v
	}
	out.ValidationRules = make(map[Field]string, len(c.ValidationRules))
	for k, v := range c.ValidationRules {
		out.ValidationRules[k] = v
	}
	out.PaymentMethods = append([]entity.PaymentMethod(nil), c.PaymentMethods...)
	return out
}

// Registry tabla inmutable de países en orden de inserción.
type Registry struct {
	entries []CountryConfig
	index   map[string]int
	rules   []map[Field]*regexp.Regexp
}

// NewRegistry construye un registro a partir de la tabla dada.
// Falla si hay códigos repetidos o mal formados, o patrones que no compilan.
func NewRegistry(table []CountryConfig) (*Registry, error) {
	r := &Registry{
		entries: make([]CountryConfig, 0, len(table)),
		index:   make(map[string]int, len(table)),
		rules:   make([]map[Field]*regexp.Regexp, 0, len(table)),
	}
	for _, c := range table {
		if !codePattern.MatchString(c.Code) {
			return nil, fmt.Errorf("country: código inválido %q", c.Code)
		}
		if _, dup := r.index[c.Code]; dup {
			return nil, fmt.Errorf("country: código duplicado %q", c.Code)
		}
		compiled := make(map[Field]*regexp.Regexp, len(c.ValidationRules))
		for field, pattern := range c.ValidationRules {
			// Se fuerza coincidencia completa aunque el patrón no venga anclado.
			re, err := regexp.Compile(`^(?:` + pattern + `)$`)
			if err != nil {
				return nil, fmt.Errorf("country: %s.%s: %w", c.Code, field, err)
			}
			compiled[field] = re
		}
		r.index[c.Code] = len(r.entries)
		r.entries = append(r.entries, c.clone())
		r.rules = append(r.rules, compiled)
	}
	return r, nil
}

// MustNewRegistry como NewRegistry pero entra en pánico ante una tabla inválida.
func MustNewRegistry(table []CountryConfig) *Registry {
	r, err := NewRegistry(table)
	if err != nil {
		panic(err)
	}
	return r
}

// ListEnabled devuelve una copia de los países habilitados en orden de inserción.
func (r *Registry) ListEnabled() []CountryConfig {
	out := make([]CountryConfig, 0, len(r.entries))
	for _, c := range r.entries {
		if c.Enabled {
			out = append(out, c.clone())
		}
	}
	return out
}

// GetByCode busca por código exacto (mayúsculas; el llamador normaliza).
// Un país deshabilitado se devuelve con Enabled=false; un código desconocido
// devuelve domain.ErrCountryNotFound.
func (r *Registry) GetByCode(code string) (CountryConfig, error) {
	i, ok := r.index[code]
	if !ok {
		return CountryConfig{}, fmt.Errorf("%w: %q", domain.ErrCountryNotFound, code)
	}
	return r.entries[i].clone(), nil
}

// IsSupported informa si el código existe y está habilitado.
func (r *Registry) IsSupported(code string) bool {
	i, ok := r.index[code]
	return ok && r.entries[i].Enabled
}

// Lookup resuelve el código a una variante cerrada: un país habilitado o Unsupported.
func (r *Registry) Lookup(code string) Country {
	i, ok := r.index[code]
	if !ok || !r.entries[i].Enabled {
		return Unsupported
	}
	return Country{cfg: &r.entries[i], rules: r.rules[i]}
}

// IsNotFound informa si err proviene de un código desconocido.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrCountryNotFound)
}

var defaultRegistry = MustNewRegistry(supportedCountries)

// Default devuelve el registro del proceso.
func Default() *Registry { return defaultRegistry }

// ListEnabled consulta el registro del proceso.
func ListEnabled() []CountryConfig { return defaultRegistry.ListEnabled() }

// GetByCode consulta el registro del proceso.
func GetByCode(code string) (CountryConfig, error) { return defaultRegistry.GetByCode(code) }

// IsSupported consulta el registro del proceso.
func IsSupported(code string) bool { return defaultRegistry.IsSupported(code) }

// Lookup consulta el registro del proceso.
func Lookup(code string) Country { return defaultRegistry.Lookup(code) }
