package country

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // zonas horarias embebidas: las imágenes distroless no traen /usr/share/zoneinfo

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Check verifica la integridad de los metadatos del registro: locale BCP-47 cuya
// región coincide con el código, moneda ISO-4217, zona horaria IANA, regla de
// formato para todo campo obligatorio y medios de pago conocidos.
func (r *Registry) Check() error {
	var errs []error
	for _, c := range r.entries {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: locale %q: %w", c.Code, c.Locale, err))
		} else if region, _ := tag.Region(); region.String() != c.Code {
			errs = append(errs, fmt.Errorf("%s: la región del locale %q es %s", c.Code, c.Locale, region))
		}
		if _, err := currency.ParseISO(c.CurrencyCode); err != nil {
			errs = append(errs, fmt.Errorf("%s: moneda %q: %w", c.Code, c.CurrencyCode, err))
		}
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("%s: zona horaria %q: %w", c.Code, c.Timezone, err))
		}
		for field, required := range c.RequiredFields {
			if required && !r.HasRule(c.Code, field) {
				errs = append(errs, fmt.Errorf("%s: campo obligatorio %s sin regla de formato", c.Code, field))
			}
		}
		if len(c.PaymentMethods) == 0 {
			errs = append(errs, fmt.Errorf("%s: sin medios de pago", c.Code))
		}
		for _, m := range c.PaymentMethods {
			if !m.Valid() {
				errs = append(errs, fmt.Errorf("%s: medio de pago desconocido %q", c.Code, m))
			}
		}
	}
	return errors.Join(errs...)
}
