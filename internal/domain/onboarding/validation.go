package onboarding

import (
	"encoding/base64"
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/plan"
)

// Límites de las secciones del borrador.
const (
	MaxNameLength  = 200
	MaxSlugLength  = 63
	MaxLogoBytes   = 512 * 1024
	MaxInvitations = 50
	MaxProperties  = 100
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	logoPrefix   = regexp.MustCompile(`^data:image/(png|jpeg|svg\+xml|webp);base64,`)
)

// ValidSlug informa si el slug cumple [a-z0-9-]+ y el largo máximo.
func ValidSlug(s string) bool {
	return len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}

// ValidateOrganizationInfo valida la sección organization contra las reglas del país.
// Devuelve los errores de campo unidos con errors.Join (nil si es válida).
func ValidateOrganizationInfo(reg *country.Registry, info entity.OrganizationInfo) error {
	var errs []error
	name := strings.TrimSpace(info.Name)
	switch {
	case name == "":
		errs = append(errs, domain.NewFieldError("name", "el nombre es obligatorio"))
	case len(name) > MaxNameLength:
		errs = append(errs, domain.NewFieldError("name", "el nombre es demasiado largo"))
	}

	switch {
	case info.Slug == "":
		errs = append(errs, domain.NewFieldError("slug", "el slug es obligatorio"))
	case !ValidSlug(info.Slug):
		errs = append(errs, domain.NewFieldError("slug", "solo minúsculas, dígitos y guiones"))
	}

	if info.Type != "" && !info.Type.Valid() {
		errs = append(errs, domain.NewFieldError("type", "tipo de organización inválido"))
	}

	c := reg.Lookup(info.Country)
	if info.Country == "" {
		errs = append(errs, domain.NewFieldError("country", "el país es obligatorio"))
	} else if c.IsUnsupported() {
		errs = append(errs, domain.NewFieldError("country", "país no soportado"))
	} else {
		errs = append(errs, countryField(c, country.FieldTaxID, info.TaxID)...)
		errs = append(errs, countryField(c, country.FieldPostalCode, info.PostalCode)...)
		errs = append(errs, countryField(c, country.FieldPhone, info.Phone)...)
	}

	if info.Email != nil {
		if _, err := mail.ParseAddress(*info.Email); err != nil {
			errs = append(errs, domain.NewFieldError("email", "email inválido"))
		}
	}
	return errors.Join(errs...)
}

// countryField aplica obligatoriedad y regla de formato de un campo del país.
// Un valor informado se valida aunque el campo no sea obligatorio.
func countryField(c country.Country, field country.Field, value *string) []error {
	if value == nil || *value == "" {
		if c.RequiresField(field) {
			return []error{domain.NewFieldError(string(field), "obligatorio para "+c.Code())}
		}
		return nil
	}
	if c.HasRule(field) && !c.ValidateField(field, *value) {
		return []error{domain.NewFieldError(string(field), "formato inválido para "+c.Code())}
	}
	return nil
}

// ValidateBranding valida color (#RRGGBB) y logo (data URI base64 de imagen).
func ValidateBranding(b entity.Branding) error {
	var errs []error
	if b.PrimaryColor != "" && !colorPattern.MatchString(b.PrimaryColor) {
		errs = append(errs, domain.NewFieldError("primaryColor", "color inválido, se espera #RRGGBB"))
	}
	if b.Logo != "" {
		loc := logoPrefix.FindStringIndex(b.Logo)
		if loc == nil {
			errs = append(errs, domain.NewFieldError("logo", "se espera un data URI base64 de imagen"))
		} else {
			raw, err := base64.StdEncoding.DecodeString(b.Logo[loc[1]:])
			switch {
			case err != nil:
				errs = append(errs, domain.NewFieldError("logo", "base64 inválido"))
			case len(raw) > MaxLogoBytes:
				errs = append(errs, domain.NewFieldError("logo", "el logo supera 512 KB"))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateNotifications solo admite los canales conocidos.
func ValidateNotifications(n map[string]bool) error {
	known := entity.DefaultNotifications()
	var errs []error
	for ch := range n {
		if _, ok := known[ch]; !ok {
			errs = append(errs, domain.NewFieldError("notifications."+ch, "canal desconocido"))
		}
	}
	return errors.Join(errs...)
}

// ValidateTeam valida emails, roles y duplicados de las invitaciones.
func ValidateTeam(team entity.Team) error {
	var errs []error
	if len(team.Invitations) > MaxInvitations {
		errs = append(errs, domain.NewFieldError("invitations", "demasiadas invitaciones"))
	}
	seen := make(map[string]bool, len(team.Invitations))
	for i, inv := range team.Invitations {
		field := "invitations[" + strconv.Itoa(i) + "]"
		if _, err := mail.ParseAddress(inv.Email); err != nil {
			errs = append(errs, domain.NewFieldError(field+".email", "email inválido"))
		}
		key := strings.ToLower(strings.TrimSpace(inv.Email))
		if seen[key] {
			errs = append(errs, domain.NewFieldError(field+".email", "email repetido"))
		}
		seen[key] = true
		if !inv.Role.Valid() {
			errs = append(errs, domain.NewFieldError(field+".role", "rol inválido"))
		}
	}
	return errors.Join(errs...)
}

// ValidateProperties valida los inmuebles iniciales.
func ValidateProperties(props []entity.PropertyDraft) error {
	var errs []error
	if len(props) > MaxProperties {
		errs = append(errs, domain.NewFieldError("properties", "demasiados inmuebles"))
	}
	for i, p := range props {
		field := "properties[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, domain.NewFieldError(field+".name", "el nombre es obligatorio"))
		}
		if p.Units < 1 {
			errs = append(errs, domain.NewFieldError(field+".units", "debe tener al menos una unidad"))
		}
		if !p.Kind.Valid() {
			errs = append(errs, domain.NewFieldError(field+".kind", "uso inválido"))
		}
	}
	return errors.Join(errs...)
}

// ValidatePlan valida la selección de plan contra el catálogo y lo ya cargado en el borrador.
func ValidatePlan(sel entity.PlanSelection, draft entity.OrganizationDraft) error {
	p, ok := plan.Find(sel.PlanID)
	if !ok {
		return domain.NewFieldError("planId", "plan inexistente")
	}
	var errs []error
	if sel.BillingCycle != entity.BillingMonthly && sel.BillingCycle != entity.BillingYearly {
		errs = append(errs, domain.NewFieldError("billingCycle", "ciclo inválido"))
	}
	if !p.AllowsProperties(len(draft.Properties)) {
		errs = append(errs, domain.NewFieldError("planId", "el plan no admite la cantidad de inmuebles cargados"))
	}
	if draft.Team != nil && !p.AllowsMembers(len(draft.Team.Invitations)) {
		errs = append(errs, domain.NewFieldError("planId", "el plan no admite la cantidad de miembros invitados"))
	}
	return errors.Join(errs...)
}

// ValidatePaymentMethod valida el medio de pago y, si el país ya se eligió, que se ofrezca allí.
func ValidatePaymentMethod(reg *country.Registry, m entity.PaymentMethod, draft entity.OrganizationDraft) error {
	if !m.Valid() {
		return domain.NewFieldError("paymentMethod", "medio de pago inválido")
	}
	if draft.Organization == nil || draft.Organization.Country == "" {
		return nil
	}
	c := reg.Lookup(draft.Organization.Country)
	if !c.IsUnsupported() && !c.OffersPaymentMethod(m) {
		return domain.NewFieldError("paymentMethod", "medio de pago no disponible en "+c.Code())
	}
	return nil
}
