package entity

import "strings"

// PaymentMethod medio de pago elegido durante el alta.
type PaymentMethod string

// Medios de pago admitidos.
const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentPix          PaymentMethod = "pix"
	PaymentBoleto       PaymentMethod = "boleto"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// DefaultPaymentMethod medio de pago cuando el paso se omite o no se eligió.
const DefaultPaymentMethod = PaymentCreditCard

// Valid informa si el medio de pago es uno de los admitidos.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPix, PaymentBoleto, PaymentBankTransfer:
		return true
	}
	return false
}

// BillingCycle periodicidad de cobro del plan.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// MemberRole rol de un miembro invitado.
type MemberRole string

const (
	RoleAdmin   MemberRole = "admin"
	RoleManager MemberRole = "manager"
	RoleAgent   MemberRole = "agent"
	RoleViewer  MemberRole = "viewer"
)

// Valid informa si el rol es uno de los admitidos.
func (r MemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent, RoleViewer:
		return true
	}
	return false
}

// PropertyKind uso del inmueble.
type PropertyKind string

const (
	PropertyResidential PropertyKind = "residential"
	PropertyCommercial  PropertyKind = "commercial"
	PropertyMixed       PropertyKind = "mixed"
)

// Valid informa si el uso es uno de los admitidos.
func (k PropertyKind) Valid() bool {
	switch k {
	case PropertyResidential, PropertyCommercial, PropertyMixed:
		return true
	}
	return false
}

// Canales de notificación conocidos.
const (
	NotifyEmail        = "email"
	NotifySMS          = "sms"
	NotifyPush         = "push"
	NotifyWeeklyReport = "weeklyReport"
)

// DefaultNotifications preferencias aplicadas cuando el usuario no las configura.
func DefaultNotifications() map[string]bool {
	return map[string]bool{
		NotifyEmail:        true,
		NotifySMS:          false,
		NotifyPush:         true,
		NotifyWeeklyReport: true,
	}
}

// OrganizationInfo sección obligatoria del borrador. Los punteros distinguen
// "nunca informado" de "informado vacío": los nil no se envían al servicio externo.
type OrganizationInfo struct {
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	City       string           `json:"city,omitempty"`
	State      string           `json:"state,omitempty"`
	Country    string           `json:"country,omitempty"`
	Type       OrganizationType `json:"type,omitempty"`
	TaxID      *string          `json:"taxId,omitempty"`
	Address    *string          `json:"address,omitempty"`
	PostalCode *string          `json:"postalCode,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Website    *string          `json:"website,omitempty"`
}

// Branding identidad visual (opcional). Logo va codificado como data URI base64.
type Branding struct {
	Logo         string `json:"logo,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
}

// Invite invitación pendiente en el borrador.
type Invite struct {
	Email string     `json:"email"`
	Role  MemberRole `json:"role"`
}

// Team equipo a invitar al crear la organización.
type Team struct {
	Invitations []Invite `json:"invitations"`
}

// PropertyDraft inmueble cargado en el paso de propiedades.
type PropertyDraft struct {
	Name    string       `json:"name"`
	Address string       `json:"address,omitempty"`
	City    string       `json:"city,omitempty"`
	Units   int          `json:"units"`
	Kind    PropertyKind `json:"kind"`
}

// PlanSelection plan y ciclo elegidos.
type PlanSelection struct {
	PlanID       string       `json:"planId"`
	BillingCycle BillingCycle `json:"billingCycle"`
}

// OrganizationDraft carga acumulada por el asistente antes del envío.
// Cada paso reemplaza únicamente su sección.
type OrganizationDraft struct {
	Organization  *OrganizationInfo `json:"organization,omitempty"`
	Branding      *Branding         `json:"branding,omitempty"`
	Notifications map[string]bool   `json:"notifications,omitempty"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	Team          *Team             `json:"team,omitempty"`
	Properties    []PropertyDraft   `json:"properties,omitempty"`
	Plan          *PlanSelection    `json:"plan,omitempty"`
}

// EffectiveNotifications devuelve las preferencias guardadas completadas con los valores por defecto.
func (d OrganizationDraft) EffectiveNotifications() map[string]bool {
	out := DefaultNotifications()
	for k, v := range d.Notifications {
		out[k] = v
	}
	return out
}

// EffectivePaymentMethod devuelve el medio elegido o DefaultPaymentMethod.
func (d OrganizationDraft) EffectivePaymentMethod() PaymentMethod {
	if d.PaymentMethod == "" {
		return DefaultPaymentMethod
	}
	return d.PaymentMethod
}

// HasMinimumData informa si el borrador tiene nombre y slug (mínimo para intentar el envío).
func (d OrganizationDraft) HasMinimumData() bool {
	if d.Organization == nil {
		return false
	}
	return strings.TrimSpace(d.Organization.Name) != "" && strings.TrimSpace(d.Organization.Slug) != ""
}
