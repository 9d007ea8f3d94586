package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrganizationType tipo de operación inmobiliaria de la organización.
type OrganizationType string

// Tipos de organización admitidos en el alta.
const (
	OrganizationRealEstateAgency OrganizationType = "real_estate_agency"
	OrganizationPropertyManager  OrganizationType = "property_manager"
	OrganizationLandlord         OrganizationType = "landlord"
	OrganizationCondominium      OrganizationType = "condominium"
)

// Valid informa si el tipo es uno de los admitidos.
func (t OrganizationType) Valid() bool {
	switch t {
	case OrganizationRealEstateAgency, OrganizationPropertyManager, OrganizationLandlord, OrganizationCondominium:
		return true
	}
	return false
}

// Organization representa el tenant ya creado por el servicio de organizaciones.
// Este módulo solo la construye a partir de la respuesta; no gestiona su ciclo de vida.
type Organization struct {
	ID            string
	Name          string
	Slug          string
	Country       string
	Type          OrganizationType
	City          string
	State         string
	TaxID         string
	Address       string
	PostalCode    string
	Phone         string
	Email         string
	Website       string
	PrimaryColor  string
	Logo          string
	PlanID        string
	BillingCycle  BillingCycle
	PlanPrice     decimal.Decimal // precio en USD del ciclo elegido, congelado al crear
	PaymentMethod PaymentMethod
	Notifications map[string]bool
	OwnerID       string // usuario que completó el alta; vacío si la sesión no lo trae
	CreatedAt     time.Time
}

// Property inmueble registrado durante el alta.
type Property struct {
	ID             string
	OrganizationID string
	Name           string
	Address        string
	City           string
	Units          int
	Kind           PropertyKind
	CreatedAt      time.Time
}

// Invitation invitación a un miembro del equipo enviada al crear la organización.
type Invitation struct {
	ID             string
	OrganizationID string
	Email          string
	Role           MemberRole
	CreatedAt      time.Time
}
