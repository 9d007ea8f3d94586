package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrganizationRequest carga enviada a la capacidad de creación de organizaciones.
// Los opcionales ausentes en el borrador no se envían (punteros + omitempty).
type CreateOrganizationRequest struct {
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Country       string              `json:"country"`
	Type          string              `json:"type,omitempty"`
	City          string              `json:"city,omitempty"`
	State         string              `json:"state,omitempty"`
	TaxID         *string             `json:"taxId,omitempty"`
	Address       *string             `json:"address,omitempty"`
	PostalCode    *string             `json:"postalCode,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Website       *string             `json:"website,omitempty"`
	PrimaryColor  *string             `json:"primaryColor,omitempty"`
	Logo          *string             `json:"logo,omitempty"`
	PlanID        string              `json:"planId,omitempty"`
	BillingCycle  string              `json:"billingCycle,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	Notifications map[string]bool     `json:"notifications"`
	Properties    []PropertyRequest   `json:"properties,omitempty"`
	Invitations   []InvitationRequest `json:"invitations,omitempty"`
	OwnerID       string              `json:"ownerId,omitempty"`
}

// OrganizationResponse organización creada.
type OrganizationResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Country       string          `json:"country"`
	Type          string          `json:"type,omitempty"`
	City          string          `json:"city,omitempty"`
	State         string          `json:"state,omitempty"`
	TaxID         string          `json:"taxId,omitempty"`
	Address       string          `json:"address,omitempty"`
	PostalCode    string          `json:"postalCode,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Website       string          `json:"website,omitempty"`
	PrimaryColor  string          `json:"primaryColor,omitempty"`
	Logo          string          `json:"logo,omitempty"`
	PlanID        string          `json:"planId,omitempty"`
	BillingCycle  string          `json:"billingCycle,omitempty"`
	PlanPrice     decimal.Decimal `json:"planPrice"`
	PaymentMethod string          `json:"paymentMethod"`
	Notifications map[string]bool `json:"notifications,omitempty"`
	OwnerID       string          `json:"ownerId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
