package dto

import "time"

// StartSessionRequest datos opcionales al abrir el asistente.
type StartSessionRequest struct {
	UserID string `json:"userId"`
}

// StartSessionResponse token de sesión y borrador vacío.
type StartSessionResponse struct {
	Token     string        `json:"token"`
	SessionID string        `json:"sessionId"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Draft     DraftResponse `json:"draft"`
}

// OrganizationInfoRequest paso organization-info.
type OrganizationInfoRequest struct {
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	Type       string  `json:"type"`
	TaxID      *string `json:"taxId"`
	Address    *string `json:"address"`
	PostalCode *string `json:"postalCode"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Website    *string `json:"website"`
}

// BrandingRequest paso branding. Las notificaciones se guardan con este paso.
type BrandingRequest struct {
	Logo          string          `json:"logo"`
	PrimaryColor  string          `json:"primaryColor"`
	Notifications map[string]bool `json:"notifications"`
}

// InvitationRequest invitación a un miembro.
type InvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TeamRequest paso team.
type TeamRequest struct {
	Invitations []InvitationRequest `json:"invitations"`
}

// PropertyRequest inmueble inicial.
type PropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Units   int    `json:"units"`
	Kind    string `json:"kind"`
}

// PropertiesRequest paso properties.
type PropertiesRequest struct {
	Properties []PropertyRequest `json:"properties"`
}

// PlanRequest paso plan.
type PlanRequest struct {
	PlanID       string `json:"planId"`
	BillingCycle string `json:"billingCycle"`
}

// PaymentMethodRequest paso payment-method.
type PaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// ProgressResponse estado del asistente.
type ProgressResponse struct {
	Current   string   `json:"current"`
	Completed []string `json:"completed"`
	Skipped   []string `json:"skipped"`
	Steps     []string `json:"steps"`
}

// DraftResponse borrador completo de la sesión con los valores por defecto ya aplicados.
type DraftResponse struct {
	Organization  *OrganizationInfoRequest `json:"organization,omitempty"`
	Branding      *BrandingRequest         `json:"branding,omitempty"`
	Notifications map[string]bool          `json:"notifications"`
	PaymentMethod string                   `json:"paymentMethod"`
	Team          *TeamRequest             `json:"team,omitempty"`
	Properties    []PropertyRequest        `json:"properties,omitempty"`
	Plan          *PlanRequest             `json:"plan,omitempty"`
	Progress      ProgressResponse         `json:"progress"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// SubmitResponse resultado del envío: success, no-data o error.
type SubmitResponse struct {
	Status       string                `json:"status"`
	Message      string                `json:"message,omitempty"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	Errors       []FieldErrorResponse  `json:"errors,omitempty"`
}

// SlugSuggestionResponse slug derivado del nombre.
type SlugSuggestionResponse struct {
	Slug  string `json:"slug"`
	Valid bool   `json:"valid"`
}
