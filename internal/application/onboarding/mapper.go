package onboarding

import (
	"strings"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

func requestToOrganizationInfo(in dto.OrganizationInfoRequest) entity.OrganizationInfo {
	return entity.OrganizationInfo{
		Name:       strings.TrimSpace(in.Name),
		Slug:       strings.TrimSpace(in.Slug),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		Country:    strings.ToUpper(strings.TrimSpace(in.Country)),
		Type:       entity.OrganizationType(in.Type),
		TaxID:      trimmedPtr(in.TaxID),
		Address:    trimmedPtr(in.Address),
		PostalCode: trimmedPtr(in.PostalCode),
		Phone:      trimmedPtr(in.Phone),
		Email:      trimmedPtr(in.Email),
		Website:    trimmedPtr(in.Website),
	}
}

// trimmedPtr descarta opcionales vacíos: un campo en blanco equivale a no informado.
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func requestToTeam(in dto.TeamRequest) entity.Team {
	team := entity.Team{Invitations: make([]entity.Invite, 0, len(in.Invitations))}
	for _, inv := range in.Invitations {
		team.Invitations = append(team.Invitations, entity.Invite{
			Email: strings.TrimSpace(inv.Email),
			Role:  entity.MemberRole(inv.Role),
		})
	}
	return team
}

func requestToProperties(in []dto.PropertyRequest) []entity.PropertyDraft {
	out := make([]entity.PropertyDraft, 0, len(in))
	for _, p := range in {
		out = append(out, entity.PropertyDraft{
			Name:    strings.TrimSpace(p.Name),
			Address: strings.TrimSpace(p.Address),
			City:    strings.TrimSpace(p.City),
			Units:   p.Units,
			Kind:    entity.PropertyKind(p.Kind),
		})
	}
	return out
}

func copyNotifications(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func recordToDraftResponse(rec *wizard.Record) *dto.DraftResponse {
	d := rec.Draft
	out := &dto.DraftResponse{
		Notifications: d.EffectiveNotifications(),
		PaymentMethod: string(d.EffectivePaymentMethod()),
		Progress:      progressToResponse(rec.Progress),
		UpdatedAt:     rec.UpdatedAt,
	}
	if o := d.Organization; o != nil {
		out.Organization = &dto.OrganizationInfoRequest{
			Name:       o.Name,
			Slug:       o.Slug,
			City:       o.City,
			State:      o.State,
			Country:    o.Country,
			Type:       string(o.Type),
			TaxID:      o.TaxID,
			Address:    o.Address,
			PostalCode: o.PostalCode,
			Phone:      o.Phone,
			Email:      o.Email,
			Website:    o.Website,
		}
	}
	if b := d.Branding; b != nil {
		out.Branding = &dto.BrandingRequest{Logo: b.Logo, PrimaryColor: b.PrimaryColor}
	}
	if d.Team != nil {
		out.Team = &dto.TeamRequest{Invitations: invitesToRequests(d.Team.Invitations)}
	}
	out.Properties = propertiesToRequests(d.Properties)
	if p := d.Plan; p != nil {
		out.Plan = &dto.PlanRequest{PlanID: p.PlanID, BillingCycle: string(p.BillingCycle)}
	}
	return out
}

func progressToResponse(p wizard.Progress) dto.ProgressResponse {
	steps := wizard.Steps()
	out := dto.ProgressResponse{
		Current:   string(p.Current),
		Completed: make([]string, 0, len(p.Completed)),
		Skipped:   make([]string, 0, len(p.Skipped)),
		Steps:     make([]string, 0, len(steps)),
	}
	for _, s := range p.Completed {
		out.Completed = append(out.Completed, string(s))
	}
	for _, s := range p.Skipped {
		out.Skipped = append(out.Skipped, string(s))
	}
	for _, s := range steps {
		out.Steps = append(out.Steps, string(s))
	}
	return out
}

func invitesToRequests(in []entity.Invite) []dto.InvitationRequest {
	if len(in) == 0 {
		return nil
	}
	out := make([]dto.InvitationRequest, 0, len(in))
	for _, inv := range in {
		out = append(out, dto.InvitationRequest{Email: inv.Email, Role: string(inv.Role)})
	}
	return out
}

func propertiesToRequests(in []entity.PropertyDraft) []dto.PropertyRequest {
	if len(in) == 0 {
		return nil
	}
	out := make([]dto.PropertyRequest, 0, len(in))
	for _, p := range in {
		out = append(out, dto.PropertyRequest{
			Name:    p.Name,
			Address: p.Address,
			City:    p.City,
			Units:   p.Units,
			Kind:    string(p.Kind),
		})
	}
	return out
}

// BuildCreateRequest arma la carga para la capacidad de creación. Solo incluye los
// opcionales presentes; aplica notificaciones y medio de pago por defecto.
// Es determinista: el mismo borrador produce la misma carga (reintentos idénticos).
func BuildCreateRequest(d entity.OrganizationDraft) dto.CreateOrganizationRequest {
	o := d.Organization
	if o == nil {
		o = &entity.OrganizationInfo{}
	}
	req := dto.CreateOrganizationRequest{
		Name:          strings.TrimSpace(o.Name),
		Slug:          strings.TrimSpace(o.Slug),
		Country:       o.Country,
		Type:          string(o.Type),
		City:          o.City,
		State:         o.State,
		TaxID:         trimmedPtr(o.TaxID),
		Address:       trimmedPtr(o.Address),
		PostalCode:    trimmedPtr(o.PostalCode),
		Phone:         trimmedPtr(o.Phone),
		Email:         trimmedPtr(o.Email),
		Website:       trimmedPtr(o.Website),
		PaymentMethod: string(d.EffectivePaymentMethod()),
		Notifications: d.EffectiveNotifications(),
		Properties:    propertiesToRequests(d.Properties),
	}
	if b := d.Branding; b != nil {
		req.PrimaryColor = trimmedPtr(&b.PrimaryColor)
		req.Logo = trimmedPtr(&b.Logo)
	}
	if p := d.Plan; p != nil {
		req.PlanID = p.PlanID
		req.BillingCycle = string(p.BillingCycle)
	}
	if d.Team != nil {
		req.Invitations = invitesToRequests(d.Team.Invitations)
	}
	return req
}

// OrganizationToResponse convierte la organización creada a su DTO.
func OrganizationToResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:            o.ID,
		Name:          o.Name,
		Slug:          o.Slug,
		Country:       o.Country,
		Type:          string(o.Type),
		City:          o.City,
		State:         o.State,
		TaxID:         o.TaxID,
		Address:       o.Address,
		PostalCode:    o.PostalCode,
		Phone:         o.Phone,
		Email:         o.Email,
		Website:       o.Website,
		PrimaryColor:  o.PrimaryColor,
		Logo:          o.Logo,
		PlanID:        o.PlanID,
		BillingCycle:  string(o.BillingCycle),
		PlanPrice:     o.PlanPrice,
		PaymentMethod: string(o.PaymentMethod),
		Notifications: o.Notifications,
		OwnerID:       o.OwnerID,
		CreatedAt:     o.CreatedAt,
	}
}

// FieldErrorsToResponse aplana errores de campo para el cuerpo HTTP.
func FieldErrorsToResponse(errs []*domain.FieldError) []dto.FieldErrorResponse {
	if len(errs) == 0 {
		return nil
	}
	out := make([]dto.FieldErrorResponse, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dto.FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return out
}
