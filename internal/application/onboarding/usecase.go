// Package onboarding contiene los casos de uso del asistente de alta de
// organizaciones: guardado paso a paso del borrador y su envío a la capacidad
// externa de creación.
package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// UseCase guarda el borrador sección por sección. Cada paso lee el documento
// entero, reemplaza solo su sección y lo persiste de inmediato.
type UseCase struct {
	drafts   repository.DraftStore
	registry *country.Registry
	pdf      SummaryPDFGenerator
	metrics  Metrics
	now      func() time.Time
}

// NewUseCase construye el caso de uso. pdf y metrics pueden ser nil.
func NewUseCase(drafts repository.DraftStore, registry *country.Registry, pdf SummaryPDFGenerator, metrics Metrics) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		drafts:   drafts,
		registry: registry,
		pdf:      pdf,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Start crea el borrador vacío de la sesión con el progreso en organization-info.
// Si la sesión ya tenía borrador lo reemplaza.
func (uc *UseCase) Start(ctx context.Context, sessionID, ownerID string) (*dto.DraftResponse, error) {
	rec := wizard.NewRecord(uc.now().UTC())
	rec.OwnerID = strings.TrimSpace(ownerID)
	if err := uc.drafts.Save(ctx, sessionID, rec); err != nil {
		return nil, err
	}
	return recordToDraftResponse(rec), nil
}

// Get devuelve el borrador de la sesión. domain.ErrDraftNotFound si no existe o venció.
func (uc *UseCase) Get(ctx context.Context, sessionID string) (*dto.DraftResponse, error) {
	rec, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return recordToDraftResponse(rec), nil
}

// SaveOrganization guarda el paso organization-info. El país se normaliza a mayúsculas.
func (uc *UseCase) SaveOrganization(ctx context.Context, sessionID string, in dto.OrganizationInfoRequest) (*dto.DraftResponse, error) {
	info := requestToOrganizationInfo(in)
	if err := wizard.ValidateOrganizationInfo(uc.registry, info); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, wizard.StepOrganizationInfo, func(rec *wizard.Record) error {
		rec.Draft.Organization = &info
		return nil
	})
}

// SaveBranding guarda logo, color y preferencias de notificación.
func (uc *UseCase) SaveBranding(ctx context.Context, sessionID string, in dto.BrandingRequest) (*dto.DraftResponse, error) {
	b := entity.Branding{Logo: in.Logo, PrimaryColor: in.PrimaryColor}
	if err := errors.Join(wizard.ValidateBranding(b), wizard.ValidateNotifications(in.Notifications)); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, wizard.StepBranding, func(rec *wizard.Record) error {
		rec.Draft.Branding = &b
		if in.Notifications != nil {
			rec.Draft.Notifications = copyNotifications(in.Notifications)
		}
		return nil
	})
}

// SaveTeam guarda las invitaciones.
func (uc *UseCase) SaveTeam(ctx context.Context, sessionID string, in dto.TeamRequest) (*dto.DraftResponse, error) {
	team := requestToTeam(in)
	if err := wizard.ValidateTeam(team); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, wizard.StepTeam, func(rec *wizard.Record) error {
		rec.Draft.Team = &team
		return nil
	})
}

// SaveProperties guarda los inmuebles iniciales.
func (uc *UseCase) SaveProperties(ctx context.Context, sessionID string, in dto.PropertiesRequest) (*dto.DraftResponse, error) {
	props := requestToProperties(in.Properties)
	if err := wizard.ValidateProperties(props); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, wizard.StepProperties, func(rec *wizard.Record) error {
		rec.Draft.Properties = props
		return nil
	})
}

// SelectPlan guarda el plan. Se valida contra los inmuebles y miembros ya cargados.
func (uc *UseCase) SelectPlan(ctx context.Context, sessionID string, in dto.PlanRequest) (*dto.DraftResponse, error) {
	sel := entity.PlanSelection{PlanID: in.PlanID, BillingCycle: entity.BillingCycle(in.BillingCycle)}
	if sel.BillingCycle == "" {
		sel.BillingCycle = entity.BillingMonthly
	}
	return uc.mutate(ctx, sessionID, wizard.StepPlan, func(rec *wizard.Record) error {
		if err := wizard.ValidatePlan(sel, rec.Draft); err != nil {
			return err
		}
		rec.Draft.Plan = &sel
		return nil
	})
}

// SavePaymentMethod guarda el medio de pago. Debe ofrecerse en el país elegido.
func (uc *UseCase) SavePaymentMethod(ctx context.Context, sessionID string, in dto.PaymentMethodRequest) (*dto.DraftResponse, error) {
	m := entity.PaymentMethod(in.PaymentMethod)
	return uc.mutate(ctx, sessionID, wizard.StepPaymentMethod, func(rec *wizard.Record) error {
		if err := wizard.ValidatePaymentMethod(uc.registry, m, rec.Draft); err != nil {
			return err
		}
		rec.Draft.PaymentMethod = m
		return nil
	})
}

// Skip avanza sin guardar la sección. Solo branding, team y properties.
func (uc *UseCase) Skip(ctx context.Context, sessionID, stepName string) (*dto.DraftResponse, error) {
	step, err := wizard.ParseStep(stepName)
	if err != nil {
		return nil, err
	}
	rec, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress, err := rec.Progress.Skip(step)
	if err != nil {
		return nil, err
	}
	rec.Progress = progress
	if err := uc.save(ctx, sessionID, rec); err != nil {
		return nil, err
	}
	uc.metrics.StepSkipped(step)
	return recordToDraftResponse(rec), nil
}

// Back retrocede un paso. Los datos ya guardados se conservan.
func (uc *UseCase) Back(ctx context.Context, sessionID string) (*dto.DraftResponse, error) {
	rec, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress, err := rec.Progress.Back()
	if err != nil {
		return nil, err
	}
	rec.Progress = progress
	if err := uc.save(ctx, sessionID, rec); err != nil {
		return nil, err
	}
	return recordToDraftResponse(rec), nil
}

// SuggestSlug deriva un slug del nombre de la organización.
func (uc *UseCase) SuggestSlug(name string) dto.SlugSuggestionResponse {
	s := strings.ReplaceAll(slug.Make(name), "_", "-")
	if len(s) > wizard.MaxSlugLength {
		s = strings.TrimRight(s[:wizard.MaxSlugLength], "-")
	}
	return dto.SlugSuggestionResponse{Slug: s, Valid: wizard.ValidSlug(s)}
}

// SummaryPDF genera el resumen del borrador para el paso review.
func (uc *UseCase) SummaryPDF(ctx context.Context, sessionID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	rec, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSummaryPDF(ctx, sessionID, rec)
}

// mutate completa el paso en el progreso, aplica fn y persiste. Si fn falla no se guarda nada.
func (uc *UseCase) mutate(ctx context.Context, sessionID string, step wizard.Step, fn func(rec *wizard.Record) error) (*dto.DraftResponse, error) {
	rec, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress, err := rec.Progress.Complete(step)
	if err != nil {
		return nil, err
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	rec.Progress = progress
	if err := uc.save(ctx, sessionID, rec); err != nil {
		return nil, err
	}
	uc.metrics.StepSaved(step)
	return recordToDraftResponse(rec), nil
}

func (uc *UseCase) load(ctx context.Context, sessionID string) (*wizard.Record, error) {
	rec, err := uc.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrDraftNotFound
	}
	return rec, nil
}

func (uc *UseCase) save(ctx context.Context, sessionID string, rec *wizard.Record) error {
	rec.UpdatedAt = uc.now().UTC()
	return uc.drafts.Save(ctx, sessionID, rec)
}
