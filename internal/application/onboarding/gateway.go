package onboarding

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/jhoicas/Propiedades-api/pkg/logger"
)

// Status resultado del envío del borrador.
type Status string

const (
	StatusSuccess Status = "success"
	StatusNoData  Status = "no-data"
	StatusError   Status = "error"
)

// Reason distingue el origen de un resultado error (se traduce a código HTTP).
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonInvalid     Reason = "invalid"     // el borrador no pasa las reglas de formato
	ReasonRejected    Reason = "rejected"    // la capacidad rechazó la carga con un mensaje
	ReasonUnavailable Reason = "unavailable" // fallo de infraestructura o respuesta inesperada
)

// Mensajes fijos del envío.
const (
	MessageGenericFailure = "no se pudo crear la organización"
	MessageNoData         = "faltan el nombre y el slug de la organización"
)

// Outcome resultado de Submit/Retry. Nunca se devuelve como error Go.
type Outcome struct {
	Status       Status
	Reason       Reason
	Organization *entity.Organization
	Message      string
	FieldErrors  []*domain.FieldError
}

// Gateway convierte el borrador completo en la llamada de creación de organización.
type Gateway struct {
	drafts   repository.DraftStore
	registry *country.Registry
	orgs     OrganizationService
	events   EventPublisher
	metrics  Metrics
	log      *logger.Logger
	now      func() time.Time
}

// NewGateway construye el gateway. events, metrics y log pueden ser nil.
func NewGateway(
	drafts repository.DraftStore,
	registry *country.Registry,
	orgs OrganizationService,
	events EventPublisher,
	metrics Metrics,
	log *logger.Logger,
) *Gateway {
	if events == nil {
		events = nopPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		drafts:   drafts,
		registry: registry,
		orgs:     orgs,
		events:   events,
		metrics:  metrics,
		log:      log.Component("submission_gateway"),
		now:      time.Now,
	}
}

// Submit envía el borrador de la sesión.
//   - sin borrador o sin nombre/slug: no-data, sin llamar a la capacidad; el asistente vuelve a organization-info.
//   - reglas de formato incumplidas: error con el mensaje de validación; borrador intacto.
//   - fallo de la capacidad: error con su mensaje (o el genérico); borrador intacto.
//   - éxito: se borra el borrador, se publica el evento y se devuelve la organización.
func (g *Gateway) Submit(ctx context.Context, sessionID string) (out Outcome) {
	start := g.now()
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Str("session_id", sessionID).Interface("panic", r).Msg("pánico durante el envío del borrador")
			out = Outcome{Status: StatusError, Reason: ReasonUnavailable, Message: MessageGenericFailure}
		}
		g.metrics.SubmissionFinished(out.Status, g.now().Sub(start))
	}()

	rec, err := g.drafts.Load(ctx, sessionID)
	if err != nil {
		g.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo leer el borrador")
		return Outcome{Status: StatusError, Reason: ReasonUnavailable, Message: MessageGenericFailure}
	}
	if rec == nil || !rec.Draft.HasMinimumData() {
		g.restart(ctx, sessionID, rec)
		return Outcome{Status: StatusNoData, Message: MessageNoData}
	}

	if err := g.validate(rec.Draft); err != nil {
		fes := domain.FieldErrors(err)
		msg := err.Error()
		if len(fes) > 0 {
			msg = fes[0].Error()
		}
		return Outcome{Status: StatusError, Reason: ReasonInvalid, Message: msg, FieldErrors: fes}
	}

	req := BuildCreateRequest(rec.Draft)
	req.OwnerID = rec.OwnerID
	org, err := g.orgs.CreateOrganization(ctx, req)
	if err != nil {
		var rej *RejectionError
		if errors.As(err, &rej) && rej.Message != "" {
			g.log.Warn().Str("session_id", sessionID).Str("slug", req.Slug).Str("code", rej.Code).Msg(rej.Message)
			return Outcome{Status: StatusError, Reason: ReasonRejected, Message: rej.Message}
		}
		g.log.Error().Err(err).Str("session_id", sessionID).Str("slug", req.Slug).Msg("fallo al crear la organización")
		return Outcome{Status: StatusError, Reason: ReasonUnavailable, Message: MessageGenericFailure}
	}
	if org == nil {
		g.log.Error().Str("session_id", sessionID).Msg("la capacidad no devolvió la organización creada")
		return Outcome{Status: StatusError, Reason: ReasonUnavailable, Message: MessageGenericFailure}
	}

	if err := g.drafts.Clear(ctx, sessionID); err != nil {
		g.log.Error().Err(err).Str("session_id", sessionID).Msg("organización creada pero el borrador no se pudo borrar")
	}
	if err := g.events.PublishOrganizationCreated(ctx, org); err != nil {
		g.log.Warn().Err(err).Str("organization_id", org.ID).Msg("no se pudo publicar organization.created")
	}
	g.log.Info().Str("organization_id", org.ID).Str("slug", org.Slug).Str("country", org.Country).Msg("organización creada")
	return Outcome{Status: StatusSuccess, Organization: org}
}

// Retry repite el envío con el borrador tal como quedó guardado.
func (g *Gateway) Retry(ctx context.Context, sessionID string) Outcome {
	return g.Submit(ctx, sessionID)
}

// validate aplica las reglas de formato previas al envío. El país debe estar habilitado.
func (g *Gateway) validate(d entity.OrganizationDraft) error {
	errs := []error{wizard.ValidateOrganizationInfo(g.registry, *d.Organization)}
	errs = append(errs, wizard.ValidatePaymentMethod(g.registry, d.EffectivePaymentMethod(), d))
	if d.Plan != nil {
		errs = append(errs, wizard.ValidatePlan(*d.Plan, d))
	}
	return errors.Join(errs...)
}

// restart devuelve el asistente al primer paso conservando lo ya cargado.
func (g *Gateway) restart(ctx context.Context, sessionID string, rec *wizard.Record) {
	if rec == nil {
		return
	}
	rec.Progress = rec.Progress.Restart()
	rec.UpdatedAt = g.now().UTC()
	if err := g.drafts.Save(ctx, sessionID, rec); err != nil {
		g.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo reiniciar el progreso del borrador")
	}
}
