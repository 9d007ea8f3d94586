package onboarding

import (
	"context"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

// OrganizationService capacidad externa que crea la organización (tenant).
// Un rechazo con mensaje para el usuario se devuelve como *RejectionError.
type OrganizationService interface {
	CreateOrganization(ctx context.Context, in dto.CreateOrganizationRequest) (*entity.Organization, error)
}

// RejectionError rechazo estructurado de la capacidad (ej. slug tomado).
// Message se muestra tal cual al usuario.
type RejectionError struct {
	Code    string
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

// Códigos de rechazo conocidos.
const (
	RejectSlugTaken = "SLUG_TAKEN"
	RejectInvalid   = "INVALID"
)

// EventPublisher publica el alta de una organización. Errores no revierten el alta.
type EventPublisher interface {
	PublishOrganizationCreated(ctx context.Context, org *entity.Organization) error
}

// SummaryPDFGenerator genera el resumen imprimible del borrador (paso review).
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, sessionID string, rec *wizard.Record) ([]byte, error)
}

// Metrics contadores del asistente. La implementación vive en infrastructure.
type Metrics interface {
	StepSaved(step wizard.Step)
	StepSkipped(step wizard.Step)
	SubmissionFinished(status Status, elapsed time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) StepSaved(wizard.Step)                   {}
func (nopMetrics) StepSkipped(wizard.Step)                 {}
func (nopMetrics) SubmissionFinished(Status, time.Duration) {}

type nopPublisher struct{}

func (nopPublisher) PublishOrganizationCreated(context.Context, *entity.Organization) error {
	return nil
}
