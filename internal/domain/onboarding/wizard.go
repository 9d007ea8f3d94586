// Package onboarding modela el asistente de alta de organizaciones: el borrador
// persistido, el progreso explícito entre pasos y las reglas de validación por sección.
package onboarding

import (
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Step paso del asistente.
type Step string

// Pasos en orden. review es terminal: allí se envía el borrador.
const (
	StepOrganizationInfo Step = "organization-info"
	StepBranding         Step = "branding"
	StepTeam             Step = "team"
	StepProperties       Step = "properties"
	StepPlan             Step = "plan"
	StepPaymentMethod    Step = "payment-method"
	StepReview           Step = "review"
)

var steps = []Step{
	StepOrganizationInfo,
	StepBranding,
	StepTeam,
	StepProperties,
	StepPlan,
	StepPaymentMethod,
	StepReview,
}

var skippable = map[Step]bool{
	StepBranding:   true,
	StepTeam:       true,
	StepProperties: true,
}

// Steps devuelve los pasos en orden.
func Steps() []Step {
	return append([]Step(nil), steps...)
}

// ParseStep valida el nombre de un paso.
func ParseStep(s string) (Step, error) {
	for _, st := range steps {
		if string(st) == s {
			return st, nil
		}
	}
	return "", domain.ErrUnknownStep
}

// IsSkippable informa si el paso se puede omitir.
func (s Step) IsSkippable() bool { return skippable[s] }

func (s Step) position() int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return -1
}

// Progress máquina de estados del asistente: paso actual y pasos completados.
// La navegación es consecuencia de las transiciones, no su fuente.
type Progress struct {
	Current   Step   `json:"current"`
	Completed []Step `json:"completed"`
	Skipped   []Step `json:"skipped,omitempty"`
}

// NewProgress progreso inicial en organization-info.
func NewProgress() Progress {
	return Progress{Current: StepOrganizationInfo, Completed: []Step{}}
}

// CanEnter informa si el paso ya fue alcanzado (se puede editar un paso anterior,
// nunca saltar hacia adelante).
func (p Progress) CanEnter(s Step) bool {
	pos := s.position()
	return pos >= 0 && pos <= p.Current.position()
}

// IsCompleted informa si el paso fue guardado.
func (p Progress) IsCompleted(s Step) bool {
	return containsStep(p.Completed, s)
}

// Complete marca el paso como guardado y avanza al siguiente.
func (p Progress) Complete(s Step) (Progress, error) {
	if err := p.checkEnter(s); err != nil {
		return p, err
	}
	next := p.clone()
	if !containsStep(next.Completed, s) {
		next.Completed = append(next.Completed, s)
	}
	next.Skipped = removeStep(next.Skipped, s)
	next.Current = stepAfter(s)
	return next, nil
}

// Skip avanza sin marcar el paso como completado. Solo pasos omitibles.
func (p Progress) Skip(s Step) (Progress, error) {
	if err := p.checkEnter(s); err != nil {
		return p, err
	}
	if !s.IsSkippable() {
		return p, domain.ErrStepNotSkippable
	}
	next := p.clone()
	if !containsStep(next.Skipped, s) && !containsStep(next.Completed, s) {
		next.Skipped = append(next.Skipped, s)
	}
	next.Current = stepAfter(s)
	return next, nil
}

// Back retrocede un paso.
func (p Progress) Back() (Progress, error) {
	pos := p.Current.position()
	if pos <= 0 {
		return p, domain.ErrFirstStep
	}
	next := p.clone()
	next.Current = steps[pos-1]
	return next, nil
}

// Restart vuelve a organization-info conservando el historial (resultado no-data).
func (p Progress) Restart() Progress {
	next := p.clone()
	next.Current = StepOrganizationInfo
	return next
}

func (p Progress) checkEnter(s Step) error {
	if s.position() < 0 {
		return domain.ErrUnknownStep
	}
	if s == StepReview || !p.CanEnter(s) {
		return domain.ErrStepOutOfOrder
	}
	return nil
}

func (p Progress) clone() Progress {
	return Progress{
		Current:   p.Current,
		Completed: append([]Step{}, p.Completed...),
		Skipped:   append([]Step(nil), p.Skipped...),
	}
}

func stepAfter(s Step) Step {
	pos := s.position()
	if pos < 0 || pos+1 >= len(steps) {
		return StepReview
	}
	return steps[pos+1]
}

func containsStep(list []Step, s Step) bool {
	for _, st := range list {
		if st == s {
			return true
		}
	}
	return false
}

func removeStep(list []Step, s Step) []Step {
	out := list[:0:0]
	for _, st := range list {
		if st != s {
			out = append(out, st)
		}
	}
	return out
}

// Record documento persistido por sesión: borrador completo más progreso.
// Se lee y se sobrescribe entero en cada paso.
type Record struct {
	Draft    entity.OrganizationDraft `json:"draft"`
	Progress Progress                 `json:"progress"`
	// OwnerID usuario que abrió la sesión (vacío si no se informó). Pasa a la organización creada.
	OwnerID   string    `json:"ownerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRecord borrador vacío al iniciar el asistente.
func NewRecord(now time.Time) *Record {
	return &Record{
		Progress:  NewProgress(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DraftKey clave de almacenamiento del borrador de una sesión.
func DraftKey(sessionID string) string {
	return "onboarding_data:" + sessionID
}
