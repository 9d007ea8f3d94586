// Package metrics expone contadores Prometheus del asistente de alta.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
)

var _ appon.Metrics = (*OnboardingMetrics)(nil)

const namespace = "propiedades"

// OnboardingMetrics registra pasos guardados, omitidos, envíos y barridos de borradores.
type OnboardingMetrics struct {
	registry       *prometheus.Registry
	stepsSaved     *prometheus.CounterVec
	stepsSkipped   *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	submitDuration *prometheus.HistogramVec
	draftsSwept    prometheus.Counter
}

// New crea las métricas sobre un registro propio (incluye métricas de proceso y runtime de Go).
func New() *OnboardingMetrics {
	reg := prometheus.NewRegistry()
	m := &OnboardingMetrics{
		registry: reg,
		stepsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "steps_saved_total",
			Help:      "Pasos del asistente guardados, por paso.",
		}, []string{"step"}),
		stepsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "steps_skipped_total",
			Help:      "Pasos opcionales omitidos, por paso.",
		}, []string{"step"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "submissions_total",
			Help:      "Envíos del borrador por resultado (success, no-data, error).",
		}, []string{"status"}),
		submitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "submission_duration_seconds",
			Help:      "Duración del envío del borrador.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		draftsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "drafts_expired_deleted_total",
			Help:      "Borradores vencidos borrados por el barrido.",
		}),
	}
	reg.MustRegister(
		m.stepsSaved, m.stepsSkipped, m.submissions, m.submitDuration, m.draftsSwept,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// StepSaved implementa appon.Metrics.
func (m *OnboardingMetrics) StepSaved(step wizard.Step) {
	m.stepsSaved.WithLabelValues(string(step)).Inc()
}

// StepSkipped implementa appon.Metrics.
func (m *OnboardingMetrics) StepSkipped(step wizard.Step) {
	m.stepsSkipped.WithLabelValues(string(step)).Inc()
}

// SubmissionFinished implementa appon.Metrics.
func (m *OnboardingMetrics) SubmissionFinished(status appon.Status, elapsed time.Duration) {
	m.submissions.WithLabelValues(string(status)).Inc()
	m.submitDuration.WithLabelValues(string(status)).Observe(elapsed.Seconds())
}

// DraftsSwept suma los borradores borrados por una pasada del barrido.
func (m *OnboardingMetrics) DraftsSwept(n int) {
	m.draftsSwept.Add(float64(n))
}

// Handler expone el registro en formato Prometheus.
func (m *OnboardingMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registro subyacente (tests).
func (m *OnboardingMetrics) Registry() *prometheus.Registry {
	return m.registry
}
