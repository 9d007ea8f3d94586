package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CountryUC    *usecase.CountryUseCase
	PlanUC       *usecase.PlanUseCase
	SessionUC    *auth.SessionUseCase
	OnboardingUC *appon.UseCase
	Gateway      *appon.Gateway
	Metrics      nethttp.Handler // opcional: se monta en /metrics
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Países y planes (público)
	countries := api.Group("/countries")
	countryHandler := NewCountryHandler(deps.CountryUC)
	countries.Get("/", countryHandler.List)
	countries.Get("/:code", countryHandler.Get)
	countries.Get("/:code/requirements/:field", countryHandler.Requirement)
	countries.Post("/:code/validate", countryHandler.Validate)
	countries.Post("/:code/format", countryHandler.Format)

	planHandler := NewPlanHandler(deps.PlanUC)
	api.Get("/plans", planHandler.List)

	// Asistente de alta
	onboardingHandler := NewOnboardingHandler(deps.SessionUC, deps.OnboardingUC, deps.Gateway)
	onboarding := api.Group("/onboarding")
	onboarding.Post("/sessions", onboardingHandler.StartSession)

	// Rutas de la sesión (requieren Bearer Token)
	session := onboarding.Group("/", AuthMiddleware(deps.JWTSecret))
	session.Get("/draft", onboardingHandler.GetDraft)
	session.Put("/steps/organization-info", onboardingHandler.SaveOrganization)
	session.Put("/steps/branding", onboardingHandler.SaveBranding)
	session.Put("/steps/team", onboardingHandler.SaveTeam)
	session.Put("/steps/properties", onboardingHandler.SaveProperties)
	session.Put("/steps/plan", onboardingHandler.SelectPlan)
	session.Put("/steps/payment-method", onboardingHandler.SavePaymentMethod)
	session.Post("/steps/:step/skip", onboardingHandler.Skip)
	session.Post("/back", onboardingHandler.Back)
	session.Post("/complete", onboardingHandler.Complete)
	session.Post("/retry", onboardingHandler.Retry)
	session.Get("/summary.pdf", onboardingHandler.SummaryPDF)
	session.Get("/slug-suggestion", onboardingHandler.SuggestSlug)
}
