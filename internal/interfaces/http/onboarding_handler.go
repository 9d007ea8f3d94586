package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
)

// OnboardingHandler asistente de alta: sesión, pasos, navegación y envío.
type OnboardingHandler struct {
	sessions *auth.SessionUseCase
	uc       *appon.UseCase
	gateway  *appon.Gateway
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(sessions *auth.SessionUseCase, uc *appon.UseCase, gateway *appon.Gateway) *OnboardingHandler {
	return &OnboardingHandler{sessions: sessions, uc: uc, gateway: gateway}
}

// StartSession godoc
// @Summary      Abrir el asistente de alta
// @Description  Emite el token de sesión y crea el borrador vacío en organization-info.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSessionRequest  false  "Usuario (opcional)"
// @Success      201   {object}  dto.StartSessionResponse
// @Router       /api/onboarding/sessions [post]
func (h *OnboardingHandler) StartSession(c *fiber.Ctx) error {
	var in dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	sess, err := h.sessions.Issue(in.UserID)
	if err != nil {
		return writeError(c, err)
	}
	draft, err := h.uc.Start(c.UserContext(), sess.ID, sess.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StartSessionResponse{
		Token:     sess.Token,
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
		Draft:     *draft,
	})
}

// GetDraft godoc
// @Summary      Obtener el borrador de la sesión
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/draft [get]
func (h *OnboardingHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveOrganization godoc
// @Summary      Guardar datos de la organización
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OrganizationInfoRequest  true  "Datos de la organización"
// @Success      200   {object}  dto.DraftResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/onboarding/steps/organization-info [put]
func (h *OnboardingHandler) SaveOrganization(c *fiber.Ctx) error {
	var in dto.OrganizationInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SaveOrganization(c.UserContext(), GetSessionID(c), in))
}

// SaveBranding godoc
// @Summary      Guardar identidad visual y notificaciones
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BrandingRequest  true  "Logo, color y notificaciones"
// @Success      200   {object}  dto.DraftResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/onboarding/steps/branding [put]
func (h *OnboardingHandler) SaveBranding(c *fiber.Ctx) error {
	var in dto.BrandingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SaveBranding(c.UserContext(), GetSessionID(c), in))
}

// SaveTeam godoc
// @Summary      Guardar invitaciones del equipo
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TeamRequest  true  "Invitaciones"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/onboarding/steps/team [put]
func (h *OnboardingHandler) SaveTeam(c *fiber.Ctx) error {
	var in dto.TeamRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SaveTeam(c.UserContext(), GetSessionID(c), in))
}

// SaveProperties godoc
// @Summary      Guardar inmuebles iniciales
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PropertiesRequest  true  "Inmuebles"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/onboarding/steps/properties [put]
func (h *OnboardingHandler) SaveProperties(c *fiber.Ctx) error {
	var in dto.PropertiesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SaveProperties(c.UserContext(), GetSessionID(c), in))
}

// SelectPlan godoc
// @Summary      Elegir plan y ciclo de cobro
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PlanRequest  true  "Plan"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/onboarding/steps/plan [put]
func (h *OnboardingHandler) SelectPlan(c *fiber.Ctx) error {
	var in dto.PlanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SelectPlan(c.UserContext(), GetSessionID(c), in))
}

// SavePaymentMethod godoc
// @Summary      Elegir medio de pago
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PaymentMethodRequest  true  "Medio de pago"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/onboarding/steps/payment-method [put]
func (h *OnboardingHandler) SavePaymentMethod(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SavePaymentMethod(c.UserContext(), GetSessionID(c), in))
}

// Skip godoc
// @Summary      Omitir un paso opcional
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        step  path  string  true  "branding, team o properties"
// @Success      200   {object}  dto.DraftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding/steps/{step}/skip [post]
func (h *OnboardingHandler) Skip(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.Skip(c.UserContext(), GetSessionID(c), c.Params("step")))
}

// Back godoc
// @Summary      Volver al paso anterior
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/onboarding/back [post]
func (h *OnboardingHandler) Back(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.Back(c.UserContext(), GetSessionID(c)))
}

// Complete godoc
// @Summary      Enviar el borrador y crear la organización
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.SubmitResponse
// @Failure      422  {object}  dto.SubmitResponse
// @Failure      502  {object}  dto.SubmitResponse
// @Router       /api/onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	return h.writeOutcome(c, h.gateway.Submit(c.UserContext(), GetSessionID(c)))
}

// Retry godoc
// @Summary      Reintentar el envío con el borrador guardado
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.SubmitResponse
// @Router       /api/onboarding/retry [post]
func (h *OnboardingHandler) Retry(c *fiber.Ctx) error {
	return h.writeOutcome(c, h.gateway.Retry(c.UserContext(), GetSessionID(c)))
}

// SummaryPDF godoc
// @Summary      Descargar el resumen del borrador en PDF
// @Tags         onboarding
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/summary.pdf [get]
func (h *OnboardingHandler) SummaryPDF(c *fiber.Ctx) error {
	out, err := h.uc.SummaryPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="resumen-alta.pdf"`)
	return c.Send(out)
}

// SuggestSlug godoc
// @Summary      Sugerir un slug a partir del nombre
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        name  query  string  true  "Nombre de la organización"
// @Success      200   {object}  dto.SlugSuggestionResponse
// @Router       /api/onboarding/slug-suggestion [get]
func (h *OnboardingHandler) SuggestSlug(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	return c.JSON(h.uc.SuggestSlug(name))
}

// respond escribe el borrador actualizado o el error mapeado.
func (h *OnboardingHandler) respond(c *fiber.Ctx) func(*dto.DraftResponse, error) error {
	return func(out *dto.DraftResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func (h *OnboardingHandler) writeOutcome(c *fiber.Ctx, out appon.Outcome) error {
	return c.Status(outcomeStatus(out)).JSON(dto.SubmitResponse{
		Status:       string(out.Status),
		Message:      out.Message,
		Organization: appon.OrganizationToResponse(out.Organization),
		Errors:       appon.FieldErrorsToResponse(out.FieldErrors),
	})
}
