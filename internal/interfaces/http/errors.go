package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain"
)

// errorStatus traduce errores de dominio a código HTTP y código de error de la API.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrDraftNotFound, fiber.StatusNotFound, "DRAFT_NOT_FOUND"},
	{domain.ErrCountryNotFound, fiber.StatusNotFound, "COUNTRY_NOT_FOUND"},
	{domain.ErrUnknownStep, fiber.StatusNotFound, "UNKNOWN_STEP"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrStepOutOfOrder, fiber.StatusConflict, "STEP_OUT_OF_ORDER"},
	{domain.ErrStepNotSkippable, fiber.StatusConflict, "STEP_NOT_SKIPPABLE"},
	{domain.ErrFirstStep, fiber.StatusConflict, "FIRST_STEP"},
	{domain.ErrCountryUnsupported, fiber.StatusUnprocessableEntity, "COUNTRY_UNSUPPORTED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
}

// writeError responde con dto.ErrorResponse. Los errores de campo van en Details con 422.
func writeError(c *fiber.Ctx, err error) error {
	if fes := domain.FieldErrors(err); len(fes) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: fes[0].Error(),
			Details: appon.FieldErrorsToResponse(fes),
		})
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// outcomeStatus código HTTP del resultado de envío.
func outcomeStatus(out appon.Outcome) int {
	switch out.Status {
	case appon.StatusSuccess:
		return fiber.StatusCreated
	case appon.StatusNoData:
		return fiber.StatusUnprocessableEntity
	}
	switch out.Reason {
	case appon.ReasonInvalid:
		return fiber.StatusUnprocessableEntity
	case appon.ReasonRejected:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadGateway
	}
}
