package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// CountryHandler expone el registro de países y la validación por campo.
type CountryHandler struct {
	uc *usecase.CountryUseCase
}

// NewCountryHandler construye el handler inyectando el caso de uso.
func NewCountryHandler(uc *usecase.CountryUseCase) *CountryHandler {
	return &CountryHandler{uc: uc}
}

// List godoc
// @Summary      Listar países habilitados
// @Tags         countries
// @Produce      json
// @Success      200  {array}  dto.CountryResponse
// @Router       /api/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Obtener país por código ISO
// @Tags         countries
// @Produce      json
// @Param        code  path  string  true  "Código ISO 3166-1 alfa-2"
// @Success      200   {object}  dto.CountryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/countries/{code} [get]
func (h *CountryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Requirement godoc
// @Summary      Consultar si un campo es obligatorio en el país
// @Tags         countries
// @Produce      json
// @Param        code   path  string  true  "Código de país"
// @Param        field  path  string  true  "Campo (taxId, postalCode, phone, ...)"
// @Success      200    {object}  dto.FieldRequirementResponse
// @Router       /api/countries/{code}/requirements/{field} [get]
func (h *CountryHandler) Requirement(c *fiber.Ctx) error {
	return c.JSON(h.uc.Requirement(c.Params("code"), c.Params("field")))
}

// Validate godoc
// @Summary      Validar un valor ya formateado
// @Tags         countries
// @Accept       json
// @Produce      json
// @Param        code  path  string                    true  "Código de país"
// @Param        body  body  dto.ValidateFieldRequest  true  "Campo y valor"
// @Success      200   {object}  dto.ValidateFieldResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/countries/{code}/validate [post]
func (h *CountryHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Validate(c.Params("code"), in))
}

// Format godoc
// @Summary      Formatear un identificador fiscal
// @Tags         countries
// @Accept       json
// @Produce      json
// @Param        code  path  string                  true  "Código de país"
// @Param        body  body  dto.FormatFieldRequest  true  "Campo (taxId) y valor"
// @Success      200   {object}  dto.FormatFieldResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/countries/{code}/format [post]
func (h *CountryHandler) Format(c *fiber.Ctx) error {
	var in dto.FormatFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Format(c.Params("code"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PlanHandler catálogo de planes.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar planes
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
