package usecase

import (
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/plan"
)

// PlanUseCase expone el catálogo de planes.
type PlanUseCase struct{}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase() *PlanUseCase {
	return &PlanUseCase{}
}

// List devuelve los planes con precio mensual y anual.
func (uc *PlanUseCase) List() []dto.PlanResponse {
	catalog := plan.Catalog()
	out := make([]dto.PlanResponse, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, dto.PlanResponse{
			ID:            p.ID,
			Name:          p.Name,
			Currency:      "USD",
			MonthlyPrice:  p.Price(entity.BillingMonthly),
			YearlyPrice:   p.Price(entity.BillingYearly),
			MaxProperties: p.MaxProperties,
			MaxMembers:    p.MaxMembers,
			Features:      append([]string(nil), p.Features...),
		})
	}
	return out
}
