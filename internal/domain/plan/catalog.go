// Package plan contiene el catálogo estático de planes de suscripción ofrecidos en el alta.
package plan

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Identificadores de plan.
const (
	Starter      = "starter"
	Professional = "professional"
	Enterprise   = "enterprise"
)

// yearlyMonths meses cobrados en el ciclo anual (dos meses de regalo).
const yearlyMonths = 10

// Plan plan de suscripción. MaxProperties 0 = ilimitado.
type Plan struct {
	ID              string
	Name            string
	MonthlyPriceUSD decimal.Decimal
	MaxProperties   int
	MaxMembers      int
	Features        []string
}

// Price devuelve el precio del ciclo indicado.
func (p Plan) Price(cycle entity.BillingCycle) decimal.Decimal {
	if cycle == entity.BillingYearly {
		return p.MonthlyPriceUSD.Mul(decimal.NewFromInt(yearlyMonths)).Round(2)
	}
	return p.MonthlyPriceUSD.Round(2)
}

// AllowsProperties informa si el plan admite n inmuebles.
func (p Plan) AllowsProperties(n int) bool {
	return p.MaxProperties == 0 || n <= p.MaxProperties
}

// AllowsMembers informa si el plan admite n miembros invitados.
func (p Plan) AllowsMembers(n int) bool {
	return p.MaxMembers == 0 || n <= p.MaxMembers
}

var catalog = []Plan{
	{
		ID:              Starter,
		Name:            "Starter",
		MonthlyPriceUSD: decimal.RequireFromString("29.00"),
		MaxProperties:   10,
		MaxMembers:      3,
		Features:        []string{"properties", "leases", "payments"},
	},
	{
		ID:              Professional,
		Name:            "Professional",
		MonthlyPriceUSD: decimal.RequireFromString("99.00"),
		MaxProperties:   100,
		MaxMembers:      25,
		Features:        []string{"properties", "leases", "payments", "maintenance", "reports"},
	},
	{
		ID:              Enterprise,
		Name:            "Enterprise",
		MonthlyPriceUSD: decimal.RequireFromString("299.00"),
		Features:        []string{"properties", "leases", "payments", "maintenance", "reports", "api", "sso"},
	},
}

// Catalog devuelve los planes en orden de presentación.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// Find busca un plan por ID.
func Find(id string) (Plan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
