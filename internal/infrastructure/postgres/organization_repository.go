package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// Asegura que OrganizationRepo implementa repository.OrganizationRepository.
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const organizationColumns = `id, name, slug, country, type, city, state, tax_id, address, postal_code, phone, email,
	website, primary_color, logo, plan_id, billing_cycle, plan_price, payment_method, notifications, owner_id, created_at`

// Create persiste una organización. Devuelve domain.ErrDuplicate si el slug ya existe.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	notifications, err := json.Marshal(org.Notifications)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	query := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err = r.q.Exec(ctx, query,
		org.ID, org.Name, org.Slug, org.Country, string(org.Type), org.City, org.State,
		org.TaxID, org.Address, org.PostalCode, org.Phone, org.Email, org.Website,
		org.PrimaryColor, org.Logo, org.PlanID, string(org.BillingCycle), org.PlanPrice,
		string(org.PaymentMethod), notifications, org.OwnerID, org.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// AddProperties persiste los inmuebles iniciales.
func (r *OrganizationRepo) AddProperties(ctx context.Context, props []*entity.Property) error {
	query := `
		INSERT INTO organization_properties (id, organization_id, name, address, city, units, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, p := range props {
		_, err := r.q.Exec(ctx, query, p.ID, p.OrganizationID, p.Name, p.Address, p.City, p.Units, string(p.Kind), p.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert property: %w", err)
		}
	}
	return nil
}

// AddInvitations persiste las invitaciones del equipo.
func (r *OrganizationRepo) AddInvitations(ctx context.Context, invs []*entity.Invitation) error {
	query := `
		INSERT INTO organization_invitations (id, organization_id, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, inv := range invs {
		_, err := r.q.Exec(ctx, query, inv.ID, inv.OrganizationID, inv.Email, string(inv.Role), inv.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert invitation: %w", err)
		}
	}
	return nil
}
