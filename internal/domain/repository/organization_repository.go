package repository

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para organizaciones creadas en modo local.
type OrganizationRepository interface {
	// Create devuelve domain.ErrDuplicate si el slug ya existe.
	Create(ctx context.Context, org *entity.Organization) error
	AddProperties(ctx context.Context, props []*entity.Property) error
	AddInvitations(ctx context.Context, invs []*entity.Invitation) error
}
