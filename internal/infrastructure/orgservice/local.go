// Package orgservice implementa la capacidad de creación de organizaciones:
// en la base propia (modo local) o delegando a la API externa de organizaciones (modo remote).
package orgservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/plan"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que LocalService implementa OrganizationService.
var _ appon.OrganizationService = (*LocalService)(nil)

// Mensajes de rechazo del modo local.
const (
	MessageSlugTaken         = "el slug ya está en uso"
	MessageUnknownPlan       = "el plan elegido no existe"
	MessageDuplicateInvitees = "hay invitaciones repetidas"
)

// TxRunner ejecuta fn con el repositorio de organizaciones atado a una transacción.
type TxRunner interface {
	RunOrganization(ctx context.Context, fn func(orgRepo repository.OrganizationRepository) error) error
}

// LocalService crea la organización con sus inmuebles e invitaciones en una sola transacción.
type LocalService struct {
	tx    TxRunner
	now   func() time.Time
	newID func() string
}

// NewLocalService construye el adaptador local.
func NewLocalService(tx TxRunner) *LocalService {
	return &LocalService{
		tx:    tx,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// CreateOrganization persiste la organización. Slug repetido -> *RejectionError SLUG_TAKEN.
// El precio del plan se congela al crear. Sin plan elegido se usa starter mensual.
func (s *LocalService) CreateOrganization(ctx context.Context, in dto.CreateOrganizationRequest) (*entity.Organization, error) {
	planID := in.PlanID
	if planID == "" {
		planID = plan.Starter
	}
	p, ok := plan.Find(planID)
	if !ok {
		return nil, &appon.RejectionError{Code: appon.RejectInvalid, Message: MessageUnknownPlan}
	}
	cycle := entity.BillingCycle(in.BillingCycle)
	if cycle == "" {
		cycle = entity.BillingMonthly
	}

	now := s.now().UTC()
	org := &entity.Organization{
		ID:            s.newID(),
		Name:          in.Name,
		Slug:          in.Slug,
		Country:       in.Country,
		Type:          entity.OrganizationType(in.Type),
		City:          in.City,
		State:         in.State,
		TaxID:         deref(in.TaxID),
		Address:       deref(in.Address),
		PostalCode:    deref(in.PostalCode),
		Phone:         deref(in.Phone),
		Email:         deref(in.Email),
		Website:       deref(in.Website),
		PrimaryColor:  deref(in.PrimaryColor),
		Logo:          deref(in.Logo),
		PlanID:        p.ID,
		BillingCycle:  cycle,
		PlanPrice:     p.Price(cycle),
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		Notifications: in.Notifications,
		OwnerID:       in.OwnerID,
		CreatedAt:     now,
	}

	props := make([]*entity.Property, 0, len(in.Properties))
	for _, pr := range in.Properties {
		props = append(props, &entity.Property{
			ID:             s.newID(),
			OrganizationID: org.ID,
			Name:           pr.Name,
			Address:        pr.Address,
			City:           pr.City,
			Units:          pr.Units,
			Kind:           entity.PropertyKind(pr.Kind),
			CreatedAt:      now,
		})
	}
	invs := make([]*entity.Invitation, 0, len(in.Invitations))
	for _, inv := range in.Invitations {
		invs = append(invs, &entity.Invitation{
			ID:             s.newID(),
			OrganizationID: org.ID,
			Email:          strings.ToLower(inv.Email),
			Role:           entity.MemberRole(inv.Role),
			CreatedAt:      now,
		})
	}

	err := s.tx.RunOrganization(ctx, func(repo repository.OrganizationRepository) error {
		if err := repo.Create(ctx, org); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return &appon.RejectionError{Code: appon.RejectSlugTaken, Message: MessageSlugTaken}
			}
			return err
		}
		if len(props) > 0 {
			if err := repo.AddProperties(ctx, props); err != nil {
				return err
			}
		}
		if len(invs) > 0 {
			if err := repo.AddInvitations(ctx, invs); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return &appon.RejectionError{Code: appon.RejectInvalid, Message: MessageDuplicateInvitees}
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
