// Package events publica los eventos de dominio del alta en NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

var _ appon.EventPublisher = (*NATSPublisher)(nil)

// EventOrganizationCreated tipo del evento publicado tras un alta exitosa.
const EventOrganizationCreated = "organization.created"

// OrganizationCreated cuerpo JSON del evento.
type OrganizationCreated struct {
	Type           string    `json:"type"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Country        string    `json:"country"`
	PlanID         string    `json:"planId"`
	BillingCycle   string    `json:"billingCycle"`
	PaymentMethod  string    `json:"paymentMethod"`
	OwnerID        string    `json:"ownerId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NATSPublisher publica en un subject fijo. Nats-Msg-Id lleva el ID de la organización
// para que JetStream descarte duplicados si el subject está en un stream.
type NATSPublisher struct {
	nc           *nats.Conn
	subject      string
	flushTimeout time.Duration
}

// defaultFlushTimeout acota el flush cuando ctx no trae deadline.
const defaultFlushTimeout = 5 * time.Second

// Connect abre la conexión y construye el publicador.
func Connect(url, subject, clientName string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return NewNATSPublisher(nc, subject), nil
}

// NewNATSPublisher usa una conexión ya abierta.
func NewNATSPublisher(nc *nats.Conn, subject string) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: subject, flushTimeout: defaultFlushTimeout}
}

// PublishOrganizationCreated publica el evento y espera el flush al servidor.
// Si ctx no tiene deadline se aplica flushTimeout (FlushWithContext lo exige).
func (p *NATSPublisher) PublishOrganizationCreated(ctx context.Context, org *entity.Organization) error {
	payload, err := json.Marshal(OrganizationCreated{
		Type:           EventOrganizationCreated,
		OrganizationID: org.ID,
		Name:           org.Name,
		Slug:           org.Slug,
		Country:        org.Country,
		PlanID:         org.PlanID,
		BillingCycle:   string(org.BillingCycle),
		PaymentMethod:  string(org.PaymentMethod),
		OwnerID:        org.OwnerID,
		OccurredAt:     org.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = payload
	msg.Header.Set("Nats-Msg-Id", org.ID)
	msg.Header.Set("Event-Type", EventOrganizationCreated)

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.flushTimeout)
		defer cancel()
	}
	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush %s: %w", p.subject, err)
	}
	return nil
}

// Close vacía los mensajes pendientes y cierra la conexión.
func (p *NATSPublisher) Close() {
	_ = p.nc.Drain()
}
