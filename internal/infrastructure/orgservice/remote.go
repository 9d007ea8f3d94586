package orgservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que RemoteService implementa OrganizationService.
var _ appon.OrganizationService = (*RemoteService)(nil)

// RemoteService delega la creación a la API externa de organizaciones (POST {baseURL}/organizations).
// Usa net/http de la librería estándar; no hay SDK del servicio.
type RemoteService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRemoteService construye el adaptador. timeout <= 0 usa 15 s.
func NewRemoteService(baseURL, apiKey string, timeout time.Duration) *RemoteService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RemoteService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Protocolo de la API de organizaciones ────────────────────────────────────

type remoteOrganization struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Country       string          `json:"country"`
	Type          string          `json:"type"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	TaxID         string          `json:"taxId"`
	Address       string          `json:"address"`
	PostalCode    string          `json:"postalCode"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Website       string          `json:"website"`
	PrimaryColor  string          `json:"primaryColor"`
	Logo          string          `json:"logo"`
	PlanID        string          `json:"planId"`
	BillingCycle  string          `json:"billingCycle"`
	PlanPrice     decimal.Decimal `json:"planPrice"`
	PaymentMethod string          `json:"paymentMethod"`
	Notifications map[string]bool `json:"notifications"`
	OwnerID       string          `json:"ownerId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateOrganization envía la carga tal cual. 4xx con mensaje -> *RejectionError; 5xx y red -> error simple.
// El slug viaja como Idempotency-Key: un reintento tras un timeout no duplica la organización.
func (s *RemoteService) CreateOrganization(ctx context.Context, in dto.CreateOrganizationRequest) (*entity.Organization, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("orgservice: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/organizations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("orgservice: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", in.Slug)
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("orgservice: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("orgservice: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("orgservice: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var e remoteError
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil && e.Message != "" {
			return nil, &appon.RejectionError{Code: e.Code, Message: e.Message}
		}
		return nil, fmt.Errorf("orgservice: HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("orgservice: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var out remoteOrganization
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("orgservice: deserializar respuesta: %w", err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("orgservice: respuesta sin id de organización")
	}
	return &entity.Organization{
		ID:            out.ID,
		Name:          out.Name,
		Slug:          out.Slug,
		Country:       out.Country,
		Type:          entity.OrganizationType(out.Type),
		City:          out.City,
		State:         out.State,
		TaxID:         out.TaxID,
		Address:       out.Address,
		PostalCode:    out.PostalCode,
		Phone:         out.Phone,
		Email:         out.Email,
		Website:       out.Website,
		PrimaryColor:  out.PrimaryColor,
		Logo:          out.Logo,
		PlanID:        out.PlanID,
		BillingCycle:  entity.BillingCycle(out.BillingCycle),
		PlanPrice:     out.PlanPrice,
		PaymentMethod: entity.PaymentMethod(out.PaymentMethod),
		Notifications: out.Notifications,
		OwnerID:       out.OwnerID,
		CreatedAt:     out.CreatedAt,
	}, nil
}
