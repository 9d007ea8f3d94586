package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/pdf"
)

func TestGenerateSummaryPDF_BorradorCompleto(t *testing.T) {
	taxID := "12.345.678/0001-90"
	rec := wizard.NewRecord(time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC))
	rec.Draft = entity.OrganizationDraft{
		Organization:  &entity.OrganizationInfo{Name: "Acme Imóveis", Slug: "acme-imoveis", Country: "BR", TaxID: &taxID},
		Team:          &entity.Team{Invitations: []entity.Invite{{Email: "ana@acme.com", Role: entity.RoleAdmin}}},
		Properties:    []entity.PropertyDraft{{Name: "Torre A", City: "São Paulo", Units: 24, Kind: entity.PropertyResidential}},
		Plan:          &entity.PlanSelection{PlanID: "professional", BillingCycle: entity.BillingYearly},
		PaymentMethod: entity.PaymentPix,
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), "sess-1", rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSummaryPDF_BorradorVacio(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), "sess-2", wizard.NewRecord(time.Now()))
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = pdf.NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), "sess-3", nil)
	assert.Error(t, err)
}
