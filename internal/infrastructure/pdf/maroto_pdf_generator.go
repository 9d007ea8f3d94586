// Package pdf genera el resumen imprimible del borrador de alta (paso review).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + slug       │  País + fecha del borrador   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: tipo / ciudad / ID fiscal / contacto                 │
//	│  PLAN: plan + ciclo + precio  │  medio de pago               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Inmueble | Ciudad | Uso | Unidades                   │
//	│  TABLA: Email invitado | Rol                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: pasos completados / omitidos                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	wizard "github.com/jhoicas/Propiedades-api/internal/domain/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/domain/plan"
)

var _ appon.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa onboarding.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSummaryPDF genera el resumen del borrador y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, sessionID string, rec *wizard.Record) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("pdf: borrador vacío")
	}
	d := rec.Draft
	org := entity.OrganizationInfo{}
	if d.Organization != nil {
		org = *d.Organization
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de alta de organización", true).
		WithAuthor("propiedades-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(org, rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(org))
	m.AddRows(planRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(d.Properties) > 0 {
		m.AddRows(sectionTitle("INMUEBLES"))
		m.AddRows(tableHeaderRow([]string{"Inmueble", "Ciudad", "Uso", "Unidades"}, []int{5, 3, 2, 2}))
		m.AddRows(propertyRows(d.Properties)...)
	}
	if d.Team != nil && len(d.Team.Invitations) > 0 {
		m.AddRows(sectionTitle("EQUIPO INVITADO"))
		m.AddRows(tableHeaderRow([]string{"Email", "Rol"}, []int{8, 4}))
		m.AddRows(inviteRows(d.Team.Invitations)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(sessionID, rec.Progress, d)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + slug (izq) y país + fecha del último guardado (der).
func headerRow(org entity.OrganizationInfo, rec *wizard.Record) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(org.Name, "Organización sin nombre"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Slug: "+nonEmpty(org.Slug, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE ALTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("País: "+nonEmpty(org.Country, "—"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Actualizado: "+rec.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func detailsRow(org entity.OrganizationInfo) core.Row {
	location := strings.Trim(strings.Join([]string{org.City, org.State}, ", "), ", ")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE LA ORGANIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Ubicación: %s   |   ID fiscal: %s",
				nonEmpty(string(org.Type), "—"),
				nonEmpty(location, "—"),
				deref(org.TaxID),
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Web: %s",
				deref(org.Email), deref(org.Phone), deref(org.Website),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// planRow: plan elegido con su precio (o starter mensual por defecto) y medio de pago.
func planRow(d entity.OrganizationDraft) core.Row {
	sel := entity.PlanSelection{PlanID: plan.Starter, BillingCycle: entity.BillingMonthly}
	if d.Plan != nil {
		sel = *d.Plan
	}
	planText := sel.PlanID
	if p, ok := plan.Find(sel.PlanID); ok {
		planText = fmt.Sprintf("%s (%s) USD %s", p.Name, sel.BillingCycle, p.Price(sel.BillingCycle).StringFixed(2))
	}
	return row.New(10).Add(
		col.New(7).Add(
			text.New("PLAN", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(planText, props.Text{Size: 9, Top: 5}),
		),
		col.New(5).Add(
			text.New("MEDIO DE PAGO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(string(d.EffectivePaymentMethod()), props.Text{Size: 9, Align: align.Right, Top: 5}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func propertyRows(items []entity.PropertyDraft) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, p := range items {
		out = append(out, row.New(6).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(p.City, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(p.Kind), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.Units), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return out
}

func inviteRows(invites []entity.Invite) []core.Row {
	out := make([]core.Row, 0, len(invites))
	for _, inv := range invites {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(inv.Email, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(string(inv.Role), props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return out
}

// footerRows: sesión, estado del asistente y notificaciones activas.
func footerRows(sessionID string, p wizard.Progress, d entity.OrganizationDraft) []core.Row {
	var enabled []string
	for k, v := range d.EffectiveNotifications() {
		if v {
			enabled = append(enabled, k)
		}
	}
	sort.Strings(enabled)
	return []core.Row{
		row.New(5).Add(col.New(12).Add(text.New(
			"Sesión: "+sessionID, props.Text{Size: 7, Color: colorGray, Top: 1},
		))),
		row.New(5).Add(col.New(12).Add(text.New(
			"Pasos completados: "+joinSteps(p.Completed), props.Text{Size: 7, Color: colorGray, Top: 1},
		))),
		row.New(5).Add(col.New(12).Add(text.New(
			"Pasos omitidos: "+joinSteps(p.Skipped), props.Text{Size: 7, Color: colorGray, Top: 1},
		))),
		row.New(5).Add(col.New(12).Add(text.New(
			"Notificaciones: "+nonEmpty(strings.Join(enabled, ", "), "ninguna"), props.Text{Size: 7, Color: colorGray, Top: 1},
		))),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return "—"
	}
	return nonEmpty(*s, "—")
}

func joinSteps(steps []wizard.Step) string {
	if len(steps) == 0 {
		return "ninguno"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
