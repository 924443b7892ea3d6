package renderer

import "github.com/bancaday/banca"

// PlanRow is one suggested payment, ready for display as "From pays To".
type PlanRow struct {
	From   string
	To     string
	Amount string
}

// PlanView is the renderable form of a settlement plan.
type PlanView struct {
	Rows []PlanRow
}

// NewPlan builds the view for a settlement plan, preserving its order.
func NewPlan(transfers []banca.Transfer, currency string) *PlanView {
	v := &PlanView{}
	for _, t := range transfers {
		v.Rows = append(v.Rows, PlanRow{
			From:   t.From,
			To:     t.To,
			Amount: banca.M(t.Amount, currency).String(),
		})
	}
	return v
}

// RenderPlan renders the settlement plan to markdown.
func RenderPlan(v *PlanView) string {
	return renderTemplate("plan", "plan.md", nil, v)
}
