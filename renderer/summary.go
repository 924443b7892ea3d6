package renderer

import "github.com/bancaday/banca"

// SummaryView is the renderable form of the day-end summary.
type SummaryView struct {
	Balances      *BalancesView
	Plan          *PlanView
	Sessions      int
	TotalInvested string
	TotalResult   string
	Drift         string // empty when no correction was applied
	Reference     string
}

// NewSummary builds the view for a closed day.
func NewSummary(s *banca.DaySummary, currency string) *SummaryView {
	v := &SummaryView{
		Balances:      NewBalances("Final Balances", s.Balances, currency),
		Plan:          NewPlan(s.Plan, currency),
		Sessions:      s.Sessions,
		TotalInvested: banca.M(s.TotalInvested, currency).String(),
		TotalResult:   banca.M(s.TotalResult, currency).SignedString(),
		Reference:     s.Reference,
	}
	if s.Drift != 0 {
		v.Drift = banca.M(s.Drift, currency).SignedString()
	}
	return v
}

// RenderSummary renders the day-end summary to markdown.
func RenderSummary(v *SummaryView) string {
	partials := map[string]string{
		"summary_balances": "balances.md",
		"summary_plan":     "plan.md",
	}
	return renderTemplate("summary", "summary.md", partials, v)
}
