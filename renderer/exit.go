package renderer

import "github.com/bancaday/banca"

// ExitView is the renderable form of an exit reconciliation.
type ExitView struct {
	Name       string
	DayBalance string
	InProgress string
	Net        string
	Rows       []PlanRow
}

// NewExit builds the view for a planned exit.
func NewExit(p *banca.ExitPlan, currency string) *ExitView {
	v := &ExitView{
		Name:       p.Name,
		DayBalance: banca.M(p.DayBalance, currency).SignedString(),
		InProgress: banca.M(p.InProgress, currency).String(),
		Net:        banca.M(p.Net, currency).SignedString(),
	}
	for _, t := range p.Transfers {
		v.Rows = append(v.Rows, PlanRow{
			From:   t.From,
			To:     t.To,
			Amount: banca.M(t.Amount, currency).String(),
		})
	}
	return v
}

// RenderExit renders the exit summary to markdown.
func RenderExit(v *ExitView) string {
	return renderTemplate("exit", "exit.md", nil, v)
}
