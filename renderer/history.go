package renderer

import "github.com/bancaday/banca"

// HistoryRow is one closed session in the day's results log.
type HistoryRow struct {
	Number   int
	Host     string
	Invested string
	Final    string
	Result   string
}

// HistoryView is the renderable form of the session history.
type HistoryView struct {
	Rows []HistoryRow
}

// NewHistory builds the view for the closed sessions, numbered from 1.
func NewHistory(sessions []banca.Session, currency string) *HistoryView {
	v := &HistoryView{}
	for i, s := range sessions {
		v.Rows = append(v.Rows, HistoryRow{
			Number:   i + 1,
			Host:     s.Host,
			Invested: banca.M(s.TotalInvested, currency).String(),
			Final:    banca.M(s.FinalAmount, currency).String(),
			Result:   banca.M(s.Result(), currency).SignedString(),
		})
	}
	return v
}

// RenderHistory renders the session history to markdown.
func RenderHistory(v *HistoryView) string {
	return renderTemplate("history", "history.md", nil, v)
}
