package renderer

import "github.com/bancaday/banca"

// BalanceRow is one participant line in a balances table.
type BalanceRow struct {
	Name    string
	Balance string
}

// BalancesView is the renderable form of a balance snapshot.
type BalancesView struct {
	Title string
	Rows  []BalanceRow
	Total string
}

// NewBalances builds the view for a balance snapshot, in roster order.
func NewBalances(title string, b *banca.Balances, currency string) *BalancesView {
	v := &BalancesView{Title: title}
	for _, name := range b.Names() {
		amount, _ := b.Get(name)
		v.Rows = append(v.Rows, BalanceRow{Name: name, Balance: banca.M(amount, currency).SignedString()})
	}
	v.Total = banca.M(b.Sum(), currency).SignedString()
	return v
}

// RenderBalances renders the balances view to markdown.
func RenderBalances(v *BalancesView) string {
	return renderTemplate("balances", "balances.md", nil, v)
}
