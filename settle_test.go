package banca

import (
	"math"
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	testCases := []struct {
		name     string
		balances *Balances
		want     []Transfer
	}{
		{
			name:     "single debtor single creditor",
			balances: balancesOf("Alice", -50.0, "Bob", 50.0),
			want:     []Transfer{{From: "Alice", To: "Bob", Amount: 50}},
		},
		{
			name:     "worked example: residual profit stays unsettled",
			balances: balancesOf("Alice", 120.0, "Bob", -80.0, "Carol", 10.0),
			want:     []Transfer{{From: "Bob", To: "Alice", Amount: 80}},
		},
		{
			name:     "debtor split across two creditors",
			balances: balancesOf("Alice", 30.0, "Bob", 70.0, "Carol", -100.0),
			want: []Transfer{
				{From: "Carol", To: "Alice", Amount: 30},
				{From: "Carol", To: "Bob", Amount: 70},
			},
		},
		{
			name:     "creditor served by two debtors",
			balances: balancesOf("Alice", -60.0, "Bob", 100.0, "Carol", -40.0),
			want: []Transfer{
				{From: "Alice", To: "Bob", Amount: 60},
				{From: "Carol", To: "Bob", Amount: 40},
			},
		},
		{
			name:     "already settled",
			balances: balancesOf("Alice", 0.0, "Bob", 0.004, "Carol", -0.004),
			want:     nil,
		},
		{
			name:     "empty store",
			balances: NewBalances(),
			want:     nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.balances.Clone()
			got := Plan(tc.balances)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Plan() = %v, want %v", got, tc.want)
			}
			// Purity: the input snapshot is untouched.
			if !reflect.DeepEqual(tc.balances, before) {
				t.Errorf("Plan() mutated its input: %v", tc.balances)
			}
		})
	}
}

// TestPlan_SettlesWithinEpsilon applies the plan back onto the balances and
// checks that every remaining magnitude is below Epsilon, or that the
// unavoidable residual matches the sign of the original sum.
func TestPlan_SettlesWithinEpsilon(t *testing.T) {
	testCases := []struct {
		name     string
		balances *Balances
	}{
		{"zero sum", balancesOf("Alice", 12.34, "Bob", -10.0, "Carol", -2.34)},
		{"positive residual", balancesOf("Alice", 120.0, "Bob", -80.0, "Carol", 10.0)},
		{"negative residual", balancesOf("Alice", -120.0, "Bob", 80.0, "Carol", -10.0)},
		{"many parties", balancesOf("A", 5.0, "B", -3.0, "C", 7.5, "D", -11.0, "E", 1.5)},
		{"tiny drift", balancesOf("A", 10.004999999, "B", -10.005000002)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sum := tc.balances.Sum()
			remaining := tc.balances.Clone()
			for _, tr := range Plan(tc.balances) {
				if tr.Amount <= 0 {
					t.Errorf("transfer amount %v is not positive", tr.Amount)
				}
				if tr.From == tr.To {
					t.Errorf("self transfer: %v", tr)
				}
				remaining.add(tr.From, tr.Amount)
				remaining.add(tr.To, -tr.Amount)
			}

			if math.Abs(sum) < Epsilon {
				// The whole group must be settled.
				for _, name := range remaining.Names() {
					if v, _ := remaining.Get(name); math.Abs(v) >= Epsilon {
						t.Errorf("balance[%s] = %v after settling, want |v| < %v", name, v, Epsilon)
					}
				}
				return
			}
			// A residual is unavoidable and must remain on exactly the side
			// matching the sign of the original sum.
			for _, name := range remaining.Names() {
				v, _ := remaining.Get(name)
				if math.Abs(v) < Epsilon {
					continue
				}
				if sum > 0 && v < 0 {
					t.Errorf("residual debtor %s = %v with positive sum %v", name, v, sum)
				}
				if sum < 0 && v > 0 {
					t.Errorf("residual creditor %s = %v with negative sum %v", name, v, sum)
				}
			}
		})
	}
}

// TestPlanOrderDeterminism pins the FIFO policy: the plan follows the order in
// which participants were added to the store, not their balance magnitudes.
func TestPlanOrderDeterminism(t *testing.T) {
	// Largest-first would match Dave (the biggest debtor) with Bob first.
	b := balancesOf("Alice", 10.0, "Bob", 90.0, "Carol", -30.0, "Dave", -70.0)
	want := []Transfer{
		{From: "Carol", To: "Alice", Amount: 10},
		{From: "Carol", To: "Bob", Amount: 20},
		{From: "Dave", To: "Bob", Amount: 70},
	}
	if got := Plan(b); !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %v, want %v", got, want)
	}

	// Same balances added in a different order yield a different, equally
	// valid plan; determinism is tied to insertion order by design.
	b2 := balancesOf("Dave", -70.0, "Carol", -30.0, "Bob", 90.0, "Alice", 10.0)
	want2 := []Transfer{
		{From: "Dave", To: "Bob", Amount: 70},
		{From: "Carol", To: "Bob", Amount: 20},
		{From: "Carol", To: "Alice", Amount: 10},
	}
	if got := Plan(b2); !reflect.DeepEqual(got, want2) {
		t.Errorf("Plan() = %v, want %v", got, want2)
	}
}
