package banca

import "math"

// DaySummary is the final per-participant view of the day: corrected balances,
// day totals, and the full settlement plan.
type DaySummary struct {
	Balances      *Balances  // corrected balances, roster order
	Drift         float64    // amount removed from the reference participant, 0 if none
	Reference     string     // participant that absorbed the drift, "" if none
	Plan          []Transfer // transfers settling the whole group
	Sessions      int
	TotalInvested float64
	TotalResult   float64
}

// CloseDay produces the day-end summary. Before planning, the sum of all
// balances is computed; if its magnitude exceeds Epsilon it is subtracted from
// the first roster member.
//
// That subtraction is a numerical stabilization step, not an economic rule: it
// keeps the settlement planner well-behaved when floating-point error (or a
// genuinely non-zero day result) leaves the balances summing away from zero.
// It lives here, outside Plan, so the planner stays a pure reusable function.
//
// CloseDay does not mutate the day; it can be called repeatedly.
func (d *Day) CloseDay() *DaySummary {
	corrected := d.balances.Clone()

	var drift float64
	var reference string
	if sum := corrected.Sum(); math.Abs(sum) > Epsilon && corrected.Len() > 0 {
		drift = sum
		reference = corrected.names[0]
		corrected.add(reference, -drift)
	}

	return &DaySummary{
		Balances:      corrected,
		Drift:         drift,
		Reference:     reference,
		Plan:          Plan(corrected),
		Sessions:      len(d.sessions),
		TotalInvested: d.TotalInvested(),
		TotalResult:   d.TotalResult(),
	}
}
