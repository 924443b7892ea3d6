package banca

import (
	"fmt"
	"math"
	"slices"
)

// Contribution is one participant's buy-in within a session. Paid records
// whether the buy-in was physically handed to the session host at entry time;
// an unpaid buy-in means the host fronted that cash.
type Contribution struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}

// Session is one closed round of pooled investment and payout. Once appended
// to a Day's history it is never modified.
type Session struct {
	Host          string
	FinalAmount   float64
	Contributions []Contribution
	TotalInvested float64
}

// Result returns the session's economic result, the difference between the
// pot's closing value and the amount invested into it.
func (s Session) Result() float64 {
	return s.FinalAmount - s.TotalInvested
}

// CloseSession settles the current session and appends it to the day's
// history. Contributions with amount <= 0 are excluded first; the remaining
// ones must belong to roster members and sum to a positive total, and host
// must be a roster member.
//
// Each contributor receives share - value, where share is their proportional
// part of the final pot (value / totalInvested * finalAmount). The sum of
// these profit/loss terms is finalAmount - totalInvested: the pot
// redistribution conserves money up to floating-point error.
//
// After all profit/loss updates, unpaid buy-ins are transferred: for every
// contribution with Paid == false whose contributor is not the host, the
// contribution amount moves from the contributor's balance to the host's.
// This pass is zero-sum.
//
// On any validation failure the day is left untouched. On success it returns
// a snapshot of the updated balances.
func (d *Day) CloseSession(contributions []Contribution, finalAmount float64, host string) (*Balances, error) {
	if host == "" || !d.balances.Has(host) {
		return nil, fmt.Errorf("%w: %q", ErrNoHostSelected, host)
	}
	if math.IsNaN(finalAmount) || math.IsInf(finalAmount, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFinalAmount, finalAmount)
	}

	var kept []Contribution
	var totalInvested float64
	for _, c := range contributions {
		if c.Amount <= 0 {
			continue
		}
		if !d.balances.Has(c.Name) {
			return nil, fmt.Errorf("%w: contributor %q", ErrParticipantNotFound, c.Name)
		}
		kept = append(kept, c)
		totalInvested += c.Amount
	}
	if totalInvested <= 0 {
		return nil, ErrNoContributions
	}

	// All validations passed: from here on the session fully commits.
	for _, c := range kept {
		share := c.Amount / totalInvested * finalAmount
		d.balances.add(c.Name, share-c.Amount)
	}
	// Debt adjustment runs after every profit/loss update so it operates on
	// post-pot balances. The host is owed the fronted buy-in regardless of how
	// the pot performed.
	for _, c := range kept {
		if !c.Paid && c.Name != host {
			d.balances.add(c.Name, -c.Amount)
			d.balances.add(host, c.Amount)
		}
	}

	d.sessions = append(d.sessions, Session{
		Host:          host,
		FinalAmount:   finalAmount,
		Contributions: slices.Clone(kept),
		TotalInvested: totalInvested,
	})
	return d.balances.Clone(), nil
}
