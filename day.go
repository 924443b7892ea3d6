package banca

import (
	"fmt"
	"slices"
	"strings"
)

// Day is the exclusive owner of one game day's state: the active roster with
// its balance store and the history of closed sessions. A Day is built once at
// day start and discarded wholesale on reset; nothing survives it.
//
// Day is not safe for concurrent use. The engine is strictly one operation at
// a time, and every operation either fully commits or leaves the Day
// untouched.
type Day struct {
	balances *Balances
	sessions []Session
}

// NewDay starts a day with the given participant names. Names are trimmed,
// empty ones dropped, and duplicates removed keeping the first occurrence, so
// the resulting roster order is the order in which names were first given.
// Fewer than 2 remaining names is ErrInsufficientParticipants.
func NewDay(names []string) (*Day, error) {
	balances := NewBalances()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || balances.Has(name) {
			continue
		}
		balances.Set(name, 0)
	}
	if balances.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, balances.Len())
	}
	return &Day{balances: balances}, nil
}

// Participants returns the active roster in day-start order.
func (d *Day) Participants() []string {
	return d.balances.Names()
}

// HasParticipant reports whether name is on the active roster.
func (d *Day) HasParticipant(name string) bool {
	return d.balances.Has(name)
}

// Balance returns name's running net balance and whether name is on the
// roster.
func (d *Day) Balance(name string) (float64, bool) {
	return d.balances.Get(name)
}

// Balances returns a snapshot of the balance store. Mutating the snapshot does
// not affect the day.
func (d *Day) Balances() *Balances {
	return d.balances.Clone()
}

// Sessions returns the closed sessions in chronological order.
func (d *Day) Sessions() []Session {
	return slices.Clone(d.sessions)
}

// TotalInvested returns the cumulative amount invested across all closed
// sessions. It is a derived reporting quantity, not part of the ledger: the
// balance store tracks net profit/loss only.
func (d *Day) TotalInvested() float64 {
	var total float64
	for _, s := range d.sessions {
		total += s.TotalInvested
	}
	return total
}

// TotalResult returns the cumulative economic result of the day, the sum of
// finalAmount - totalInvested over all closed sessions.
func (d *Day) TotalResult() float64 {
	var total float64
	for _, s := range d.sessions {
		total += s.Result()
	}
	return total
}
