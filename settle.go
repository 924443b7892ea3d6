package banca

import "math"

// Epsilon is the threshold below which a balance magnitude counts as settled.
// One cent: anything smaller cannot be paid in cash.
const Epsilon = 0.01

// Transfer is a suggested payment from one participant to another. Transfers
// are transient: they are recomputed on demand from the current balances and
// never stored.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// Plan computes the ordered list of pairwise transfers that brings every
// balance within Epsilon of zero. It partitions participants into creditors
// (balance > Epsilon) and debtors (balance < -Epsilon) in the snapshot's
// iteration order and greedily matches the first debtor against the first
// creditor, transferring the smaller of the two outstanding magnitudes.
//
// The first-encountered policy does not guarantee the theoretical minimum
// transaction count; it is kept because who pays whom is observable behavior
// that depends on it.
//
// Every emitted transfer has Amount > 0 and From != To. If the input balances
// do not sum to (approximately) zero a residual necessarily remains on the
// side matching the sign of the sum; that is a property of the input, not an
// error.
//
// Plan is a pure function: the snapshot is not mutated.
func Plan(b *Balances) []Transfer {
	type party struct {
		name      string
		remaining float64 // always the positive outstanding magnitude
	}
	var debtors, creditors []party
	for _, name := range b.names {
		v := b.amount[name]
		switch {
		case v > Epsilon:
			creditors = append(creditors, party{name, v})
		case v < -Epsilon:
			debtors = append(debtors, party{name, -v})
		}
	}

	// Each iteration reduces the total outstanding magnitude by 2*amount > 0,
	// so the loop terminates.
	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		debtor, creditor := &debtors[0], &creditors[0]
		amount := math.Min(debtor.remaining, creditor.remaining)
		transfers = append(transfers, Transfer{From: debtor.name, To: creditor.name, Amount: amount})
		debtor.remaining -= amount
		creditor.remaining -= amount
		if debtor.remaining < Epsilon {
			debtors = debtors[1:]
		}
		if creditor.remaining < Epsilon {
			creditors = creditors[1:]
		}
	}
	return transfers
}
