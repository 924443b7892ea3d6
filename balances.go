package banca

import "slices"

// Balances is an insertion-ordered mapping from participant name to signed net
// balance. It is the single mutable accumulator of the engine: every
// accounting operation reads from and writes to exactly one Balances value,
// always passed explicitly, never held in package state.
//
// Iteration order is the order in which names were first added (the day-start
// roster order). The settlement planner depends on that order.
type Balances struct {
	names  []string
	amount map[string]float64
}

// NewBalances creates an empty balance store.
func NewBalances() *Balances {
	return &Balances{amount: make(map[string]float64)}
}

// Set inserts or updates the balance for name. A new name is appended at the
// end of the iteration order.
func (b *Balances) Set(name string, v float64) {
	if _, ok := b.amount[name]; !ok {
		b.names = append(b.names, name)
	}
	b.amount[name] = v
}

// Has reports whether name has a balance entry.
func (b *Balances) Has(name string) bool {
	_, ok := b.amount[name]
	return ok
}

// Get returns the balance for name, and whether the entry exists.
func (b *Balances) Get(name string) (float64, bool) {
	v, ok := b.amount[name]
	return v, ok
}

// add shifts the balance of an existing name by v. Callers validate membership
// first; adding to an unknown name is a silent no-op to keep the invariant
// "one entry per roster member" intact.
func (b *Balances) add(name string, v float64) {
	if _, ok := b.amount[name]; !ok {
		return
	}
	b.amount[name] += v
}

// Remove deletes the entry for name, reporting whether it existed.
func (b *Balances) Remove(name string) bool {
	if _, ok := b.amount[name]; !ok {
		return false
	}
	delete(b.amount, name)
	b.names = slices.DeleteFunc(b.names, func(n string) bool { return n == name })
	return true
}

// Names returns the participant names in iteration order.
func (b *Balances) Names() []string {
	return slices.Clone(b.names)
}

// Len returns the number of entries.
func (b *Balances) Len() int { return len(b.names) }

// Sum returns the sum of all balances. For a day with no numerical error this
// equals the cumulative economic result of all closed sessions.
func (b *Balances) Sum() float64 {
	var sum float64
	for _, name := range b.names {
		sum += b.amount[name]
	}
	return sum
}

// Clone returns an independent copy, preserving iteration order.
func (b *Balances) Clone() *Balances {
	c := &Balances{
		names:  slices.Clone(b.names),
		amount: make(map[string]float64, len(b.amount)),
	}
	for name, v := range b.amount {
		c.amount[name] = v
	}
	return c
}
