// internal/econ/ledger.go
package econ

import "go-castle-defense/internal/defs"

// Ledger is the single authority over resource quantities. All costs are
// checked and spent through it; partial spends never happen.
type Ledger interface {
	Amount(kind string) int
	HasAll(cost defs.Cost) bool
	// SpendAll deducts the whole cost or nothing, reporting success.
	SpendAll(cost defs.Cost) bool
	Add(kind string, n int)
}

// ResourceLedger is the map-backed Ledger used by the game.
type ResourceLedger struct {
	amounts map[string]int
}

// NewResourceLedger seeds a ledger with the given starting resources.
func NewResourceLedger(initial defs.Cost) *ResourceLedger {
	l := &ResourceLedger{amounts: make(map[string]int, len(initial))}
	for kind, n := range initial {
		l.amounts[kind] = n
	}
	return l
}

func (l *ResourceLedger) Amount(kind string) int {
	return l.amounts[kind]
}

func (l *ResourceLedger) HasAll(cost defs.Cost) bool {
	for kind, n := range cost {
		if l.amounts[kind] < n {
			return false
		}
	}
	return true
}

func (l *ResourceLedger) SpendAll(cost defs.Cost) bool {
	if !l.HasAll(cost) {
		return false
	}
	for kind, n := range cost {
		l.amounts[kind] -= n
	}
	return true
}

func (l *ResourceLedger) Add(kind string, n int) {
	l.amounts[kind] += n
}

// Contents returns a copy of the current balances, for snapshots and the
// tuning console.
func (l *ResourceLedger) Contents() map[string]int {
	out := make(map[string]int, len(l.amounts))
	for kind, n := range l.amounts {
		if n != 0 {
			out[kind] = n
		}
	}
	return out
}
