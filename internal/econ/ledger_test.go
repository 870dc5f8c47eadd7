package econ

import (
	"testing"

	"go-castle-defense/internal/defs"
)

func TestSpendAllAtomic(t *testing.T) {
	l := NewResourceLedger(defs.Cost{defs.ResourceStone: 100, defs.ResourceIron: 5})

	// Недостаточно железа: ничего не должно списаться.
	if l.SpendAll(defs.Cost{defs.ResourceStone: 40, defs.ResourceIron: 10}) {
		t.Fatal("SpendAll should fail on insufficient iron")
	}
	if got := l.Amount(defs.ResourceStone); got != 100 {
		t.Errorf("stone = %d, want 100 (untouched after failed spend)", got)
	}

	if !l.SpendAll(defs.Cost{defs.ResourceStone: 40, defs.ResourceIron: 5}) {
		t.Fatal("SpendAll should succeed")
	}
	if got := l.Amount(defs.ResourceStone); got != 60 {
		t.Errorf("stone = %d, want 60", got)
	}
	if got := l.Amount(defs.ResourceIron); got != 0 {
		t.Errorf("iron = %d, want 0", got)
	}
}

func TestHasAllAndAdd(t *testing.T) {
	l := NewResourceLedger(nil)

	if l.HasAll(defs.Cost{defs.ResourceCoins: 1}) {
		t.Error("empty ledger should not afford anything")
	}
	if !l.HasAll(nil) {
		t.Error("empty cost is always affordable")
	}

	l.Add(defs.ResourceCoins, 10)
	l.Add(defs.ResourceCoins, 5)
	if got := l.Amount(defs.ResourceCoins); got != 15 {
		t.Errorf("coins = %d, want 15", got)
	}
}

func TestContentsCopy(t *testing.T) {
	l := NewResourceLedger(defs.Cost{defs.ResourceStone: 10})
	c := l.Contents()
	c[defs.ResourceStone] = 999
	if got := l.Amount(defs.ResourceStone); got != 10 {
		t.Errorf("ledger mutated through Contents copy: %d", got)
	}
}
