// internal/component/castle.go
package component

import (
	"math"

	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/pkg/geom"
)

// Castle is the objective the monsters march on. Position is the centre
// of its footprint.
type Castle struct {
	Position geom.Point
	Width    float64
	Height   float64

	Health          float64
	MaxHealth       float64
	DamageReduction float64
	HealthRegen     float64 // HP в секунду

	HealthLevel    int
	ReductionLevel int
	RegenLevel     int

	bal *defs.Balance
}

// NewCastle builds a castle with the balance's starting stats.
func NewCastle(pos geom.Point, width, height float64, bal *defs.Balance) *Castle {
	return &Castle{
		Position:        pos,
		Width:           width,
		Height:          height,
		Health:          bal.CastleHealth,
		MaxHealth:       bal.CastleHealth,
		DamageReduction: bal.CastleReduction,
		HealthRegen:     bal.CastleRegen,
		HealthLevel:     1,
		ReductionLevel:  1,
		RegenLevel:      1,
		bal:             bal,
	}
}

// Bounds возвращает прямоугольник основания замка.
func (c *Castle) Bounds() (minX, minY, maxX, maxY float64) {
	return c.Position.X - c.Width/2, c.Position.Y - c.Height/2,
		c.Position.X + c.Width/2, c.Position.Y + c.Height/2
}

// NearestPoint returns the point of the footprint closest to p.
func (c *Castle) NearestPoint(p geom.Point) geom.Point {
	minX, minY, maxX, maxY := c.Bounds()
	return geom.Point{
		X: geom.Clamp(p.X, minX, maxX),
		Y: geom.Clamp(p.Y, minY, maxY),
	}
}

// TakeDamage applies damage after mitigation. Health never drops below 0.
func (c *Castle) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	c.Health -= amount * (1 - c.DamageReduction)
	if c.Health < 0 {
		c.Health = 0
	}
}

// Update regenerates health, clamped to the maximum.
func (c *Castle) Update(dt float64) {
	if c.Health <= 0 || c.Health >= c.MaxHealth {
		return
	}
	c.Heal(c.HealthRegen * dt)
}

// Heal restores health, clamped to the maximum.
func (c *Castle) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// IsDestroyed reports whether health has been depleted.
func (c *Castle) IsDestroyed() bool {
	return c.Health <= 0
}

// ResetHealth restores health to the maximum. Upgrade levels survive the
// reset; this is the game-over recovery path.
func (c *Castle) ResetHealth() {
	c.Health = c.MaxHealth
}

// UpgradeHealthCost возвращает цену следующего улучшения здоровья.
func (c *Castle) UpgradeHealthCost() defs.Cost {
	return scaleCost(c.bal.CastleHealthCost, math.Pow(c.bal.CastleCostGrowth, float64(c.HealthLevel-1)))
}

// UpgradeReductionCost возвращает цену следующего улучшения брони.
func (c *Castle) UpgradeReductionCost() defs.Cost {
	return scaleCost(c.bal.CastleReduceCost, math.Pow(c.bal.CastleCostGrowth, float64(c.ReductionLevel-1)))
}

// UpgradeRegenCost возвращает цену следующего улучшения регенерации.
func (c *Castle) UpgradeRegenCost() defs.Cost {
	return scaleCost(c.bal.CastleRegenCost, math.Pow(c.bal.CastleCostGrowth, float64(c.RegenLevel-1)))
}

// UpgradeHealth spends the scaled cost and multiplies max health. Current
// health grows by the same amount so the upgrade is never a setback.
func (c *Castle) UpgradeHealth(ledger econ.Ledger) bool {
	if !ledger.SpendAll(c.UpgradeHealthCost()) {
		return false
	}
	gained := c.MaxHealth * (c.bal.CastleHealthGrowth - 1)
	c.MaxHealth += gained
	c.Health += gained
	c.HealthLevel++
	return true
}

// UpgradeReduction spends the scaled cost and multiplies mitigation,
// capped at the balance maximum.
func (c *Castle) UpgradeReduction(ledger econ.Ledger) bool {
	if c.DamageReduction >= c.bal.MaxReduction {
		return false
	}
	if !ledger.SpendAll(c.UpgradeReductionCost()) {
		return false
	}
	c.DamageReduction *= c.bal.CastleReduceGrowth
	if c.DamageReduction > c.bal.MaxReduction {
		c.DamageReduction = c.bal.MaxReduction
	}
	c.ReductionLevel++
	return true
}

// UpgradeRegen spends the scaled cost and multiplies regeneration.
func (c *Castle) UpgradeRegen(ledger econ.Ledger) bool {
	if !ledger.SpendAll(c.UpgradeRegenCost()) {
		return false
	}
	c.HealthRegen *= c.bal.CastleRegenGrowth
	c.RegenLevel++
	return true
}

func scaleCost(base defs.Cost, mult float64) defs.Cost {
	out := make(defs.Cost, len(base))
	for kind, n := range base {
		out[kind] = int(float64(n) * mult)
	}
	return out
}
