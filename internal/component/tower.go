// internal/component/tower.go
package component

import (
	"fmt"
	"math"

	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/pkg/geom"
)

// ItemSlots — количество ячеек под предметы у каждой башни.
const ItemSlots = 2

// Tower is a placed defensive tower. Base stats grow through upgrades;
// derived stats are recomputed from base whenever items change.
type Tower struct {
	ID       int
	Kind     defs.TowerKind
	Position geom.Point

	// Базовые характеристики. Улучшения меняют именно их.
	BaseDamage       float64
	BaseAttackSpeed  float64
	BaseRange        float64
	BaseAoERadius    float64
	BaseSlowFactor   float64
	BaseSlowDuration float64

	// Derived stats, base × item effects. Combat reads only these.
	Damage       float64
	AttackSpeed  float64
	Range        float64
	AoERadius    float64
	SlowFactor   float64
	SlowDuration float64

	// Доля нанесённого урона, которая лечит замок (Serene Spirit).
	HealingFraction float64

	Targeting       defs.TargetingRule
	CanTargetFlying bool

	DamageLevel  int
	SpeedLevel   int
	RangeLevel   int
	UtilityLevel int // AoE radius for Splash, slow duration for Frozen

	AttackTimer float64
	Items       [ItemSlots]string
	Selected    bool

	lib *defs.Library
}

// NewTower builds a tower of the given kind at pos. Unknown kinds return
// an error wrapping defs.ErrUnknownTower.
func NewTower(kind defs.TowerKind, pos geom.Point, lib *defs.Library) (*Tower, error) {
	def, err := lib.Tower(kind)
	if err != nil {
		return nil, fmt.Errorf("create tower %q: %w", kind, err)
	}
	t := &Tower{
		Kind:     kind,
		Position: pos,

		BaseDamage:       def.Damage,
		BaseAttackSpeed:  def.AttackSpeed,
		BaseRange:        def.Range,
		BaseAoERadius:    def.AoERadius,
		BaseSlowFactor:   def.SlowFactor,
		BaseSlowDuration: def.SlowDuration,

		Targeting:       def.Targeting,
		CanTargetFlying: def.CanTargetFlying,

		DamageLevel:  1,
		SpeedLevel:   1,
		RangeLevel:   1,
		UtilityLevel: 1,

		lib: lib,
	}
	t.RecomputeStats()
	return t, nil
}

// RecomputeStats resets derived stats to base and reapplies every equipped
// item. Idempotent for any equip/unequip sequence.
func (t *Tower) RecomputeStats() {
	t.Damage = t.BaseDamage
	t.AttackSpeed = t.BaseAttackSpeed
	t.Range = t.BaseRange
	t.AoERadius = t.BaseAoERadius
	t.SlowFactor = t.BaseSlowFactor
	t.SlowDuration = t.BaseSlowDuration
	t.HealingFraction = 0

	for _, id := range t.Items {
		if id == "" {
			continue
		}
		def, err := t.lib.Item(id)
		if err != nil {
			continue
		}
		t.applyItem(def)
	}
}

func (t *Tower) applyItem(def defs.ItemDefinition) {
	if def.AoEMultiplier > 0 {
		switch t.Kind {
		case defs.TowerSplash:
			t.AoERadius *= def.AoEMultiplier
		case defs.TowerFrozen:
			t.Range *= def.AoEMultiplier
		default:
			// Одиночным башням предмет даёт собственный сплеш.
			if def.GrantedSplashRadius > t.AoERadius {
				t.AoERadius = def.GrantedSplashRadius
			}
		}
	}
	t.HealingFraction += def.HealingFraction
}

// EquipItem puts the item into the slot. The new item is consumed from the
// ledger; a previously equipped item goes back to it. Rejected when the
// item is unknown or not held.
func (t *Tower) EquipItem(slot int, id string, ledger econ.Ledger) error {
	if slot < 0 || slot >= ItemSlots {
		return fmt.Errorf("equip item: slot %d out of range", slot)
	}
	if _, err := t.lib.Item(id); err != nil {
		return fmt.Errorf("equip item %q: %w", id, err)
	}
	if !ledger.SpendAll(defs.Cost{id: 1}) {
		return fmt.Errorf("equip item %q: none in storage", id)
	}
	if prev := t.Items[slot]; prev != "" {
		ledger.Add(prev, 1)
	}
	t.Items[slot] = id
	t.RecomputeStats()
	return nil
}

// UnequipItem clears the slot and returns the item to the ledger.
func (t *Tower) UnequipItem(slot int, ledger econ.Ledger) {
	if slot < 0 || slot >= ItemSlots || t.Items[slot] == "" {
		return
	}
	ledger.Add(t.Items[slot], 1)
	t.Items[slot] = ""
	t.RecomputeStats()
}

// upgradeCost combines the scaled resource cost and the scaled Monster
// Coin cost into one map, so the spend is a single atomic operation.
func (t *Tower) upgradeCost(level int) defs.Cost {
	def := t.lib.Towers[t.Kind]
	bal := t.lib.Balance
	cost := scaleCost(def.Cost, math.Pow(bal.UpgradeCostGrowth, float64(level-1)))
	mc := int(float64(def.MonsterCoinCost) * math.Pow(bal.UpgradeMCGrowth, float64(level-1)))
	cost[defs.ResourceCoins] += mc
	return cost
}

// UpgradeDamageCost возвращает цену следующего улучшения урона.
func (t *Tower) UpgradeDamageCost() defs.Cost { return t.upgradeCost(t.DamageLevel) }

// UpgradeSpeedCost возвращает цену следующего улучшения скорострельности.
func (t *Tower) UpgradeSpeedCost() defs.Cost { return t.upgradeCost(t.SpeedLevel) }

// UpgradeRangeCost возвращает цену следующего улучшения дальности.
func (t *Tower) UpgradeRangeCost() defs.Cost { return t.upgradeCost(t.RangeLevel) }

// UpgradeUtilityCost возвращает цену следующего улучшения спец-пути.
func (t *Tower) UpgradeUtilityCost() defs.Cost { return t.upgradeCost(t.UtilityLevel) }

// UpgradeDamage spends the dual cost atomically and raises base damage.
func (t *Tower) UpgradeDamage(ledger econ.Ledger) bool {
	if !ledger.SpendAll(t.UpgradeDamageCost()) {
		return false
	}
	t.BaseDamage *= t.lib.Balance.DamageUpgradeGrowth
	t.DamageLevel++
	t.RecomputeStats()
	return true
}

// UpgradeSpeed spends the dual cost atomically and raises attack speed.
func (t *Tower) UpgradeSpeed(ledger econ.Ledger) bool {
	if !ledger.SpendAll(t.UpgradeSpeedCost()) {
		return false
	}
	t.BaseAttackSpeed *= t.lib.Balance.AttackSpeedGrowth
	t.SpeedLevel++
	t.RecomputeStats()
	return true
}

// UpgradeRange spends the dual cost atomically and raises range.
func (t *Tower) UpgradeRange(ledger econ.Ledger) bool {
	if !ledger.SpendAll(t.UpgradeRangeCost()) {
		return false
	}
	t.BaseRange *= t.lib.Balance.RangeUpgradeGrowth
	t.RangeLevel++
	t.RecomputeStats()
	return true
}

// UpgradeUtility upgrades the variant path: AoE radius for Splash, slow
// duration for Frozen. Other kinds have no utility path.
func (t *Tower) UpgradeUtility(ledger econ.Ledger) bool {
	switch t.Kind {
	case defs.TowerSplash, defs.TowerFrozen:
	default:
		return false
	}
	if !ledger.SpendAll(t.UpgradeUtilityCost()) {
		return false
	}
	switch t.Kind {
	case defs.TowerSplash:
		t.BaseAoERadius *= t.lib.Balance.AoEUpgradeGrowth
	case defs.TowerFrozen:
		t.BaseSlowDuration *= t.lib.Balance.SlowDurationGrowth
	}
	t.UtilityLevel++
	t.RecomputeStats()
	return true
}

// InRange reports whether p lies within attack range.
func (t *Tower) InRange(p geom.Point) bool {
	return geom.Distance(t.Position, p) <= t.Range
}
