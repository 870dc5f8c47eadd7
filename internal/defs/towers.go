// internal/defs/towers.go
package defs

// TowerDefinition holds the static base stats of a tower variant.
// Derived (runtime) stats are recomputed from these by the component.
type TowerDefinition struct {
	ID   TowerKind `yaml:"id"`
	Name string    `yaml:"name"`

	Damage      float64 `yaml:"damage"`
	AttackSpeed float64 `yaml:"attack_speed"` // Выстрелов в секунду
	Range       float64 `yaml:"range"`

	// Splash only: radius of the secondary-damage area.
	AoERadius float64 `yaml:"aoe_radius,omitempty"`

	// Frozen only.
	SlowFactor   float64 `yaml:"slow_factor,omitempty"`
	SlowDuration float64 `yaml:"slow_duration,omitempty"`

	Targeting       TargetingRule `yaml:"targeting"`
	CanTargetFlying bool          `yaml:"can_target_flying"`

	Cost            Cost `yaml:"cost"`
	MonsterCoinCost int  `yaml:"monster_coin_cost"`
}

func defaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerArcher: {
			ID:              TowerArcher,
			Name:            "Archer Tower",
			Damage:          10,
			AttackSpeed:     1.5,
			Range:           150,
			Targeting:       TargetNearest,
			CanTargetFlying: true,
			Cost:            Cost{ResourceStone: 20},
			MonsterCoinCost: 15,
		},
		TowerSniper: {
			ID:              TowerSniper,
			Name:            "Sniper Tower",
			Damage:          50,
			AttackSpeed:     0.5,
			Range:           300,
			Targeting:       TargetMaxHealth,
			CanTargetFlying: true,
			Cost:            Cost{ResourceStone: 40, ResourceIron: 10},
			MonsterCoinCost: 50,
		},
		TowerSplash: {
			ID:              TowerSplash,
			Name:            "Splash Tower",
			Damage:          20,
			AttackSpeed:     0.8,
			Range:           200,
			AoERadius:       50,
			Targeting:       TargetNearest,
			Cost:            Cost{ResourceStone: 30, ResourceIron: 5, ResourceCopper: 2},
			MonsterCoinCost: 65,
		},
		TowerFrozen: {
			ID:              TowerFrozen,
			Name:            "Frozen Tower",
			Damage:          5,
			AttackSpeed:     1.0,
			Range:           180,
			SlowFactor:      0.5,
			SlowDuration:    3.0,
			Targeting:       TargetNearest,
			Cost:            Cost{ResourceStone: 25, ResourceIron: 5, ResourceCopper: 3},
			MonsterCoinCost: 65,
		},
	}
}
