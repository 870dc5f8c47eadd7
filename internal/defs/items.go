// internal/defs/items.go
package defs

// ItemDefinition describes an equippable tower modifier and its crafting
// recipe at the coresmith.
type ItemDefinition struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`

	// Unstoppable Force: множитель для AoE и дальности.
	AoEMultiplier float64 `yaml:"aoe_multiplier,omitempty"`
	// Splash radius granted to single-target towers.
	GrantedSplashRadius float64 `yaml:"granted_splash_radius,omitempty"`

	// Serene Spirit: доля нанесённого урона, лечащая замок.
	HealingFraction float64 `yaml:"healing_fraction,omitempty"`

	CraftCost Cost `yaml:"craft_cost"`
}

func defaultItems() map[string]ItemDefinition {
	return map[string]ItemDefinition{
		ItemUnstoppableForce: {
			ID:                  ItemUnstoppableForce,
			Description:         "Amplifies area damage and grants splash to precise towers",
			AoEMultiplier:       1.3,
			GrantedSplashRadius: 30,
			CraftCost:           Cost{ResourceStone: 50, ResourceForceCore: 1},
		},
		ItemSereneSpirit: {
			ID:              ItemSereneSpirit,
			Description:     "A share of damage dealt restores the castle",
			HealingFraction: 0.05,
			CraftCost:       Cost{ResourceStone: 50, ResourceSpiritCore: 1},
		},
	}
}
