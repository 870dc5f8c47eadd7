// internal/defs/monsters.go
package defs

// SpawnWeight describes a linear-in-wave spawn weight with clamping:
// weight(w) = clamp(Base + Slope*w, Min, Max).
type SpawnWeight struct {
	Base  float64 `yaml:"base"`
	Slope float64 `yaml:"slope"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// At возвращает вес для заданного номера волны.
func (sw SpawnWeight) At(wave int) float64 {
	v := sw.Base + sw.Slope*float64(wave)
	if v < sw.Min {
		return sw.Min
	}
	if v > sw.Max {
		return sw.Max
	}
	return v
}

// MonsterDefinition holds base stats of a regular monster variant.
// Health and damage are wave-scaled by the factory; speed is not.
type MonsterDefinition struct {
	ID     MonsterKind `yaml:"id"`
	Name   string      `yaml:"name"`
	Health float64     `yaml:"health"`
	Speed  float64     `yaml:"speed"`
	Damage float64     `yaml:"damage"`
	Flying bool        `yaml:"flying,omitempty"`

	// Wave number from which the kind participates in spawn rolls.
	UnlockWave int         `yaml:"unlock_wave"`
	Weight     SpawnWeight `yaml:"weight"`
}

// BossDefinition holds stats of a boss. Bosses are not wave-scaled.
type BossDefinition struct {
	ID      BossKind    `yaml:"id"`
	Name    string      `yaml:"name"`
	Health  float64     `yaml:"health"`
	Speed   float64     `yaml:"speed"`
	Damage  float64     `yaml:"damage"`
	Ability BossAbility `yaml:"ability"`

	// Core dropped on kill, alongside the coin bounty.
	CoreDrop string `yaml:"core_drop"`
}

func defaultMonsters() map[MonsterKind]MonsterDefinition {
	return map[MonsterKind]MonsterDefinition{
		MonsterGrunt: {
			ID:         MonsterGrunt,
			Name:       "Grunt",
			Health:     50,
			Speed:      50,
			Damage:     10,
			UnlockWave: 1,
			Weight:     SpawnWeight{Base: 100, Slope: -2, Min: 20, Max: 100},
		},
		MonsterRunner: {
			ID:         MonsterRunner,
			Name:       "Runner",
			Health:     25,
			Speed:      100,
			Damage:     5,
			UnlockWave: 3,
			Weight:     SpawnWeight{Slope: 3, Min: 10, Max: 60},
		},
		MonsterTank: {
			ID:         MonsterTank,
			Name:       "Tank",
			Health:     200,
			Speed:      30,
			Damage:     20,
			UnlockWave: 5,
			Weight:     SpawnWeight{Slope: 2, Min: 10, Max: 50},
		},
		MonsterFlyer: {
			ID:         MonsterFlyer,
			Name:       "Flyer",
			Health:     40,
			Speed:      70,
			Damage:     15,
			Flying:     true,
			UnlockWave: 8,
			Weight:     SpawnWeight{Slope: 1.5, Min: 10, Max: 40},
		},
	}
}

func defaultBosses() map[BossKind]BossDefinition {
	return map[BossKind]BossDefinition{
		BossForce: {
			ID:       BossForce,
			Name:     "Force Boss",
			Health:   500,
			Speed:    40,
			Damage:   50,
			Ability:  AbilityKnockback,
			CoreDrop: ResourceForceCore,
		},
		BossSpirit: {
			ID:       BossSpirit,
			Name:     "Spirit Boss",
			Health:   400,
			Speed:    50,
			Damage:   40,
			Ability:  AbilityHeal,
			CoreDrop: ResourceSpiritCore,
		},
		BossMagic: {
			ID:       BossMagic,
			Name:     "Magic Boss",
			Health:   450,
			Speed:    45,
			Damage:   45,
			Ability:  AbilityTeleport,
			CoreDrop: ResourceMagicCore,
		},
		BossVoid: {
			ID:       BossVoid,
			Name:     "Void Boss",
			Health:   600,
			Speed:    35,
			Damage:   60,
			Ability:  AbilitySpawn,
			CoreDrop: ResourceVoidCore,
		},
	}
}
