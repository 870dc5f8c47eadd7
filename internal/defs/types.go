// internal/defs/types.go
package defs

import "errors"

// TowerKind identifies one of the fixed tower variants.
type TowerKind string

const (
	TowerArcher TowerKind = "Archer"
	TowerSniper TowerKind = "Sniper"
	TowerSplash TowerKind = "Splash"
	TowerFrozen TowerKind = "Frozen"
)

// MonsterKind identifies a regular monster variant.
type MonsterKind string

const (
	MonsterGrunt  MonsterKind = "Grunt"
	MonsterRunner MonsterKind = "Runner"
	MonsterTank   MonsterKind = "Tank"
	MonsterFlyer  MonsterKind = "Flyer"
)

// BossKind identifies a boss variant. Every 10th wave spawns one boss,
// cycling through the fixed order in Library.BossCycle.
type BossKind string

const (
	BossForce  BossKind = "Force"
	BossSpirit BossKind = "Spirit"
	BossMagic  BossKind = "Magic"
	BossVoid   BossKind = "Void"
)

// BossAbility tags the ability hook a boss executes during its update.
type BossAbility string

const (
	AbilityKnockback BossAbility = "KNOCKBACK"
	AbilityHeal      BossAbility = "HEAL"
	AbilityTeleport  BossAbility = "TELEPORT"
	AbilitySpawn     BossAbility = "SPAWN"
)

// TargetingRule selects the primary target among in-range monsters.
type TargetingRule string

const (
	TargetNearest   TargetingRule = "NEAREST"
	TargetMaxHealth TargetingRule = "MAX_HEALTH"
)

// Cost is a resource-kind → quantity map, spent atomically via the ledger.
type Cost map[string]int

// Clone returns an independent copy of the cost map.
func (c Cost) Clone() Cost {
	out := make(Cost, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Resource names used across definitions and the ledger.
const (
	ResourceStone      = "Stone"
	ResourceIron       = "Iron"
	ResourceCopper     = "Copper"
	ResourceThorium    = "Thorium"
	ResourceCoins      = "Monster Coins"
	ResourceForceCore  = "Force Core"
	ResourceSpiritCore = "Spirit Core"
	ResourceMagicCore  = "Magic Core"
	ResourceVoidCore   = "Void Core"
)

// Item names (equippable tower modifiers).
const (
	ItemUnstoppableForce = "Unstoppable Force"
	ItemSereneSpirit     = "Serene Spirit"
)

var (
	// ErrUnknownTower is returned when a factory is asked for a tower
	// kind that has no definition.
	ErrUnknownTower = errors.New("unknown tower kind")

	// ErrUnknownMonster is returned for undefined monster or boss kinds.
	ErrUnknownMonster = errors.New("unknown monster kind")

	// ErrUnknownItem is returned when equipping or crafting an item
	// that has no definition.
	ErrUnknownItem = errors.New("unknown item")
)
