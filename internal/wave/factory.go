// internal/wave/factory.go
package wave

import (
	"fmt"
	"math"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

// NewMonster builds a regular monster for the given wave. Health and
// contact damage scale by DifficultyGrowth^(wave-1); speed does not.
// Unknown kinds return an error wrapping defs.ErrUnknownMonster.
func NewMonster(lib *defs.Library, kind defs.MonsterKind, pos geom.Point, waveNum int) (*component.Monster, error) {
	def, err := lib.Monster(kind)
	if err != nil {
		return nil, fmt.Errorf("spawn monster %q: %w", kind, err)
	}
	scale := math.Pow(lib.Balance.DifficultyGrowth, float64(waveNum-1))
	return &component.Monster{
		Kind:          string(def.ID),
		Position:      pos,
		Health:        def.Health * scale,
		MaxHealth:     def.Health * scale,
		BaseSpeed:     def.Speed,
		ContactDamage: def.Damage * scale,
		Flying:        def.Flying,
		SpawnWave:     waveNum,
	}, nil
}

// NewBoss builds a boss. Bosses are not wave-scaled; their threat comes
// from abilities.
func NewBoss(lib *defs.Library, kind defs.BossKind, pos geom.Point, waveNum int) (*component.Monster, error) {
	def, err := lib.Boss(kind)
	if err != nil {
		return nil, fmt.Errorf("spawn boss %q: %w", kind, err)
	}
	return &component.Monster{
		Kind:          string(def.ID),
		Position:      pos,
		Health:        def.Health,
		MaxHealth:     def.Health,
		BaseSpeed:     def.Speed,
		ContactDamage: def.Damage,
		IsBoss:        true,
		Ability:       def.Ability,
		SpawnWave:     waveNum,
	}, nil
}
