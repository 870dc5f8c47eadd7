// internal/wave/abilities.go
package wave

import (
	"log"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
)

// Параметры способностей боссов.
const (
	lungeInterval    = 6.0
	lungeDistance    = 60.0
	healPerSecond    = 0.02 // доля максимального здоровья в секунду
	teleportInterval = 7.0
	teleportDistance = 100.0
	teleportJitter   = 40.0
	spawnInterval    = 8.0
	spawnCount       = 2
)

// abilityFunc runs one boss ability tick. Handlers may move the boss,
// heal it or add minions to the manager's active set.
type abilityFunc func(m *Manager, boss *component.Monster, dt float64, castle *component.Castle)

// abilityHandlers — таблица способностей по тегу. Добавление нового босса
// сводится к новой записи здесь и в defs.
var abilityHandlers = map[defs.BossAbility]abilityFunc{
	defs.AbilityKnockback: abilityLunge,
	defs.AbilityHeal:      abilityHeal,
	defs.AbilityTeleport:  abilityTeleport,
	defs.AbilitySpawn:     abilitySpawnMinions,
}

func (m *Manager) runAbility(boss *component.Monster, dt float64, castle *component.Castle) {
	handler, ok := abilityHandlers[boss.Ability]
	if !ok {
		return
	}
	handler(m, boss, dt, castle)
}

// abilityLunge: рывок вперёд к замку раз в lungeInterval секунд.
func abilityLunge(m *Manager, boss *component.Monster, dt float64, castle *component.Castle) {
	boss.AbilityTimer += dt
	if boss.AbilityTimer < lungeInterval {
		return
	}
	boss.AbilityTimer -= lungeInterval
	boss.Position = stepToward(boss.Position, castle.NearestPoint(boss.Position), lungeDistance)
}

// abilityHeal: постоянная регенерация, не выше максимума.
func abilityHeal(m *Manager, boss *component.Monster, dt float64, castle *component.Castle) {
	if boss.Health >= boss.MaxHealth {
		return
	}
	boss.Health += boss.MaxHealth * healPerSecond * dt
	if boss.Health > boss.MaxHealth {
		boss.Health = boss.MaxHealth
	}
}

// abilityTeleport: скачок к замку со случайным боковым смещением.
func abilityTeleport(m *Manager, boss *component.Monster, dt float64, castle *component.Castle) {
	boss.AbilityTimer += dt
	if boss.AbilityTimer < teleportInterval {
		return
	}
	boss.AbilityTimer -= teleportInterval
	pos := stepToward(boss.Position, castle.NearestPoint(boss.Position), teleportDistance)
	pos.X += m.rng.Range(-teleportJitter, teleportJitter)
	boss.Position = pos
}

// abilitySpawnMinions: призывает миньонов текущей волны рядом с боссом.
// Миньоны попадают в активный набор и учитываются при завершении волны.
func abilitySpawnMinions(m *Manager, boss *component.Monster, dt float64, castle *component.Castle) {
	boss.AbilityTimer += dt
	if boss.AbilityTimer < spawnInterval {
		return
	}
	boss.AbilityTimer -= spawnInterval

	for i := 0; i < spawnCount; i++ {
		pos := boss.Position
		pos.X += m.rng.Range(-30, 30)
		minion, err := NewMonster(m.lib, defs.MonsterGrunt, pos, m.CurrentWave)
		if err != nil {
			log.Printf("boss minion spawn failed: %v", err)
			return
		}
		m.addMonster(minion)
	}
}
