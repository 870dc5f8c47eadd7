// internal/component/monster.go
package component

import (
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

// Monster is a single adversary marching on the castle. Both regular
// monsters and bosses use this struct; bosses carry an ability tag.
type Monster struct {
	ID   int
	Kind string // definition id (monster kind or boss kind)

	Position      geom.Point
	Health        float64
	MaxHealth     float64
	BaseSpeed     float64
	ContactDamage float64
	Flying        bool

	IsBoss       bool
	Ability      defs.BossAbility
	AbilityTimer float64

	Slow *SlowEffect

	IsDead        bool
	ReachedCastle bool

	// Волна, на которой монстр создан. Нужна для масштабирования лута.
	SpawnWave int

	// Set once the kill reward has been credited, so cleanup and combat
	// cannot double-pay.
	RewardGiven bool
}

// CurrentSpeed returns movement speed with the active slow applied.
// Never negative.
func (m *Monster) CurrentSpeed() float64 {
	speed := m.BaseSpeed
	if m.Slow != nil {
		speed *= m.Slow.Factor
	}
	if speed < 0 {
		return 0
	}
	return speed
}

// Update advances the monster by dt: slow timers, movement toward the
// castle, contact damage. Returns false when the monster should leave the
// active set (dead or reached the castle).
func (m *Monster) Update(dt float64, castle *Castle) bool {
	if m.IsDead || m.ReachedCastle {
		return false
	}

	if m.Slow != nil {
		m.Slow.Remaining -= dt
		if m.Slow.Remaining <= 0 {
			m.Slow = nil
		}
	}

	target := castle.NearestPoint(m.Position)
	m.Position, _ = geom.MoveToward(m.Position, target, m.CurrentSpeed()*dt)

	if geom.Distance(m.Position, castle.NearestPoint(m.Position)) <= config.ContactRange {
		castle.TakeDamage(m.ContactDamage)
		m.ReachedCastle = true
		return false
	}
	return true
}

// TakeDamage уменьшает здоровье и возвращает true, пока монстр жив.
func (m *Monster) TakeDamage(amount float64) bool {
	if m.IsDead || amount <= 0 {
		return !m.IsDead
	}
	m.Health -= amount
	if m.Health <= 0 {
		m.Health = 0
		m.IsDead = true
		return false
	}
	return true
}

// ApplySlow applies a slow. A stronger factor replaces the current one;
// a weaker reapplication only extends the remaining duration.
func (m *Monster) ApplySlow(factor, duration float64) {
	if factor < 0 {
		factor = 0
	}
	if m.Slow == nil || factor < m.Slow.Factor {
		m.Slow = &SlowEffect{Factor: factor, Remaining: duration}
		return
	}
	if duration > m.Slow.Remaining {
		m.Slow.Remaining = duration
	}
}

// HealthFraction returns health as a share of maximum, for snapshots.
func (m *Monster) HealthFraction() float64 {
	if m.MaxHealth <= 0 {
		return 0
	}
	return m.Health / m.MaxHealth
}
