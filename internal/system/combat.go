// internal/system/combat.go
package system

import (
	"sort"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

// splashFraction — доля урона, получаемая вторичными целями сплеша.
const splashFraction = 0.5

// targetSelector picks the primary target from the in-range candidates,
// which arrive sorted by distance (closest first, ties by ID).
type targetSelector func(candidates []*component.Monster, from geom.Point) *component.Monster

// selectors — таблица правил прицеливания. Новое правило добавляется
// здесь и в defs.
var selectors = map[defs.TargetingRule]targetSelector{
	defs.TargetNearest:   selectNearest,
	defs.TargetMaxHealth: selectMaxHealth,
}

func selectNearest(candidates []*component.Monster, _ geom.Point) *component.Monster {
	return candidates[0]
}

// selectMaxHealth: самая жирная цель, при равенстве ближняя.
func selectMaxHealth(candidates []*component.Monster, _ geom.Point) *component.Monster {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Health > best.Health {
			best = c
		}
	}
	return best
}

// CombatSystem resolves tower fire. It owns no entities; the ledger,
// death handler and castle-healing sink are injected.
type CombatSystem struct {
	onDeath  func(*component.Monster)
	healSink func(amount float64)
}

// NewCombatSystem wires the kill handler (reward payout) and the healing
// sink (Serene Spirit).
func NewCombatSystem(onDeath func(*component.Monster), healSink func(float64)) *CombatSystem {
	return &CombatSystem{onDeath: onDeath, healSink: healSink}
}

// Update accumulates attack timers and fires every tower that is due.
// Towers iterate in the given order; callers pass them ID-sorted so runs
// with the same seed stay identical.
func (s *CombatSystem) Update(dt float64, towers []*component.Tower, monsters []*component.Monster) {
	for _, t := range towers {
		t.AttackTimer += dt
		if t.AttackSpeed <= 0 {
			continue
		}
		period := 1.0 / t.AttackSpeed
		for t.AttackTimer >= period {
			t.AttackTimer -= period
			// Цели ищем перед каждым выстрелом: прошлый мог убить.
			candidates := s.candidates(t, monsters)
			if len(candidates) == 0 {
				// Не копим "долг" выстрелов без целей.
				if t.AttackTimer >= period {
					t.AttackTimer = 0
				}
				break
			}
			s.fire(t, candidates, monsters)
		}
	}
}

// candidates returns alive in-range monsters the tower may hit, sorted
// by distance with ID as the tiebreak.
func (s *CombatSystem) candidates(t *component.Tower, monsters []*component.Monster) []*component.Monster {
	var out []*component.Monster
	for _, m := range monsters {
		if m.IsDead || m.ReachedCastle {
			continue
		}
		if m.Flying && !t.CanTargetFlying {
			continue
		}
		if !t.InRange(m.Position) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := geom.Distance(t.Position, out[i].Position)
		dj := geom.Distance(t.Position, out[j].Position)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *CombatSystem) fire(t *component.Tower, candidates, all []*component.Monster) {
	selector, ok := selectors[t.Targeting]
	if !ok {
		selector = selectNearest
	}
	primary := selector(candidates, t.Position)

	s.hit(t, primary, t.Damage)

	if t.SlowFactor > 0 && !primary.IsDead {
		primary.ApplySlow(t.SlowFactor, t.SlowDuration)
	}

	if t.AoERadius > 0 {
		for _, m := range all {
			if m == primary || m.IsDead || m.ReachedCastle {
				continue
			}
			if m.Flying && !t.CanTargetFlying {
				continue
			}
			if geom.Distance(primary.Position, m.Position) <= t.AoERadius {
				s.hit(t, m, t.Damage*splashFraction)
			}
		}
	}
}

// hit applies damage, feeds the healing sink and reports a kill exactly
// once.
func (s *CombatSystem) hit(t *component.Tower, m *component.Monster, damage float64) {
	dealt := damage
	if m.Health < dealt {
		dealt = m.Health
	}
	alive := m.TakeDamage(damage)
	if t.HealingFraction > 0 && s.healSink != nil && dealt > 0 {
		s.healSink(dealt * t.HealingFraction)
	}
	if !alive && s.onDeath != nil {
		s.onDeath(m)
	}
}
