package system

import (
	"math"
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

func newTestTower(t *testing.T, kind defs.TowerKind, pos geom.Point) *component.Tower {
	t.Helper()
	tw, err := component.NewTower(kind, pos, defs.DefaultLibrary())
	if err != nil {
		t.Fatal(err)
	}
	return tw
}

func grunt(id int, pos geom.Point, health float64) *component.Monster {
	return &component.Monster{ID: id, Kind: "Grunt", Position: pos, Health: health, MaxHealth: health, BaseSpeed: 50}
}

func TestArcherHitsNearest(t *testing.T) {
	tw := newTestTower(t, defs.TowerArcher, geom.Point{X: 0, Y: 0})
	near := grunt(1, geom.Point{X: 50, Y: 0}, 100)
	far := grunt(2, geom.Point{X: 100, Y: 0}, 100)
	monsters := []*component.Monster{far, near}

	cs := NewCombatSystem(nil, nil)
	// Один период атаки лучника: 1/1.5 секунды.
	cs.Update(1.0/1.5, []*component.Tower{tw}, monsters)

	if near.Health != 90 {
		t.Errorf("near health = %v, want 90", near.Health)
	}
	if far.Health != 100 {
		t.Errorf("far health = %v, want 100 (untouched)", far.Health)
	}
}

func TestSniperPrefersMaxHealth(t *testing.T) {
	tw := newTestTower(t, defs.TowerSniper, geom.Point{X: 0, Y: 0})
	weak := grunt(1, geom.Point{X: 30, Y: 0}, 40)
	fat := grunt(2, geom.Point{X: 200, Y: 0}, 300)
	monsters := []*component.Monster{weak, fat}

	cs := NewCombatSystem(nil, nil)
	cs.Update(2.0, []*component.Tower{tw}, monsters) // один выстрел

	if fat.Health != 250 {
		t.Errorf("fat health = %v, want 250", fat.Health)
	}
	if weak.Health != 40 {
		t.Errorf("weak health = %v, want 40 (untouched)", weak.Health)
	}
}

func TestSplashDamageRadius(t *testing.T) {
	tw := newTestTower(t, defs.TowerSplash, geom.Point{X: 0, Y: 0})
	primary := grunt(1, geom.Point{X: 100, Y: 0}, 500)
	inRadius := grunt(2, geom.Point{X: 140, Y: 0}, 500)   // 40 от цели
	outRadius := grunt(3, geom.Point{X: 160, Y: 0}, 500)  // 60 от цели
	monsters := []*component.Monster{primary, inRadius, outRadius}

	cs := NewCombatSystem(nil, nil)
	cs.Update(1.0/0.8, []*component.Tower{tw}, monsters)

	if primary.Health != 480 {
		t.Errorf("primary health = %v, want 480", primary.Health)
	}
	// Вторичная цель получает ровно 50%.
	if inRadius.Health != 490 {
		t.Errorf("in-radius health = %v, want 490", inRadius.Health)
	}
	if outRadius.Health != 500 {
		t.Errorf("out-radius health = %v, want 500", outRadius.Health)
	}
}

func TestFrozenAppliesSlow(t *testing.T) {
	tw := newTestTower(t, defs.TowerFrozen, geom.Point{X: 0, Y: 0})
	m := grunt(1, geom.Point{X: 100, Y: 0}, 100)

	cs := NewCombatSystem(nil, nil)
	cs.Update(1.0, []*component.Tower{tw}, []*component.Monster{m})

	if m.Health != 95 {
		t.Errorf("health = %v, want 95", m.Health)
	}
	if m.Slow == nil || m.Slow.Factor != 0.5 || m.Slow.Remaining != 3.0 {
		t.Errorf("slow = %+v, want factor 0.5 for 3s", m.Slow)
	}
}

func TestFlyingFilter(t *testing.T) {
	flyer := func() *component.Monster {
		m := grunt(1, geom.Point{X: 100, Y: 0}, 100)
		m.Flying = true
		return m
	}

	// Splash и Frozen не достают летунов.
	for _, kind := range []defs.TowerKind{defs.TowerSplash, defs.TowerFrozen} {
		m := flyer()
		tw := newTestTower(t, kind, geom.Point{X: 0, Y: 0})
		cs := NewCombatSystem(nil, nil)
		cs.Update(5.0, []*component.Tower{tw}, []*component.Monster{m})
		if m.Health != 100 {
			t.Errorf("%s damaged a flyer: health = %v", kind, m.Health)
		}
	}

	// Archer и Sniper достают.
	for _, kind := range []defs.TowerKind{defs.TowerArcher, defs.TowerSniper} {
		m := flyer()
		tw := newTestTower(t, kind, geom.Point{X: 0, Y: 0})
		cs := NewCombatSystem(nil, nil)
		cs.Update(2.0, []*component.Tower{tw}, []*component.Monster{m})
		if m.Health == 100 {
			t.Errorf("%s failed to hit a flyer", kind)
		}
	}
}

func TestKillReportedOnce(t *testing.T) {
	tw := newTestTower(t, defs.TowerSniper, geom.Point{X: 0, Y: 0})
	m := grunt(1, geom.Point{X: 50, Y: 0}, 30) // умирает с одного выстрела

	deaths := 0
	cs := NewCombatSystem(func(mon *component.Monster) {
		deaths++
		if mon != m {
			t.Error("wrong monster reported")
		}
	}, nil)

	cs.Update(10.0, []*component.Tower{tw}, []*component.Monster{m})
	if deaths != 1 {
		t.Errorf("deaths reported = %d, want exactly 1", deaths)
	}
	if !m.IsDead {
		t.Error("monster must be dead")
	}
}

func TestSereneSpiritHealsCastle(t *testing.T) {
	tw := newTestTower(t, defs.TowerArcher, geom.Point{X: 0, Y: 0})
	tw.Items[0] = defs.ItemSereneSpirit
	tw.RecomputeStats()

	m := grunt(1, geom.Point{X: 50, Y: 0}, 100)

	healed := 0.0
	cs := NewCombatSystem(nil, func(amount float64) { healed += amount })
	cs.Update(1.0/1.5, []*component.Tower{tw}, []*component.Monster{m})

	// 5% от 10 урона.
	if math.Abs(healed-0.5) > 1e-9 {
		t.Errorf("healed = %v, want 0.5", healed)
	}

	// Оверкилл лечит только за фактически снятое здоровье.
	m2 := grunt(2, geom.Point{X: 50, Y: 0}, 4)
	healed = 0
	cs.Update(1.0/1.5, []*component.Tower{tw}, []*component.Monster{m2})
	if math.Abs(healed-0.2) > 1e-9 {
		t.Errorf("healed = %v, want 0.2 (capped by remaining health)", healed)
	}
}

func TestNoShotDebtWithoutTargets(t *testing.T) {
	tw := newTestTower(t, defs.TowerArcher, geom.Point{X: 0, Y: 0})
	cs := NewCombatSystem(nil, nil)

	// Долгое затишье без целей не должно копить залп.
	cs.Update(30.0, []*component.Tower{tw}, nil)
	m := grunt(1, geom.Point{X: 50, Y: 0}, 1000)
	cs.Update(0.01, []*component.Tower{tw}, []*component.Monster{m})

	if m.Health < 990 {
		t.Errorf("health = %v, burst fire after idle period", m.Health)
	}
}
