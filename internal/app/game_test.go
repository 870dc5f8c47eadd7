package app

import (
	"math"
	"testing"

	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/save"
	"go-castle-defense/internal/utils"
	"go-castle-defense/pkg/geom"
)

func newTestGame() *Game {
	lib := defs.DefaultLibrary()
	return NewGame(lib, utils.NewPRNGService(1), save.NewManager(nil))
}

func TestPlaceTowerSpendsAtomically(t *testing.T) {
	g := newTestGame()
	pos := geom.Point{X: 200, Y: 300}

	// Стартовые ресурсы: 100 камня, 50 монет. Лучник: 20 камня + 15 монет.
	if _, err := g.PlaceTower(defs.TowerArcher, pos); err != nil {
		t.Fatal(err)
	}
	if got := g.Ledger.Amount(defs.ResourceStone); got != 80 {
		t.Errorf("stone = %d, want 80", got)
	}
	if got := g.Ledger.Amount(defs.ResourceCoins); got != 35 {
		t.Errorf("coins = %d, want 35", got)
	}
	if len(g.World.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(g.World.Towers))
	}

	// Снайпер требует железо, которого нет: ничего не списывается.
	before := g.Ledger.Amount(defs.ResourceStone)
	if _, err := g.PlaceTower(defs.TowerSniper, geom.Point{X: 300, Y: 300}); err == nil {
		t.Error("sniper without iron must be rejected")
	}
	if g.Ledger.Amount(defs.ResourceStone) != before {
		t.Error("failed placement must not spend")
	}
}

func TestPlacementValidation(t *testing.T) {
	g := newTestGame()

	// Пересечение с замком.
	if g.CanPlaceAt(g.World.Castle.Position) {
		t.Error("castle footprint must be blocked")
	}
	// Полоса спавна.
	if g.CanPlaceAt(geom.Point{X: 400, Y: 20}) {
		t.Error("spawn edge must be blocked")
	}
	// За границей поля.
	if g.CanPlaceAt(geom.Point{X: -10, Y: 300}) {
		t.Error("out of field must be blocked")
	}

	pos := geom.Point{X: 200, Y: 300}
	if !g.CanPlaceAt(pos) {
		t.Fatal("open spot must be valid")
	}
	if _, err := g.PlaceTower(defs.TowerArcher, pos); err != nil {
		t.Fatal(err)
	}
	// Коллизия с построенной башней.
	if g.CanPlaceAt(geom.Point{X: 210, Y: 310}) {
		t.Error("spot next to a tower must be blocked")
	}
}

func TestUnknownTowerRejected(t *testing.T) {
	g := newTestGame()
	if _, err := g.PlaceTower("Ballista", geom.Point{X: 200, Y: 300}); err == nil {
		t.Error("unknown kind must be rejected")
	}
}

func TestApplySetback(t *testing.T) {
	g := newTestGame()
	g.World.Castle.Health = 0

	// Волна 15: откат на 5, следующая стартует шестой.
	g.Waves.SetWave(15)
	g.ApplySetback()
	if g.Waves.CurrentWave != 5 {
		t.Errorf("wave = %d, want 5", g.Waves.CurrentWave)
	}
	if g.World.Castle.Health != g.World.Castle.MaxHealth {
		t.Error("castle health must be restored")
	}
	if !g.Waves.StartNextWave() || g.Waves.CurrentWave != 6 {
		t.Errorf("next wave = %d, want 6", g.Waves.CurrentWave)
	}

	// Ранний провал: откат к первой волне, а не к 4-10.
	g.Waves.SetWave(4)
	g.ApplySetback()
	if g.Waves.CurrentWave != 1 {
		t.Errorf("wave = %d, want 1", g.Waves.CurrentWave)
	}
	if !g.Waves.StartNextWave() || g.Waves.CurrentWave != 2 {
		t.Errorf("next wave = %d, want 2", g.Waves.CurrentWave)
	}
}

func TestCycleSpeed(t *testing.T) {
	g := newTestGame()
	want := []float64{2, 4, 1, 2}
	for _, w := range want {
		g.CycleSpeed()
		if g.TimeScale != w {
			t.Errorf("time scale = %v, want %v", g.TimeScale, w)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame()
	g.Ledger.Add(defs.ResourceStone, 500)
	g.Ledger.Add(defs.ResourceIron, 100)
	g.Ledger.Add(defs.ResourceCopper, 50)
	g.Ledger.Add(defs.ResourceCoins, 5000)
	g.Ledger.Add(defs.ItemUnstoppableForce, 1)

	// Обустраиваем партию: улучшенная башня с предметом, шахта, кузня.
	tw, err := g.PlaceTower(defs.TowerSplash, geom.Point{X: 200, Y: 300})
	if err != nil {
		t.Fatal(err)
	}
	if !tw.UpgradeDamage(g.Ledger) || !tw.UpgradeDamage(g.Ledger) || !tw.UpgradeUtility(g.Ledger) {
		t.Fatal("upgrades should succeed")
	}
	if err := tw.EquipItem(1, defs.ItemUnstoppableForce, g.Ledger); err != nil {
		t.Fatal(err)
	}
	if _, err := g.PlaceMine(geom.Point{X: 600, Y: 300}); err != nil {
		t.Fatal(err)
	}
	g.World.Castle.UpgradeRegen(g.Ledger)
	g.Waves.SetWave(12)
	g.Waves.ContinuousMode = true

	if err := g.SaveTo("slot0"); err != nil {
		t.Fatal(err)
	}

	// Загружаем в свежую игру с тем же бэкендом.
	g2 := NewGame(g.Lib, utils.NewPRNGService(2), g.Saves)
	if err := g2.LoadFrom("slot0"); err != nil {
		t.Fatal(err)
	}

	if g2.Waves.CurrentWave != 12 || !g2.Waves.ContinuousMode {
		t.Errorf("wave state = %d/%v, want 12/true",
			g2.Waves.CurrentWave, g2.Waves.ContinuousMode)
	}
	if got := g2.Ledger.Amount(defs.ResourceIron); got != g.Ledger.Amount(defs.ResourceIron) {
		t.Errorf("iron = %d, want %d", got, g.Ledger.Amount(defs.ResourceIron))
	}
	if len(g2.World.Towers) != 1 || len(g2.World.Mines) != 1 {
		t.Fatalf("world = %d towers, %d mines", len(g2.World.Towers), len(g2.World.Mines))
	}

	// Производные статы должны сойтись точно: загрузка повторяет
	// фабрику, улучшения и пересчёт предметов.
	var tw2 = g2.World.TowersSorted()[0]
	if tw2.Kind != defs.TowerSplash {
		t.Fatalf("kind = %s, want Splash", tw2.Kind)
	}
	if math.Abs(tw2.Damage-tw.Damage) > 1e-9 {
		t.Errorf("damage = %v, want %v", tw2.Damage, tw.Damage)
	}
	if math.Abs(tw2.AoERadius-tw.AoERadius) > 1e-9 {
		t.Errorf("aoe = %v, want %v", tw2.AoERadius, tw.AoERadius)
	}
	if tw2.DamageLevel != 3 || tw2.UtilityLevel != 2 {
		t.Errorf("levels = %d/%d, want 3/2", tw2.DamageLevel, tw2.UtilityLevel)
	}
	if tw2.Items[1] != defs.ItemUnstoppableForce {
		t.Errorf("item slot 1 = %q", tw2.Items[1])
	}

	if g2.World.Castle.RegenLevel != 2 {
		t.Errorf("castle regen level = %d, want 2", g2.World.Castle.RegenLevel)
	}
	if math.Abs(g2.World.Castle.HealthRegen-1.3) > 1e-9 {
		t.Errorf("castle regen = %v, want 1.3", g2.World.Castle.HealthRegen)
	}
}

func TestLoadCorruptEntitiesFallBack(t *testing.T) {
	g := newTestGame()
	snap := &save.Snapshot{
		Wave:      3,
		TimeScale: 1,
		Resources: map[string]int{defs.ResourceStone: 10},
		Castle: save.CastleRecord{
			Health: 500, MaxHealth: 1000,
			DamageReduction: 0.1, HealthRegen: 1,
			HealthLevel: 1, ReductionLevel: 1, RegenLevel: 1,
		},
		Towers: []save.TowerRecord{
			{Kind: "Ballista", X: 200, Y: 300, DamageLevel: 1, SpeedLevel: 1, RangeLevel: 1, UtilityLevel: 1},
		},
		Monsters: []save.MonsterRecord{
			{Kind: "Ghoul", X: 400, Y: 100, HealthFrac: 0.5, SpawnWave: 3},
		},
		WaveActive: true,
		ToSpawn:    2,
	}

	g.ApplySnapshot(snap)

	// Битая башня стала лучником, битый монстр — грантом.
	towers := g.World.TowersSorted()
	if len(towers) != 1 || towers[0].Kind != defs.TowerArcher {
		t.Fatalf("towers = %+v, want one Archer fallback", towers)
	}
	if len(g.Waves.Active) != 1 || g.Waves.Active[0].Kind != string(defs.MonsterGrunt) {
		t.Fatalf("monsters = %+v, want one Grunt fallback", g.Waves.Active)
	}
	// Доля здоровья применяется к восстановленному максимуму.
	m := g.Waves.Active[0]
	if math.Abs(m.Health-m.MaxHealth*0.5) > 1e-9 {
		t.Errorf("health = %v, want half of %v", m.Health, m.MaxHealth)
	}
	if !g.Waves.WaveActive || g.Waves.ToSpawn != 2 {
		t.Errorf("wave resume: active=%v toSpawn=%d", g.Waves.WaveActive, g.Waves.ToSpawn)
	}
}
