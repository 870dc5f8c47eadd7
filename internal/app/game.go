// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/save"
	"go-castle-defense/internal/system"
	"go-castle-defense/internal/utils"
	"go-castle-defense/internal/wave"
	"go-castle-defense/pkg/geom"
)

// speedSteps — цикл множителей игровой скорости.
var speedSteps = []float64{1, 2, 4}

// Game owns the simulation: the world, the wave manager, the systems and
// the economy. States drive it; it issues no draws itself.
type Game struct {
	Lib    *defs.Library
	World  *entity.World
	Ledger *econ.ResourceLedger
	Waves  *wave.Manager

	Combat    *system.CombatSystem
	Buildings *system.BuildingSystem

	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Saves      *save.Manager

	// Множитель игрового времени. Постройки и таймер game-over
	// работают на сыром времени и его не видят.
	TimeScale float64
}

// NewGame builds a fresh game around the given library and save backend.
func NewGame(lib *defs.Library, rng *utils.PRNGService, saves *save.Manager) *Game {
	dispatcher := event.NewDispatcher()
	world := entity.NewWorld()
	world.Castle = component.NewCastle(
		geom.Point{
			X: config.ScreenWidth / 2,
			Y: config.ScreenHeight - config.CastleOffsetY,
		},
		config.CastleWidth, config.CastleHeight,
		lib.Balance,
	)

	g := &Game{
		Lib:        lib,
		World:      world,
		Ledger:     econ.NewResourceLedger(lib.Balance.InitialResources),
		Waves:      wave.NewManager(lib, rng, dispatcher),
		Buildings:  system.NewBuildingSystem(dispatcher),
		Dispatcher: dispatcher,
		Rng:        rng,
		Saves:      saves,
		TimeScale:  1,
	}
	g.Combat = system.NewCombatSystem(
		func(m *component.Monster) { g.Waves.HandleMonsterDeath(m, g.Ledger) },
		func(amount float64) { g.World.Castle.Heal(amount) },
	)

	dispatcher.Subscribe(event.WaveCompleted, gameListener{g})
	return g
}

// gameListener handles the autosave hook.
type gameListener struct{ g *Game }

func (l gameListener) OnEvent(e event.Event) {
	if e.Type != event.WaveCompleted {
		return
	}
	waveNum, ok := e.Data.(int)
	if !ok || waveNum == 0 || waveNum%config.AutosaveWaves != 0 {
		return
	}
	if err := l.g.SaveTo("autosave"); err != nil {
		log.Printf("autosave after wave %d failed: %v", waveNum, err)
		return
	}
	log.Printf("autosaved after wave %d", waveNum)
}

// UpdateSim advances the combat clock: waves, monsters, towers, castle
// regeneration. dt arrives already scaled by TimeScale.
func (g *Game) UpdateSim(dt float64) {
	g.Waves.Update(dt, g.World.Castle, g.Ledger)
	g.Combat.Update(dt, g.World.TowersSorted(), g.Waves.Active)
	g.World.Castle.Update(dt)
	g.World.GameTime += dt

	if g.Waves.ContinuousMode && g.Waves.WaveCompleted && !g.Waves.WaveActive {
		g.Waves.StartNextWave()
	}
}

// UpdateReal advances the real-time systems: mines and coresmiths keep
// working through pauses and speed changes.
func (g *Game) UpdateReal(rawDT float64) {
	g.Buildings.Update(rawDT, g.World, g.Ledger)
}

// CycleSpeed switches to the next time-scale step.
func (g *Game) CycleSpeed() {
	for i, s := range speedSteps {
		if s == g.TimeScale {
			g.TimeScale = speedSteps[(i+1)%len(speedSteps)]
			return
		}
	}
	g.TimeScale = speedSteps[0]
}

// --- Placement ---

// CanPlaceAt reports whether a building-sized footprint at pos is clear:
// inside the field, off the castle and not on another structure.
func (g *Game) CanPlaceAt(pos geom.Point) bool {
	half := config.TowerSize / 2
	if pos.X < half || pos.X > config.ScreenWidth-half {
		return false
	}
	// Верхняя полоса оставлена под выход монстров.
	if pos.Y < config.SpawnEdgeY+config.TowerSize || pos.Y > config.ScreenHeight-half {
		return false
	}

	minX, minY, maxX, maxY := g.World.Castle.Bounds()
	if pos.X > minX-half && pos.X < maxX+half &&
		pos.Y > minY-half && pos.Y < maxY+half {
		return false
	}

	for _, t := range g.World.Towers {
		if geom.Distance(pos, t.Position) < config.TowerSize {
			return false
		}
	}
	for _, m := range g.World.Mines {
		if geom.Distance(pos, m.Position) < config.TowerSize {
			return false
		}
	}
	for _, c := range g.World.Coresmiths {
		if geom.Distance(pos, c.Position) < config.TowerSize {
			return false
		}
	}
	return true
}

// TowerCost returns the full purchase price of a tower kind.
func (g *Game) TowerCost(kind defs.TowerKind) (defs.Cost, error) {
	def, err := g.Lib.Tower(kind)
	if err != nil {
		return nil, err
	}
	cost := def.Cost.Clone()
	cost[defs.ResourceCoins] += def.MonsterCoinCost
	return cost, nil
}

// PlaceTower validates position and price, then builds the tower. The
// spend is atomic: a rejected placement changes nothing.
func (g *Game) PlaceTower(kind defs.TowerKind, pos geom.Point) (*component.Tower, error) {
	cost, err := g.TowerCost(kind)
	if err != nil {
		return nil, fmt.Errorf("place tower: %w", err)
	}
	if !g.CanPlaceAt(pos) {
		return nil, fmt.Errorf("place tower %s: position (%.0f, %.0f) blocked", kind, pos.X, pos.Y)
	}
	if !g.Ledger.SpendAll(cost) {
		return nil, fmt.Errorf("place tower %s: not enough resources", kind)
	}
	t, err := component.NewTower(kind, pos, g.Lib)
	if err != nil {
		// Не должно случаться: вид уже проверен через TowerCost.
		return nil, err
	}
	g.World.AddTower(t)
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: t})
	return t, nil
}

// PlaceMine builds a mine at pos if the spot is free and the cost is covered.
func (g *Game) PlaceMine(pos geom.Point) (*component.Mine, error) {
	if !g.CanPlaceAt(pos) {
		return nil, fmt.Errorf("place mine: position (%.0f, %.0f) blocked", pos.X, pos.Y)
	}
	if !g.Ledger.SpendAll(g.Lib.Balance.MineBuildCost) {
		return nil, fmt.Errorf("place mine: not enough resources")
	}
	m := component.NewMine(pos, g.Lib.Balance)
	g.World.AddMine(m)
	return m, nil
}

// PlaceCoresmith builds a coresmith at pos if the spot is free and the cost is covered.
func (g *Game) PlaceCoresmith(pos geom.Point) (*component.Coresmith, error) {
	if !g.CanPlaceAt(pos) {
		return nil, fmt.Errorf("place coresmith: position (%.0f, %.0f) blocked", pos.X, pos.Y)
	}
	if !g.Ledger.SpendAll(g.Lib.Balance.CoresmithBuildCost) {
		return nil, fmt.Errorf("place coresmith: not enough resources")
	}
	c := component.NewCoresmith(pos, g.Lib)
	g.World.AddCoresmith(c)
	return c, nil
}

// --- Game over recovery ---

// ApplySetback rewinds progress after the castle falls: health back to
// full, the wave counter loses ten waves (floor at wave one), the field
// is cleared. Towers, buildings and the ledger survive.
func (g *Game) ApplySetback() {
	cur := g.Waves.CurrentWave
	if cur >= config.WaveSetbackThreshold {
		g.Waves.SetWave(cur - config.WaveSetback)
	} else {
		g.Waves.SetWave(1)
	}
	g.World.Castle.ResetHealth()
	log.Printf("setback applied: wave %d -> %d", cur, g.Waves.CurrentWave)
}

// --- Persistence ---

// Snapshot assembles the factory-reconstruction data of the whole game.
func (g *Game) Snapshot() *save.Snapshot {
	castle := g.World.Castle
	snap := &save.Snapshot{
		Wave:       g.Waves.CurrentWave,
		WaveActive: g.Waves.WaveActive,
		ToSpawn:    g.Waves.ToSpawn,
		BossWave:   g.Waves.BossWave,
		Continuous: g.Waves.ContinuousMode,
		TimeScale:  g.TimeScale,
		Resources:  g.Ledger.Contents(),
		Castle: save.CastleRecord{
			Health:          castle.Health,
			MaxHealth:       castle.MaxHealth,
			DamageReduction: castle.DamageReduction,
			HealthRegen:     castle.HealthRegen,
			HealthLevel:     castle.HealthLevel,
			ReductionLevel:  castle.ReductionLevel,
			RegenLevel:      castle.RegenLevel,
		},
	}

	for _, t := range g.World.TowersSorted() {
		items := make([]string, 0, component.ItemSlots)
		for _, id := range t.Items {
			items = append(items, id)
		}
		snap.Towers = append(snap.Towers, save.TowerRecord{
			Kind: string(t.Kind), X: t.Position.X, Y: t.Position.Y,
			DamageLevel: t.DamageLevel, SpeedLevel: t.SpeedLevel,
			RangeLevel: t.RangeLevel, UtilityLevel: t.UtilityLevel,
			Items: items,
		})
	}
	for _, m := range g.Waves.Active {
		if m.IsDead || m.ReachedCastle {
			continue
		}
		snap.Monsters = append(snap.Monsters, save.MonsterRecord{
			Kind: m.Kind, X: m.Position.X, Y: m.Position.Y,
			HealthFrac: m.HealthFraction(), IsBoss: m.IsBoss,
			SpawnWave: m.SpawnWave,
		})
	}
	for _, m := range g.World.MinesSorted() {
		snap.Mines = append(snap.Mines, save.MineRecord{
			X: m.Position.X, Y: m.Position.Y, Level: m.Level,
			ProductionTimer: m.ProductionTimer,
			Upgrading:       m.Upgrading, UpgradeTimer: m.UpgradeTimer,
		})
	}
	for _, c := range g.World.CoresmithsSorted() {
		snap.Coresmiths = append(snap.Coresmiths, save.CoresmithRecord{
			X: c.Position.X, Y: c.Position.Y,
			CraftingItem: c.CraftingItem, CraftTimer: c.CraftTimer,
		})
	}
	return snap
}

// SaveTo writes the current game into the slot.
func (g *Game) SaveTo(slot string) error {
	return g.Saves.Save(slot, g.Snapshot())
}

// LoadFrom restores the game from the slot by re-driving the factories.
// Corrupt entities degrade to default kinds instead of failing the load.
func (g *Game) LoadFrom(slot string) error {
	snap, err := g.Saves.Load(slot)
	if err != nil {
		return err
	}
	g.ApplySnapshot(snap)
	return nil
}

// ApplySnapshot rebuilds the world from the snapshot.
func (g *Game) ApplySnapshot(snap *save.Snapshot) {
	// Экономика.
	g.Ledger = econ.NewResourceLedger(defs.Cost(snap.Resources))

	// Замок: уровни и статы берём из записи как есть.
	castle := g.World.Castle
	castle.Health = snap.Castle.Health
	castle.MaxHealth = snap.Castle.MaxHealth
	castle.DamageReduction = snap.Castle.DamageReduction
	castle.HealthRegen = snap.Castle.HealthRegen
	castle.HealthLevel = snap.Castle.HealthLevel
	castle.ReductionLevel = snap.Castle.ReductionLevel
	castle.RegenLevel = snap.Castle.RegenLevel
	if castle.MaxHealth <= 0 {
		// Битая запись: откатываемся к базовым значениям.
		fresh := component.NewCastle(castle.Position, castle.Width, castle.Height, g.Lib.Balance)
		*castle = *fresh
	}

	// Мир.
	g.World.Towers = make(map[int]*component.Tower)
	g.World.Mines = make(map[int]*component.Mine)
	g.World.Coresmiths = make(map[int]*component.Coresmith)

	for _, rec := range snap.Towers {
		g.restoreTower(rec)
	}
	for _, rec := range snap.Mines {
		m := component.NewMine(geom.Point{X: rec.X, Y: rec.Y}, g.Lib.Balance)
		if rec.Level >= 1 && rec.Level <= component.MaxMineLevel {
			m.Level = rec.Level
		}
		m.ProductionTimer = rec.ProductionTimer
		m.Upgrading = rec.Upgrading
		m.UpgradeTimer = rec.UpgradeTimer
		g.World.AddMine(m)
	}
	for _, rec := range snap.Coresmiths {
		c := component.NewCoresmith(geom.Point{X: rec.X, Y: rec.Y}, g.Lib)
		if rec.CraftingItem != "" {
			if _, err := g.Lib.Item(rec.CraftingItem); err == nil {
				c.CraftingItem = rec.CraftingItem
				c.CraftTimer = rec.CraftTimer
			}
		}
		g.World.AddCoresmith(c)
	}

	// Волны и монстры.
	g.Waves.SetWave(snap.Wave)
	g.Waves.ContinuousMode = snap.Continuous
	for _, rec := range snap.Monsters {
		g.restoreMonster(rec, snap.Wave)
	}
	if snap.WaveActive {
		g.Waves.WaveActive = true
		g.Waves.WaveCompleted = false
		g.Waves.ToSpawn = snap.ToSpawn
		g.Waves.BossWave = snap.BossWave
	}

	g.TimeScale = snap.TimeScale
	if g.TimeScale <= 0 {
		g.TimeScale = 1
	}
	log.Printf("snapshot applied: wave %d, %d towers, %d monsters",
		snap.Wave, len(snap.Towers), len(snap.Monsters))
}

// restoreTower re-drives the tower factory and replays upgrades and
// items. Unknown kinds fall back to Archer rather than aborting.
func (g *Game) restoreTower(rec save.TowerRecord) {
	kind := defs.TowerKind(rec.Kind)
	t, err := component.NewTower(kind, geom.Point{X: rec.X, Y: rec.Y}, g.Lib)
	if err != nil {
		log.Printf("restore tower: %v, falling back to %s", err, defs.TowerArcher)
		t, err = component.NewTower(defs.TowerArcher, geom.Point{X: rec.X, Y: rec.Y}, g.Lib)
		if err != nil {
			return
		}
	}

	// Повторяем улучшения: уровень N означает N-1 применений множителя.
	bal := g.Lib.Balance
	for i := 1; i < rec.DamageLevel; i++ {
		t.BaseDamage *= bal.DamageUpgradeGrowth
		t.DamageLevel++
	}
	for i := 1; i < rec.SpeedLevel; i++ {
		t.BaseAttackSpeed *= bal.AttackSpeedGrowth
		t.SpeedLevel++
	}
	for i := 1; i < rec.RangeLevel; i++ {
		t.BaseRange *= bal.RangeUpgradeGrowth
		t.RangeLevel++
	}
	for i := 1; i < rec.UtilityLevel; i++ {
		switch t.Kind {
		case defs.TowerSplash:
			t.BaseAoERadius *= bal.AoEUpgradeGrowth
		case defs.TowerFrozen:
			t.BaseSlowDuration *= bal.SlowDurationGrowth
		}
		t.UtilityLevel++
	}

	for slot, id := range rec.Items {
		if slot >= component.ItemSlots || id == "" {
			continue
		}
		if _, err := g.Lib.Item(id); err != nil {
			log.Printf("restore tower: dropping unknown item %q", id)
			continue
		}
		t.Items[slot] = id
	}
	t.RecomputeStats()
	g.World.AddTower(t)
}

// restoreMonster re-drives the monster factories. Unknown kinds fall
// back to a Grunt of the same wave.
func (g *Game) restoreMonster(rec save.MonsterRecord, waveNum int) {
	pos := geom.Point{X: rec.X, Y: rec.Y}
	spawnWave := rec.SpawnWave
	if spawnWave <= 0 {
		spawnWave = waveNum
	}

	var (
		m   *component.Monster
		err error
	)
	if rec.IsBoss {
		m, err = wave.NewBoss(g.Lib, defs.BossKind(rec.Kind), pos, spawnWave)
	} else {
		m, err = wave.NewMonster(g.Lib, defs.MonsterKind(rec.Kind), pos, spawnWave)
	}
	if err != nil {
		log.Printf("restore monster: %v, falling back to %s", err, defs.MonsterGrunt)
		m, err = wave.NewMonster(g.Lib, defs.MonsterGrunt, pos, spawnWave)
		if err != nil {
			return
		}
	}

	frac := geom.Clamp(rec.HealthFrac, 0.01, 1)
	m.Health = m.MaxHealth * frac
	g.Waves.RestoreMonster(m)
}
