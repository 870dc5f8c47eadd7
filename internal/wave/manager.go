// internal/wave/manager.go
package wave

import (
	"log"
	"math"
	"sort"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/utils"
	"go-castle-defense/pkg/geom"
)

// Manager drives the wave lifecycle: scheduling, spawning, advancing the
// active set and paying out kill rewards.
type Manager struct {
	lib        *defs.Library
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	CurrentWave int
	Active      []*component.Monster

	SpawnTimer float64
	ToSpawn    int
	BossWave   bool
	monsterSeq int

	// Монстры, добавленные во время обхода активного набора
	// (миньоны босса). Вливаются в набор после обхода.
	pending []*component.Monster

	WaveActive    bool
	WaveCompleted bool

	// Следующая волна стартует сама, без нажатия игрока.
	ContinuousMode bool
}

func NewManager(lib *defs.Library, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Manager {
	return &Manager{
		lib:           lib,
		rng:           rng,
		dispatcher:    dispatcher,
		WaveCompleted: true, // до первой волны считаем предыдущую завершённой
	}
}

// Quota returns the number of monsters in a regular wave.
func (m *Manager) Quota(waveNum int) int {
	bal := m.lib.Balance
	growth := math.Pow(bal.WaveCountGrowth, float64(waveNum/bal.BossWaveEvery))
	return int(bal.WaveCountBase + float64(waveNum)*bal.WaveCountFactor*growth)
}

// IsBossWave reports whether waveNum spawns a boss instead of a swarm.
func (m *Manager) IsBossWave(waveNum int) bool {
	return waveNum%m.lib.Balance.BossWaveEvery == 0
}

// StartNextWave advances the counter and arms spawning. Returns false if
// a wave is already running.
func (m *Manager) StartNextWave() bool {
	if m.WaveActive {
		return false
	}
	m.CurrentWave++
	m.WaveActive = true
	m.WaveCompleted = false
	m.BossWave = m.IsBossWave(m.CurrentWave)
	if m.BossWave {
		m.ToSpawn = 1
	} else {
		m.ToSpawn = m.Quota(m.CurrentWave)
	}
	// Первый монстр выходит сразу.
	m.SpawnTimer = m.lib.Balance.SpawnInterval

	log.Printf("wave %d started: %d to spawn (boss=%v)", m.CurrentWave, m.ToSpawn, m.BossWave)
	m.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: m.CurrentWave})
	return true
}

// Update spawns pending monsters, advances the active set and completes
// the wave once the quota is exhausted and the field is clear.
func (m *Manager) Update(dt float64, castle *component.Castle, ledger econ.Ledger) {
	if !m.WaveActive {
		return
	}

	if m.ToSpawn > 0 {
		m.SpawnTimer += dt
		for m.SpawnTimer >= m.lib.Balance.SpawnInterval && m.ToSpawn > 0 {
			m.SpawnTimer -= m.lib.Balance.SpawnInterval
			m.spawnOne()
		}
	}

	survivors := m.Active[:0]
	for _, mon := range m.Active {
		if !mon.IsDead {
			m.runAbility(mon, dt, castle)
		}
		if mon.Update(dt, castle) {
			survivors = append(survivors, mon)
			continue
		}
		if mon.IsDead {
			// Страховка: смерть, не оплаченная боевой системой.
			m.HandleMonsterDeath(mon, ledger)
		}
		if mon.ReachedCastle {
			m.dispatcher.Dispatch(event.Event{Type: event.MonsterReachedCastle, Data: mon})
		}
	}
	for i := len(survivors); i < len(m.Active); i++ {
		m.Active[i] = nil
	}
	m.Active = survivors

	if len(m.pending) > 0 {
		m.Active = append(m.Active, m.pending...)
		m.pending = nil
	}

	if m.ToSpawn == 0 && len(m.Active) == 0 {
		m.WaveActive = false
		m.WaveCompleted = true
		log.Printf("wave %d completed", m.CurrentWave)
		m.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: m.CurrentWave})
	}
}

func (m *Manager) spawnOne() {
	pos := m.spawnPoint()
	var (
		mon *component.Monster
		err error
	)
	if m.BossWave {
		mon, err = NewBoss(m.lib, m.SelectBossKind(m.CurrentWave), pos, m.CurrentWave)
	} else {
		mon, err = NewMonster(m.lib, m.SelectMonsterKind(m.CurrentWave), pos, m.CurrentWave)
	}
	if err != nil {
		log.Printf("spawn failed on wave %d: %v", m.CurrentWave, err)
		m.ToSpawn--
		return
	}
	m.ToSpawn--
	m.monsterSeq++
	mon.ID = m.monsterSeq
	m.Active = append(m.Active, mon)
}

// addMonster queues a monster spawned mid-update (boss minions).
func (m *Manager) addMonster(mon *component.Monster) {
	m.monsterSeq++
	mon.ID = m.monsterSeq
	m.pending = append(m.pending, mon)
}

func (m *Manager) spawnPoint() geom.Point {
	return geom.Point{
		X: m.rng.Range(config.SpawnEdgeInset, config.ScreenWidth-config.SpawnEdgeInset),
		Y: config.SpawnEdgeY,
	}
}

// SelectMonsterKind rolls a weighted pick among the kinds unlocked by
// waveNum. A degenerate table falls back to Grunt.
func (m *Manager) SelectMonsterKind(waveNum int) defs.MonsterKind {
	kinds := make([]defs.MonsterKind, 0, len(m.lib.Monsters))
	for kind := range m.lib.Monsters {
		kinds = append(kinds, kind)
	}
	// Стабильный порядок, чтобы сид давал воспроизводимые волны.
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	entries := make([]utils.WeightedEntry, 0, len(kinds))
	for _, kind := range kinds {
		def := m.lib.Monsters[kind]
		if waveNum < def.UnlockWave {
			continue
		}
		entries = append(entries, utils.WeightedEntry{
			Value:  string(kind),
			Weight: def.Weight.At(waveNum),
		})
	}

	picked := m.rng.ChooseWeighted(entries)
	if picked == "" {
		return defs.MonsterGrunt
	}
	return defs.MonsterKind(picked)
}

// SelectBossKind returns the boss for waveNum, cycling through the
// library's fixed order.
func (m *Manager) SelectBossKind(waveNum int) defs.BossKind {
	cycle := m.lib.BossCycle
	idx := waveNum/m.lib.Balance.BossWaveEvery - 1
	if idx < 0 {
		idx = 0
	}
	return cycle[idx%len(cycle)]
}

// HandleMonsterDeath credits the kill reward exactly once, no matter how
// many callers report the same death.
func (m *Manager) HandleMonsterDeath(mon *component.Monster, ledger econ.Ledger) {
	if !mon.IsDead || mon.RewardGiven {
		return
	}
	mon.RewardGiven = true

	// Базовая монета платится за любое убийство; босс добавляет сверху
	// масштабированную премию и своё ядро.
	bal := m.lib.Balance
	ledger.Add(defs.ResourceCoins, bal.KillCoins)
	if mon.IsBoss {
		scale := 1 + bal.LootWaveScaling*float64(mon.SpawnWave)
		ledger.Add(defs.ResourceCoins, int(float64(bal.BossKillCoins)*scale))
		if def, err := m.lib.Boss(defs.BossKind(mon.Kind)); err == nil {
			ledger.Add(def.CoreDrop, 1)
		}
	}
	m.dispatcher.Dispatch(event.Event{Type: event.MonsterKilled, Data: mon})
}

// SetWave rewinds or fast-forwards the counter, clearing the field. Used
// by the game-over setback, loading and the tuning console.
func (m *Manager) SetWave(n int) {
	if n < 0 {
		n = 0
	}
	m.CurrentWave = n
	m.Active = nil
	m.pending = nil
	m.ToSpawn = 0
	m.SpawnTimer = 0
	m.BossWave = false
	m.WaveActive = false
	m.WaveCompleted = true
}

// RestoreMonster puts a reconstructed monster straight into the active
// set. Used when loading a mid-wave snapshot; the caller restores the
// wave counters around it.
func (m *Manager) RestoreMonster(mon *component.Monster) {
	m.monsterSeq++
	mon.ID = m.monsterSeq
	m.Active = append(m.Active, mon)
	m.WaveActive = true
	m.WaveCompleted = false
}

func stepToward(a, b geom.Point, step float64) geom.Point {
	p, _ := geom.MoveToward(a, b, step)
	return p
}
