package wave

import (
	"errors"
	"math"
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/utils"
	"go-castle-defense/pkg/geom"
)

func testManager(seed int64) (*Manager, *component.Castle, *econ.ResourceLedger) {
	lib := defs.DefaultLibrary()
	m := NewManager(lib, utils.NewPRNGService(seed), event.NewDispatcher())
	castle := component.NewCastle(geom.Point{X: 400, Y: 530}, 200, 80, lib.Balance)
	ledger := econ.NewResourceLedger(nil)
	return m, castle, ledger
}

func TestQuotaFormula(t *testing.T) {
	m, _, _ := testManager(1)

	tests := []struct {
		wave int
		want int
	}{
		{1, 5},   // 5 + 1×0.5×1.5⁰ = 5.5
		{2, 6},   // 5 + 2×0.5 = 6
		{9, 9},   // 5 + 4.5 = 9.5
		{11, 13}, // 5 + 11×0.5×1.5 = 13.25
		{20, 27}, // 5 + 20×0.5×2.25 = 27.5
	}
	for _, tt := range tests {
		if got := m.Quota(tt.wave); got != tt.want {
			t.Errorf("Quota(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestBossWaveCadence(t *testing.T) {
	m, _, _ := testManager(1)

	for wave := 1; wave <= 45; wave++ {
		want := wave%10 == 0
		if got := m.IsBossWave(wave); got != want {
			t.Errorf("IsBossWave(%d) = %v, want %v", wave, got, want)
		}
	}

	cycle := []struct {
		wave int
		want defs.BossKind
	}{
		{10, defs.BossForce},
		{20, defs.BossSpirit},
		{30, defs.BossMagic},
		{40, defs.BossVoid},
		{50, defs.BossForce}, // цикл замыкается
	}
	for _, tt := range cycle {
		if got := m.SelectBossKind(tt.wave); got != tt.want {
			t.Errorf("SelectBossKind(%d) = %s, want %s", tt.wave, got, tt.want)
		}
	}
}

func TestStartNextWaveRejectsWhileActive(t *testing.T) {
	m, _, _ := testManager(1)

	if !m.StartNextWave() {
		t.Fatal("first wave should start")
	}
	if m.StartNextWave() {
		t.Error("starting a wave while one is active must fail")
	}
	if m.CurrentWave != 1 {
		t.Errorf("wave = %d, want 1 (rejected start must not advance)", m.CurrentWave)
	}
}

func TestSelectMonsterKindUnlocks(t *testing.T) {
	m, _, _ := testManager(99)

	// До 3-й волны доступен только Grunt.
	for i := 0; i < 200; i++ {
		if got := m.SelectMonsterKind(1); got != defs.MonsterGrunt {
			t.Fatalf("wave 1 rolled %s, want Grunt only", got)
		}
	}

	// На 8-й волне встречаются все виды.
	seen := map[defs.MonsterKind]bool{}
	for i := 0; i < 2000; i++ {
		seen[m.SelectMonsterKind(8)] = true
	}
	for _, kind := range []defs.MonsterKind{defs.MonsterGrunt, defs.MonsterRunner, defs.MonsterTank, defs.MonsterFlyer} {
		if !seen[kind] {
			t.Errorf("kind %s never rolled on wave 8", kind)
		}
	}
}

func TestFactoryWaveScaling(t *testing.T) {
	lib := defs.DefaultLibrary()

	m1, err := NewMonster(lib, defs.MonsterGrunt, geom.Point{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m1.Health != 50 || m1.ContactDamage != 10 {
		t.Errorf("wave-1 grunt = %v/%v, want 50/10", m1.Health, m1.ContactDamage)
	}

	m3, _ := NewMonster(lib, defs.MonsterGrunt, geom.Point{}, 3)
	if math.Abs(m3.Health-50*1.44) > 1e-9 {
		t.Errorf("wave-3 grunt health = %v, want %v", m3.Health, 50*1.44)
	}
	if m3.BaseSpeed != 50 {
		t.Errorf("speed must not scale, got %v", m3.BaseSpeed)
	}

	if _, err := NewMonster(lib, "Ghoul", geom.Point{}, 1); !errors.Is(err, defs.ErrUnknownMonster) {
		t.Errorf("err = %v, want ErrUnknownMonster", err)
	}

	// Боссы не масштабируются.
	b, err := NewBoss(lib, defs.BossVoid, geom.Point{}, 40)
	if err != nil {
		t.Fatal(err)
	}
	if b.Health != 600 || !b.IsBoss || b.Ability != defs.AbilitySpawn {
		t.Errorf("void boss = %+v", b)
	}
}

func TestWaveSpawnsAndCompletes(t *testing.T) {
	m, castle, ledger := testManager(5)
	m.StartNextWave()
	quota := m.ToSpawn

	spawned := 0
	for i := 0; i < 10000 && m.WaveActive; i++ {
		m.Update(0.1, castle, ledger)
		if len(m.Active) > 0 {
			spawned += killAll(m, ledger)
		}
	}
	if spawned != quota {
		t.Errorf("spawned %d, want quota %d", spawned, quota)
	}
	if !m.WaveCompleted || m.WaveActive {
		t.Error("wave must complete once quota is dead")
	}
}

// killAll помечает всех активных монстров убитыми через боевой путь.
func killAll(m *Manager, ledger econ.Ledger) int {
	n := 0
	for _, mon := range m.Active {
		if !mon.IsDead {
			mon.TakeDamage(1e9)
			m.HandleMonsterDeath(mon, ledger)
			n++
		}
	}
	return n
}

func TestHandleMonsterDeathIdempotent(t *testing.T) {
	m, _, ledger := testManager(1)
	mon := &component.Monster{Kind: "Grunt", Health: 0, MaxHealth: 50, IsDead: true, SpawnWave: 1}

	m.HandleMonsterDeath(mon, ledger)
	m.HandleMonsterDeath(mon, ledger) // повторный вызов из очистки
	if got := ledger.Amount(defs.ResourceCoins); got != 1 {
		t.Errorf("coins = %d, want 1 (reward paid once)", got)
	}

	// Живой монстр награды не даёт.
	alive := &component.Monster{Kind: "Grunt", Health: 10, MaxHealth: 50}
	m.HandleMonsterDeath(alive, ledger)
	if got := ledger.Amount(defs.ResourceCoins); got != 1 {
		t.Errorf("coins = %d, alive monster must not pay", got)
	}
}

func TestBossLoot(t *testing.T) {
	m, _, ledger := testManager(1)
	boss := &component.Monster{
		Kind: string(defs.BossSpirit), IsBoss: true,
		IsDead: true, SpawnWave: 20,
	}

	m.HandleMonsterDeath(boss, ledger)
	if got := ledger.Amount(defs.ResourceSpiritCore); got != 1 {
		t.Errorf("spirit cores = %d, want 1", got)
	}
	// Базовая монета за убийство + 10 × (1 + 0.05×20) премии = 21.
	if got := ledger.Amount(defs.ResourceCoins); got != 21 {
		t.Errorf("coins = %d, want 21", got)
	}
}

func TestSetWaveClearsField(t *testing.T) {
	m, castle, ledger := testManager(3)
	m.StartNextWave()
	for i := 0; i < 50; i++ {
		m.Update(0.1, castle, ledger)
	}
	if len(m.Active) == 0 {
		t.Fatal("expected active monsters before SetWave")
	}

	m.SetWave(5)
	if m.CurrentWave != 5 || len(m.Active) != 0 || m.WaveActive {
		t.Errorf("after SetWave: wave=%d active=%d waveActive=%v",
			m.CurrentWave, len(m.Active), m.WaveActive)
	}
	// Следующая волна после отката: шестая.
	if !m.StartNextWave() || m.CurrentWave != 6 {
		t.Errorf("next wave = %d, want 6", m.CurrentWave)
	}
}

func TestSpiritBossHealCapped(t *testing.T) {
	m, castle, _ := testManager(1)
	boss := &component.Monster{
		Kind: string(defs.BossSpirit), IsBoss: true,
		Health: 399.9, MaxHealth: 400,
		Ability: defs.AbilityHeal,
	}

	for i := 0; i < 100; i++ {
		m.runAbility(boss, 1.0, castle)
	}
	if boss.Health != 400 {
		t.Errorf("health = %v, want cap at 400", boss.Health)
	}
}

func TestVoidBossSpawnsMinions(t *testing.T) {
	m, castle, ledger := testManager(7)
	m.SetWave(39)
	m.StartNextWave() // волна 40: босс Void
	if !m.BossWave {
		t.Fatal("wave 40 must be a boss wave")
	}

	// Ждём выхода босса и первого призыва (15 секунд способности).
	for i := 0; i < 200 && len(m.Active) < 3; i++ {
		m.Update(0.1, castle, ledger)
	}

	minions := 0
	for _, mon := range m.Active {
		if !mon.IsBoss {
			minions++
			if mon.Kind != string(defs.MonsterGrunt) {
				t.Errorf("minion kind = %s, want Grunt", mon.Kind)
			}
			if mon.SpawnWave != 40 {
				t.Errorf("minion spawn wave = %d, want 40", mon.SpawnWave)
			}
		}
	}
	if minions < 2 {
		t.Errorf("minions = %d, want at least 2 in active set", minions)
	}
}
