// internal/defs/balance.go
package defs

// Balance is the single mutable tuning object. One instance lives inside
// the Library and is injected by pointer everywhere a formula needs it, so
// the tuning console can adjust values at runtime without restarts.
type Balance struct {
	// Waves.
	SpawnInterval   float64 `yaml:"spawn_interval"`
	WaveCountBase   float64 `yaml:"wave_count_base"`
	WaveCountFactor float64 `yaml:"wave_count_factor"`
	WaveCountGrowth float64 `yaml:"wave_count_growth"`
	BossWaveEvery   int     `yaml:"boss_wave_every"`

	// Масштабирование здоровья и урона монстров по волнам.
	DifficultyGrowth float64 `yaml:"difficulty_growth"`

	// Tower upgrade growth per level.
	UpgradeCostGrowth      float64 `yaml:"upgrade_cost_growth"`
	UpgradeMCGrowth        float64 `yaml:"upgrade_mc_growth"`
	DamageUpgradeGrowth    float64 `yaml:"damage_upgrade_growth"`
	AttackSpeedGrowth      float64 `yaml:"attack_speed_growth"`
	RangeUpgradeGrowth     float64 `yaml:"range_upgrade_growth"`
	AoEUpgradeGrowth       float64 `yaml:"aoe_upgrade_growth"`
	SlowDurationGrowth     float64 `yaml:"slow_duration_growth"`

	// Castle.
	CastleHealth       float64 `yaml:"castle_health"`
	CastleReduction    float64 `yaml:"castle_reduction"`
	CastleRegen        float64 `yaml:"castle_regen"`
	CastleHealthGrowth float64 `yaml:"castle_health_growth"`
	CastleReduceGrowth float64 `yaml:"castle_reduce_growth"`
	CastleRegenGrowth  float64 `yaml:"castle_regen_growth"`
	CastleCostGrowth   float64 `yaml:"castle_cost_growth"`
	MaxReduction       float64 `yaml:"max_reduction"`

	CastleHealthCost Cost `yaml:"castle_health_cost"`
	CastleReduceCost Cost `yaml:"castle_reduce_cost"`
	CastleRegenCost  Cost `yaml:"castle_regen_cost"`

	// Loot.
	KillCoins       int     `yaml:"kill_coins"`
	BossKillCoins   int     `yaml:"boss_kill_coins"`
	LootWaveScaling float64 `yaml:"loot_wave_scaling"`

	// Buildings (real-time).
	MineBuildCost      Cost    `yaml:"mine_build_cost"`
	CoresmithBuildCost Cost    `yaml:"coresmith_build_cost"`
	MineInterval       float64 `yaml:"mine_interval"`
	MineProduction     int     `yaml:"mine_production"`
	MineRateGrowth     float64 `yaml:"mine_rate_growth"`
	MineUpgradeTime    float64 `yaml:"mine_upgrade_time"`
	MineUpgradeGrowth  float64 `yaml:"mine_upgrade_growth"`
	MineUpgradeCost    Cost    `yaml:"mine_upgrade_cost"`
	CoresmithCraftTime float64 `yaml:"coresmith_craft_time"`

	InitialResources Cost `yaml:"initial_resources"`
}

func defaultBalance() *Balance {
	return &Balance{
		SpawnInterval:   1.5,
		WaveCountBase:   5,
		WaveCountFactor: 0.5,
		WaveCountGrowth: 1.5,
		BossWaveEvery:   10,

		DifficultyGrowth: 1.2,

		UpgradeCostGrowth:   1.5,
		UpgradeMCGrowth:     1.3,
		DamageUpgradeGrowth: 1.3,
		AttackSpeedGrowth:   1.2,
		RangeUpgradeGrowth:  1.2,
		AoEUpgradeGrowth:    1.2,
		SlowDurationGrowth:  1.2,

		CastleHealth:       1000,
		CastleReduction:    0.1,
		CastleRegen:        1,
		CastleHealthGrowth: 1.5,
		CastleReduceGrowth: 1.2,
		CastleRegenGrowth:  1.3,
		CastleCostGrowth:   1.5,
		MaxReduction:       0.95,

		CastleHealthCost: Cost{ResourceStone: 50, ResourceCoins: 20},
		CastleReduceCost: Cost{ResourceIron: 20, ResourceCoins: 30},
		CastleRegenCost:  Cost{ResourceCopper: 10, ResourceCoins: 25},

		KillCoins:       1,
		BossKillCoins:   10,
		LootWaveScaling: 0.05,

		MineBuildCost:      Cost{ResourceStone: 40, ResourceCoins: 20},
		CoresmithBuildCost: Cost{ResourceStone: 30, ResourceIron: 10, ResourceCoins: 40},
		MineInterval:       20,
		MineProduction:     1,
		MineRateGrowth:     1.2,
		MineUpgradeTime:    10,
		MineUpgradeGrowth:  2.2,
		MineUpgradeCost:    Cost{ResourceCoins: 150},
		CoresmithCraftTime: 30,

		InitialResources: Cost{ResourceStone: 100, ResourceCoins: 50},
	}
}
