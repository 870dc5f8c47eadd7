// internal/save/manager.go
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const savesObject = "saves"

// Snapshot is the serialized game: only factory-reconstruction data, no
// derived stats. Loading re-drives the normal construction paths.
type Snapshot struct {
	Wave          int  `yaml:"wave"`
	WaveActive    bool `yaml:"wave_active"`
	ToSpawn       int  `yaml:"to_spawn"`
	BossWave      bool `yaml:"boss_wave"`
	Continuous    bool `yaml:"continuous"`

	TimeScale float64 `yaml:"time_scale"`

	Resources map[string]int `yaml:"resources"`

	Castle     CastleRecord      `yaml:"castle"`
	Towers     []TowerRecord     `yaml:"towers"`
	Monsters   []MonsterRecord   `yaml:"monsters"`
	Mines      []MineRecord      `yaml:"mines"`
	Coresmiths []CoresmithRecord `yaml:"coresmiths"`
}

// CastleRecord keeps the castle's levels and current health. Stats are
// rebuilt by replaying the level multipliers on load.
type CastleRecord struct {
	Health          float64 `yaml:"health"`
	MaxHealth       float64 `yaml:"max_health"`
	DamageReduction float64 `yaml:"damage_reduction"`
	HealthRegen     float64 `yaml:"health_regen"`
	HealthLevel     int     `yaml:"health_level"`
	ReductionLevel  int     `yaml:"reduction_level"`
	RegenLevel      int     `yaml:"regen_level"`
}

// TowerRecord holds what the tower factory needs to rebuild a tower.
type TowerRecord struct {
	Kind         string   `yaml:"kind"`
	X            float64  `yaml:"x"`
	Y            float64  `yaml:"y"`
	DamageLevel  int      `yaml:"damage_level"`
	SpeedLevel   int      `yaml:"speed_level"`
	RangeLevel   int      `yaml:"range_level"`
	UtilityLevel int      `yaml:"utility_level"`
	Items        []string `yaml:"items,omitempty"`
}

// MonsterRecord holds what the monster factory needs. Health is stored
// as a fraction so rescaling on load stays exact.
type MonsterRecord struct {
	Kind       string  `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	HealthFrac float64 `yaml:"health_frac"`
	IsBoss     bool    `yaml:"is_boss,omitempty"`
	SpawnWave  int     `yaml:"spawn_wave"`
}

type MineRecord struct {
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Level           int     `yaml:"level"`
	ProductionTimer float64 `yaml:"production_timer"`
	Upgrading       bool    `yaml:"upgrading,omitempty"`
	UpgradeTimer    float64 `yaml:"upgrade_timer,omitempty"`
}

type CoresmithRecord struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	CraftingItem string  `yaml:"crafting_item,omitempty"`
	CraftTimer   float64 `yaml:"craft_timer,omitempty"`
}

// Manager stores snapshots through gdata. A nil gdata manager degrades
// to in-memory slots (the game still runs, saves do not survive exit).
type Manager struct {
	gdataManager *gdata.Manager
	mem          map[string][]byte
}

func NewManager(gdataManager *gdata.Manager) *Manager {
	if gdataManager == nil {
		log.Printf("save: no storage backend, snapshots are in-memory only")
	}
	return &Manager{
		gdataManager: gdataManager,
		mem:          make(map[string][]byte),
	}
}

// Save serializes the snapshot into the slot.
func (m *Manager) Save(slot string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if m.gdataManager == nil {
		m.mem[slot] = data
		return nil
	}
	if err := m.gdataManager.SaveObjectProp(savesObject, slot, data); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Exists reports whether the slot holds a snapshot.
func (m *Manager) Exists(slot string) bool {
	if m.gdataManager == nil {
		_, ok := m.mem[slot]
		return ok
	}
	return m.gdataManager.ObjectPropExists(savesObject, slot)
}

// Load deserializes the snapshot in the slot.
func (m *Manager) Load(slot string) (*Snapshot, error) {
	var data []byte
	if m.gdataManager == nil {
		d, ok := m.mem[slot]
		if !ok {
			return nil, fmt.Errorf("load slot %q: no snapshot", slot)
		}
		data = d
	} else {
		d, err := m.gdataManager.LoadObjectProp(savesObject, slot)
		if err != nil {
			return nil, fmt.Errorf("load slot %q: %w", slot, err)
		}
		data = d
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal slot %q: %w", slot, err)
	}
	return &snap, nil
}
