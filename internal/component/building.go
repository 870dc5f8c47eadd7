// internal/component/building.go
package component

import (
	"fmt"
	"math"

	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
	"go-castle-defense/pkg/geom"
)

// MaxMineLevel caps the resource tier progression.
const MaxMineLevel = 4

// mineTiers — ресурс, который добывает шахта на каждом уровне.
var mineTiers = []string{
	defs.ResourceStone,
	defs.ResourceIron,
	defs.ResourceCopper,
	defs.ResourceThorium,
}

// Mine produces resources on a real-time interval. Higher levels mine a
// better resource tier and tick faster.
type Mine struct {
	ID       int
	Position geom.Point
	Level    int

	ProductionTimer float64
	Upgrading       bool
	UpgradeTimer    float64

	bal *defs.Balance
}

// NewMine builds a level-1 stone mine.
func NewMine(pos geom.Point, bal *defs.Balance) *Mine {
	return &Mine{Position: pos, Level: 1, bal: bal}
}

// Resource returns the resource kind mined at the current level.
func (m *Mine) Resource() string {
	idx := m.Level - 1
	if idx >= len(mineTiers) {
		idx = len(mineTiers) - 1
	}
	return mineTiers[idx]
}

// Interval возвращает текущий период добычи с учётом уровня.
func (m *Mine) Interval() float64 {
	return m.bal.MineInterval / math.Pow(m.bal.MineRateGrowth, float64(m.Level-1))
}

// UpgradeDuration возвращает время следующего улучшения.
func (m *Mine) UpgradeDuration() float64 {
	return m.bal.MineUpgradeTime * math.Pow(m.bal.MineUpgradeGrowth, float64(m.Level-1))
}

// StartUpgrade spends the upgrade cost and begins the timed upgrade.
// Production halts until it completes.
func (m *Mine) StartUpgrade(ledger econ.Ledger) bool {
	if m.Upgrading || m.Level >= MaxMineLevel {
		return false
	}
	if !ledger.SpendAll(m.bal.MineUpgradeCost) {
		return false
	}
	m.Upgrading = true
	m.UpgradeTimer = m.UpgradeDuration()
	return true
}

// Update advances the mine on RAW (unscaled) time. Returns the resource
// kind and true when a production tick completed.
func (m *Mine) Update(dt float64, ledger econ.Ledger) (string, bool) {
	if m.Upgrading {
		m.UpgradeTimer -= dt
		if m.UpgradeTimer <= 0 {
			m.Upgrading = false
			m.UpgradeTimer = 0
			m.Level++
			m.ProductionTimer = 0
		}
		return "", false
	}

	m.ProductionTimer += dt
	if m.ProductionTimer < m.Interval() {
		return "", false
	}
	m.ProductionTimer -= m.Interval()
	kind := m.Resource()
	ledger.Add(kind, m.bal.MineProduction)
	return kind, true
}

// Coresmith crafts tower items from cores over real time. One craft at a
// time; the cost is spent when the craft starts.
type Coresmith struct {
	ID       int
	Position geom.Point

	CraftingItem string
	CraftTimer   float64

	bal *defs.Balance
	lib *defs.Library
}

// NewCoresmith builds an idle coresmith.
func NewCoresmith(pos geom.Point, lib *defs.Library) *Coresmith {
	return &Coresmith{Position: pos, bal: lib.Balance, lib: lib}
}

// Busy reports whether a craft is in progress.
func (c *Coresmith) Busy() bool {
	return c.CraftingItem != ""
}

// StartCraft spends the recipe cost atomically and begins crafting.
func (c *Coresmith) StartCraft(id string, ledger econ.Ledger) error {
	if c.Busy() {
		return fmt.Errorf("start craft %q: coresmith busy with %q", id, c.CraftingItem)
	}
	def, err := c.lib.Item(id)
	if err != nil {
		return fmt.Errorf("start craft %q: %w", id, err)
	}
	if !ledger.SpendAll(def.CraftCost) {
		return fmt.Errorf("start craft %q: not enough resources", id)
	}
	c.CraftingItem = id
	c.CraftTimer = c.bal.CoresmithCraftTime
	return nil
}

// Update advances crafting on RAW time. The finished item is credited to
// the ledger; returns its id and true on completion.
func (c *Coresmith) Update(dt float64, ledger econ.Ledger) (string, bool) {
	if !c.Busy() {
		return "", false
	}
	c.CraftTimer -= dt
	if c.CraftTimer > 0 {
		return "", false
	}
	id := c.CraftingItem
	c.CraftingItem = ""
	c.CraftTimer = 0
	ledger.Add(id, 1)
	return id, true
}
