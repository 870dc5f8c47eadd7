// internal/entity/world.go
package entity

import (
	"sort"

	"go-castle-defense/internal/component"
)

// World owns every live game entity. Maps give O(1) removal; the sorted
// accessors give deterministic iteration for the systems.
type World struct {
	GameTime float64
	NextID   int

	Castle     *component.Castle
	Towers     map[int]*component.Tower
	Mines      map[int]*component.Mine
	Coresmiths map[int]*component.Coresmith
}

func NewWorld() *World {
	return &World{
		NextID:     1,
		Towers:     make(map[int]*component.Tower),
		Mines:      make(map[int]*component.Mine),
		Coresmiths: make(map[int]*component.Coresmith),
	}
}

// AllocID выдаёт следующий свободный идентификатор.
func (w *World) AllocID() int {
	id := w.NextID
	w.NextID++
	return id
}

// AddTower registers the tower and assigns it an ID.
func (w *World) AddTower(t *component.Tower) int {
	t.ID = w.AllocID()
	w.Towers[t.ID] = t
	return t.ID
}

// AddMine registers the mine and assigns it an ID.
func (w *World) AddMine(m *component.Mine) int {
	m.ID = w.AllocID()
	w.Mines[m.ID] = m
	return m.ID
}

// AddCoresmith registers the coresmith and assigns it an ID.
func (w *World) AddCoresmith(c *component.Coresmith) int {
	c.ID = w.AllocID()
	w.Coresmiths[c.ID] = c
	return c.ID
}

func (w *World) RemoveTower(id int) {
	delete(w.Towers, id)
}

// TowersSorted returns towers ordered by ID. Combat iterates this way so
// ties resolve identically between runs.
func (w *World) TowersSorted() []*component.Tower {
	out := make([]*component.Tower, 0, len(w.Towers))
	for _, t := range w.Towers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MinesSorted returns mines ordered by ID.
func (w *World) MinesSorted() []*component.Mine {
	out := make([]*component.Mine, 0, len(w.Mines))
	for _, m := range w.Mines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CoresmithsSorted returns coresmiths ordered by ID.
func (w *World) CoresmithsSorted() []*component.Coresmith {
	out := make([]*component.Coresmith, 0, len(w.Coresmiths))
	for _, c := range w.Coresmiths {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
