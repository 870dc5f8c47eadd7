// internal/system/building.go
package system

import (
	"go-castle-defense/internal/econ"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
)

// BuildingSystem advances mines and coresmiths. It runs on RAW time so
// production continues through pauses and speed changes.
type BuildingSystem struct {
	dispatcher *event.Dispatcher
}

func NewBuildingSystem(dispatcher *event.Dispatcher) *BuildingSystem {
	return &BuildingSystem{dispatcher: dispatcher}
}

// Update ticks every building with the unscaled frame delta.
func (s *BuildingSystem) Update(rawDT float64, world *entity.World, ledger econ.Ledger) {
	for _, mine := range world.MinesSorted() {
		if kind, ok := mine.Update(rawDT, ledger); ok {
			s.dispatcher.Dispatch(event.Event{Type: event.ResourceProduced, Data: kind})
		}
	}
	for _, smith := range world.CoresmithsSorted() {
		if id, ok := smith.Update(rawDT, ledger); ok {
			s.dispatcher.Dispatch(event.Event{Type: event.ItemCrafted, Data: id})
		}
	}
}
