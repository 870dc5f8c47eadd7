// internal/input/events.go
package input

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

// Kind — тип декодированного события ввода.
type Kind string

const (
	MouseClick       Kind = "MouseClick"
	MouseMove        Kind = "MouseMove"
	StartWave        Kind = "StartWave"
	TogglePause      Kind = "TogglePause"
	SelectTower      Kind = "SelectTower"
	BuildMine        Kind = "BuildMine"
	BuildCoresmith   Kind = "BuildCoresmith"
	Confirm          Kind = "Confirm"
	Cancel           Kind = "Cancel"
	CycleSpeed       Kind = "CycleSpeed"
	ToggleContinuous Kind = "ToggleContinuous"
	SaveGame         Kind = "SaveGame"
	LoadGame         Kind = "LoadGame"

	// Действия над выбранной башней.
	UpgradeDamage  Kind = "UpgradeDamage"
	UpgradeSpeed   Kind = "UpgradeSpeed"
	UpgradeRange   Kind = "UpgradeRange"
	UpgradeUtility Kind = "UpgradeUtility"
	EquipForce     Kind = "EquipForce"
	EquipSpirit    Kind = "EquipSpirit"

	// Постройки.
	UpgradeMine Kind = "UpgradeMine"
	CraftForce  Kind = "CraftForce"
	CraftSpirit Kind = "CraftSpirit"
)

// Event is a single decoded input action. States consume these instead
// of reading the keyboard, so tests can drive them directly.
type Event struct {
	Kind  Kind
	Pos   geom.Point     // MouseClick / MouseMove
	Tower defs.TowerKind // SelectTower
}
