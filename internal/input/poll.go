// internal/input/poll.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-castle-defense/internal/defs"
	"go-castle-defense/pkg/geom"
)

// towerHotkeys — выбор башни с клавиатуры.
var towerHotkeys = map[ebiten.Key]defs.TowerKind{
	ebiten.Key1: defs.TowerArcher,
	ebiten.Key2: defs.TowerSniper,
	ebiten.Key3: defs.TowerSplash,
	ebiten.Key4: defs.TowerFrozen,
}

var keyBindings = map[ebiten.Key]Kind{
	ebiten.KeySpace:  StartWave,
	ebiten.KeyEscape: Cancel,
	ebiten.KeyP:      TogglePause,
	ebiten.KeyM:      BuildMine,
	ebiten.KeyK:      BuildCoresmith,
	ebiten.KeyTab:    CycleSpeed,
	ebiten.KeyC:      ToggleContinuous,
	ebiten.KeyF5:     SaveGame,
	ebiten.KeyF9:     LoadGame,
	ebiten.KeyEnter:  Confirm,

	ebiten.KeyU: UpgradeDamage,
	ebiten.KeyI: UpgradeSpeed,
	ebiten.KeyO: UpgradeRange,
	ebiten.KeyJ: UpgradeUtility,
	ebiten.KeyE: EquipForce,
	ebiten.KeyR: EquipSpirit,

	ebiten.KeyG:  UpgradeMine,
	ebiten.KeyF1: CraftForce,
	ebiten.KeyF2: CraftSpirit,
}

// Poll decodes the current frame's raw input into events.
func Poll() []Event {
	var events []Event

	x, y := ebiten.CursorPosition()
	cursor := geom.Point{X: float64(x), Y: float64(y)}
	events = append(events, Event{Kind: MouseMove, Pos: cursor})

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, Event{Kind: MouseClick, Pos: cursor})
	}

	for key, kind := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, Event{Kind: kind, Pos: cursor})
		}
	}
	for key, tower := range towerHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, Event{Kind: SelectTower, Tower: tower, Pos: cursor})
		}
	}
	return events
}
