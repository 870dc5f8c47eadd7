// internal/state/placement.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/ui"
	"go-castle-defense/pkg/geom"
)

// PlacementState — выбор места под башню или постройку. Подтверждение
// строит и списывает цену атомарно; отмена не оставляет следов.
type PlacementState struct {
	machine *Machine
	game    *app.Game
	playing *PlayingState

	pendingTower    defs.TowerKind
	pendingBuilding input.Kind // BuildMine / BuildCoresmith, либо ""

	cursor geom.Point
}

func NewPlacementState(machine *Machine, game *app.Game) *PlacementState {
	return &PlacementState{machine: machine, game: game}
}

// BindPlaying даёт состоянию сцену для отрисовки под превью.
func (s *PlacementState) BindPlaying(p *PlayingState) {
	s.playing = p
}

// SetTower arms tower placement for the next entry into the state.
func (s *PlacementState) SetTower(kind defs.TowerKind) {
	s.pendingTower = kind
	s.pendingBuilding = ""
}

// SetBuilding arms mine or coresmith placement.
func (s *PlacementState) SetBuilding(kind input.Kind) {
	s.pendingBuilding = kind
	s.pendingTower = ""
}

func (s *PlacementState) Enter() {}

func (s *PlacementState) Exit() {
	s.pendingTower = ""
	s.pendingBuilding = ""
}

func (s *PlacementState) HandleInput(events []input.Event) bool {
	handled := false
	for _, ev := range events {
		switch ev.Kind {
		case input.MouseMove:
			s.cursor = ev.Pos
			continue
		case input.MouseClick:
			s.confirmAt(ev.Pos)
		case input.Confirm:
			s.confirmAt(s.cursor)
		case input.Cancel:
			s.machine.Change(Playing)
		case input.SelectTower:
			// Смена вида прямо в режиме размещения.
			s.SetTower(ev.Tower)
		default:
			continue
		}
		handled = true
	}
	return handled
}

func (s *PlacementState) confirmAt(pos geom.Point) {
	var err error
	switch {
	case s.pendingTower != "":
		_, err = s.game.PlaceTower(s.pendingTower, pos)
	case s.pendingBuilding == input.BuildMine:
		_, err = s.game.PlaceMine(pos)
	case s.pendingBuilding == input.BuildCoresmith:
		_, err = s.game.PlaceCoresmith(pos)
	default:
		s.machine.Change(Playing)
		return
	}
	if err != nil {
		log.Printf("placement: %v", err)
		return
	}
	s.machine.Change(Playing)
}

// Update: симуляция не останавливается, пока игрок выбирает место.
func (s *PlacementState) Update(dt float64) {
	s.game.UpdateSim(dt * s.game.TimeScale)
	s.game.UpdateReal(dt)

	if s.game.World.Castle.IsDestroyed() {
		s.game.Dispatcher.Dispatch(event.Event{Type: event.CastleDestroyed, Data: s.game.Waves.CurrentWave})
		s.machine.Change(GameOver)
	}
}

func (s *PlacementState) Draw(screen *ebiten.Image) {
	if s.playing != nil {
		s.playing.Draw(screen)
	}

	clr := config.ValidPlaceColor
	if !s.game.CanPlaceAt(s.cursor) || !s.affordable() {
		clr = config.BadPlaceColor
	}
	half := float32(config.TowerSize / 2)
	vector.DrawFilledRect(screen,
		float32(s.cursor.X)-half, float32(s.cursor.Y)-half,
		float32(config.TowerSize), float32(config.TowerSize), clr, false)

	label := string(s.pendingTower)
	if s.pendingBuilding == input.BuildMine {
		label = "Mine"
	} else if s.pendingBuilding == input.BuildCoresmith {
		label = "Coresmith"
	}
	ui.DrawText(screen, "Placing: "+label+" (Esc to cancel)",
		8, config.ScreenHeight-10, config.TextLightColor)
}

func (s *PlacementState) affordable() bool {
	switch {
	case s.pendingTower != "":
		cost, err := s.game.TowerCost(s.pendingTower)
		if err != nil {
			return false
		}
		return s.game.Ledger.HasAll(cost)
	case s.pendingBuilding == input.BuildMine:
		return s.game.Ledger.HasAll(s.game.Lib.Balance.MineBuildCost)
	case s.pendingBuilding == input.BuildCoresmith:
		return s.game.Ledger.HasAll(s.game.Lib.Balance.CoresmithBuildCost)
	}
	return false
}
