// internal/state/playing.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/system"
	"go-castle-defense/internal/ui"
	"go-castle-defense/pkg/geom"
)

// quickSlot — слот для ручного сохранения.
const quickSlot = "quick"

// PlayingState — основной игровой цикл: волны, бой, постройки.
type PlayingState struct {
	machine   *Machine
	game      *app.Game
	placement *PlacementState

	render *system.RenderSystem
	hud    *ui.HUD
	cursor geom.Point

	selected *component.Tower
}

func NewPlayingState(machine *Machine, game *app.Game, placement *PlacementState) *PlayingState {
	return &PlayingState{
		machine:   machine,
		game:      game,
		placement: placement,
		render:    system.NewRenderSystem(),
		hud:       ui.NewHUD(),
	}
}

func (s *PlayingState) Enter() {}
func (s *PlayingState) Exit()  {}

func (s *PlayingState) HandleInput(events []input.Event) bool {
	handled := false
	for _, ev := range events {
		switch ev.Kind {
		case input.MouseMove:
			s.cursor = ev.Pos
			continue
		case input.MouseClick:
			s.selectTowerAt(ev.Pos)
		case input.StartWave:
			s.game.Waves.StartNextWave()
		case input.TogglePause, input.Cancel:
			s.machine.Change(Paused)
		case input.SelectTower:
			s.placement.SetTower(ev.Tower)
			s.machine.Change(TowerPlacement)
		case input.BuildMine:
			s.placement.SetBuilding(input.BuildMine)
			s.machine.Change(TowerPlacement)
		case input.BuildCoresmith:
			s.placement.SetBuilding(input.BuildCoresmith)
			s.machine.Change(TowerPlacement)
		case input.CycleSpeed:
			s.game.CycleSpeed()
		case input.ToggleContinuous:
			s.game.Waves.ContinuousMode = !s.game.Waves.ContinuousMode
		case input.SaveGame:
			if err := s.game.SaveTo(quickSlot); err != nil {
				log.Printf("quicksave failed: %v", err)
			}
		case input.LoadGame:
			if err := s.game.LoadFrom(quickSlot); err != nil {
				log.Printf("quickload failed: %v", err)
			}
			s.selected = nil
		case input.UpgradeDamage, input.UpgradeSpeed, input.UpgradeRange,
			input.UpgradeUtility, input.EquipForce, input.EquipSpirit:
			s.towerAction(ev.Kind)
		case input.UpgradeMine:
			s.upgradeMineAt(s.cursor)
		case input.CraftForce:
			s.startCraft(defs.ItemUnstoppableForce)
		case input.CraftSpirit:
			s.startCraft(defs.ItemSereneSpirit)
		default:
			continue
		}
		handled = true
	}
	return handled
}

func (s *PlayingState) Update(dt float64) {
	s.game.UpdateSim(dt * s.game.TimeScale)
	s.game.UpdateReal(dt)

	if s.game.World.Castle.IsDestroyed() {
		s.game.Dispatcher.Dispatch(event.Event{Type: event.CastleDestroyed, Data: s.game.Waves.CurrentWave})
		s.machine.Change(GameOver)
	}
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.render.Draw(screen, s.game.World, s.game.Waves.Active)
	s.hud.Draw(screen,
		s.game.Waves.CurrentWave, s.game.Waves.WaveActive,
		s.game.World.Castle.Health, s.game.World.Castle.MaxHealth,
		s.game.Ledger, s.game.TimeScale)
}

// selectTowerAt toggles selection of the tower under the click.
func (s *PlayingState) selectTowerAt(pos geom.Point) {
	if s.selected != nil {
		s.selected.Selected = false
		s.selected = nil
	}
	for _, t := range s.game.World.TowersSorted() {
		if geom.Distance(pos, t.Position) <= config.TowerSize/2 {
			t.Selected = true
			s.selected = t
			return
		}
	}
}

func (s *PlayingState) towerAction(kind input.Kind) {
	t := s.selected
	if t == nil {
		return
	}
	ok := false
	switch kind {
	case input.UpgradeDamage:
		ok = t.UpgradeDamage(s.game.Ledger)
	case input.UpgradeSpeed:
		ok = t.UpgradeSpeed(s.game.Ledger)
	case input.UpgradeRange:
		ok = t.UpgradeRange(s.game.Ledger)
	case input.UpgradeUtility:
		ok = t.UpgradeUtility(s.game.Ledger)
	case input.EquipForce:
		err := t.EquipItem(0, defs.ItemUnstoppableForce, s.game.Ledger)
		if err != nil {
			log.Printf("equip: %v", err)
		}
		return
	case input.EquipSpirit:
		err := t.EquipItem(1, defs.ItemSereneSpirit, s.game.Ledger)
		if err != nil {
			log.Printf("equip: %v", err)
		}
		return
	}
	if !ok {
		log.Printf("upgrade %s rejected for %s tower", kind, t.Kind)
	}
}

func (s *PlayingState) upgradeMineAt(pos geom.Point) {
	for _, m := range s.game.World.MinesSorted() {
		if geom.Distance(pos, m.Position) <= config.TowerSize/2 {
			if !m.StartUpgrade(s.game.Ledger) {
				log.Printf("mine upgrade rejected")
			}
			return
		}
	}
}

// startCraft hands the recipe to the first idle coresmith.
func (s *PlayingState) startCraft(item string) {
	for _, c := range s.game.World.CoresmithsSorted() {
		if c.Busy() {
			continue
		}
		if err := c.StartCraft(item, s.game.Ledger); err != nil {
			log.Printf("craft: %v", err)
		}
		return
	}
	log.Printf("craft %s: no idle coresmith", item)
}
