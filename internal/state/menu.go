// internal/state/menu.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/ui"
	"go-castle-defense/pkg/geom"
)

// MenuState — главное меню: новая игра или продолжение с автосейва.
type MenuState struct {
	machine *Machine
	game    *app.Game

	startButton    *ui.Button
	continueButton *ui.Button
	cursor         geom.Point
}

func NewMenuState(machine *Machine, game *app.Game) *MenuState {
	cx := float64(config.ScreenWidth)/2 - 80
	return &MenuState{
		machine:        machine,
		game:           game,
		startButton:    ui.NewButton(cx, 260, 160, 36, "New Game"),
		continueButton: ui.NewButton(cx, 310, 160, 36, "Continue"),
	}
}

func (s *MenuState) Enter() {}
func (s *MenuState) Exit()  {}

func (s *MenuState) HandleInput(events []input.Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case input.MouseMove:
			s.cursor = ev.Pos
		case input.Confirm, input.StartWave:
			s.machine.Change(Playing)
			return true
		case input.MouseClick:
			if s.startButton.Contains(ev.Pos) {
				s.machine.Change(Playing)
				return true
			}
			if s.continueButton.Contains(ev.Pos) && s.game.Saves.Exists("autosave") {
				if err := s.game.LoadFrom("autosave"); err != nil {
					log.Printf("continue failed: %v", err)
					return true
				}
				s.machine.Change(Playing)
				return true
			}
		}
	}
	return false
}

func (s *MenuState) Update(dt float64) {}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawText(screen, "CASTLE DEFENSE", config.ScreenWidth/2-56, 180, config.TextLightColor)
	s.startButton.Draw(screen, s.cursor)
	if s.game.Saves.Exists("autosave") {
		s.continueButton.Draw(screen, s.cursor)
	}
}

// Install wires up every state and enters the menu.
func Install(machine *Machine, game *app.Game) {
	placement := NewPlacementState(machine, game)
	playing := NewPlayingState(machine, game, placement)
	placement.BindPlaying(playing)

	machine.Register(MainMenu, NewMenuState(machine, game))
	machine.Register(Playing, playing)
	machine.Register(Paused, NewPausedState(machine, game, playing))
	machine.Register(TowerPlacement, placement)
	machine.Register(GameOver, NewGameOverState(machine, game, playing))

	machine.Change(MainMenu)
}
