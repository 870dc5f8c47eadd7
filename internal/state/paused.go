// internal/state/paused.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/ui"
)

// PausedState — пауза. Бой стоит, но шахты и кузня работают: они живут
// на реальном времени.
type PausedState struct {
	machine *Machine
	game    *app.Game
	playing *PlayingState
}

func NewPausedState(machine *Machine, game *app.Game, playing *PlayingState) *PausedState {
	return &PausedState{machine: machine, game: game, playing: playing}
}

func (s *PausedState) Enter() {}
func (s *PausedState) Exit()  {}

func (s *PausedState) HandleInput(events []input.Event) bool {
	handled := false
	for _, ev := range events {
		switch ev.Kind {
		case input.TogglePause, input.Confirm, input.Cancel:
			s.machine.Change(Playing)
		case input.SaveGame:
			if err := s.game.SaveTo(quickSlot); err != nil {
				log.Printf("quicksave failed: %v", err)
			}
		case input.LoadGame:
			if err := s.game.LoadFrom(quickSlot); err != nil {
				log.Printf("quickload failed: %v", err)
			}
			s.machine.Change(Playing)
		default:
			continue
		}
		handled = true
	}
	return handled
}

// Update: только системы реального времени.
func (s *PausedState) Update(dt float64) {
	s.game.UpdateReal(dt)
}

func (s *PausedState) Draw(screen *ebiten.Image) {
	if s.playing != nil {
		s.playing.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawText(screen, "PAUSED", config.ScreenWidth/2-24, config.ScreenHeight/2-20, config.TextLightColor)
	ui.DrawText(screen, "P - resume, F5 - save, F9 - load", config.ScreenWidth/2-110, config.ScreenHeight/2, config.TextDimColor)
}
