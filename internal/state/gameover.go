// internal/state/gameover.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/ui"
)

// GameOverState — замок пал. Не терминально: после отката волн игра
// продолжается с полным здоровьем. Таймер идёт по реальному времени.
type GameOverState struct {
	machine *Machine
	game    *app.Game
	playing *PlayingState

	countdown float64
}

func NewGameOverState(machine *Machine, game *app.Game, playing *PlayingState) *GameOverState {
	return &GameOverState{machine: machine, game: game, playing: playing}
}

func (s *GameOverState) Enter() {
	s.countdown = config.GameOverAutoContinue
	log.Printf("castle destroyed on wave %d", s.game.Waves.CurrentWave)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) HandleInput(events []input.Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case input.Confirm, input.MouseClick, input.StartWave:
			s.resume()
			return true
		}
	}
	return false
}

func (s *GameOverState) Update(dt float64) {
	s.countdown -= dt
	if s.countdown <= 0 {
		s.resume()
	}
}

func (s *GameOverState) resume() {
	s.game.ApplySetback()
	s.machine.Change(Playing)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	if s.playing != nil {
		s.playing.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx := config.ScreenWidth / 2
	ui.DrawText(screen, "THE CASTLE HAS FALLEN", cx-80, config.ScreenHeight/2-30, config.BossWaveColor)
	ui.DrawText(screen,
		fmt.Sprintf("Rebuilding... waves set back. Continue in %.0f s", s.countdown),
		cx-150, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawText(screen, "click or Enter to continue now", cx-105, config.ScreenHeight/2+20, config.TextDimColor)
}
