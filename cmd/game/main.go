// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/input"
	"go-castle-defense/internal/save"
	"go-castle-defense/internal/state"
	"go-castle-defense/internal/tuning"
	"go-castle-defense/internal/utils"
)

type AppGame struct {
	stateMachine   *state.Machine
	console        *tuning.Console
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if a.console != nil {
		a.console.Drain()
	}
	a.stateMachine.HandleInput(input.Poll())
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed, 0 takes the current time")
	defsPath := flag.String("defs", "", "path to a YAML definitions override file")
	tuningAddr := flag.String("tuning-addr", "", "listen address for the SSH tuning console, empty disables it")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		if err := lib.ApplyOverrides(*defsPath); err != nil {
			log.Fatalf("definitions override: %v", err)
		}
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "castle-defense"})
	if err != nil {
		// Без хранилища сейвы живут только в памяти процесса.
		log.Printf("save storage unavailable: %v", err)
		gdataManager = nil
	}

	game := app.NewGame(lib, utils.NewPRNGService(*seed), save.NewManager(gdataManager))
	sm := state.NewMachine()
	state.Install(sm, game)

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	if *tuningAddr != "" {
		appGame.console = tuning.NewConsole(game)
		go func() {
			if err := tuning.ListenAndServe(*tuningAddr, appGame.console); err != nil {
				log.Printf("tuning console: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Castle Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
