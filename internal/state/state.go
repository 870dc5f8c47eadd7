// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-castle-defense/internal/input"
)

// Имена состояний.
const (
	MainMenu       = "main_menu"
	Playing        = "playing"
	Paused         = "paused"
	TowerPlacement = "tower_placement"
	GameOver       = "game_over"
)

// State — интерфейс для всех состояний игры.
type State interface {
	Enter()
	Exit()
	// HandleInput возвращает true, если ввод был поглощён.
	HandleInput(events []input.Event) bool
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// Machine — машина состояний с именованным реестром. Активно ровно одно
// состояние.
type Machine struct {
	states  map[string]State
	current State
	name    string
}

func NewMachine() *Machine {
	return &Machine{states: make(map[string]State)}
}

// Register добавляет состояние под именем.
func (m *Machine) Register(name string, s State) {
	m.states[name] = s
}

// Change performs old.Exit -> new.Enter. Unknown names are logged and
// ignored so a bad transition cannot kill the loop.
func (m *Machine) Change(name string) {
	next, ok := m.states[name]
	if !ok {
		log.Printf("state machine: unknown state %q", name)
		return
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	m.name = name
	m.current.Enter()
}

// Current возвращает имя активного состояния.
func (m *Machine) Current() string {
	return m.name
}

func (m *Machine) HandleInput(events []input.Event) {
	if m.current != nil {
		m.current.HandleInput(events)
	}
}

func (m *Machine) Update(dt float64) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

func (m *Machine) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}
