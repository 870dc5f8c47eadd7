// internal/tuning/server.go
//
// Консоль настройки баланса по SSH. Сессии не трогают игровое состояние
// сами: команды складываются в канал, а игровой цикл применяет их между
// кадрами через Drain. Это единственный шов между горутинами.
package tuning

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gliderlabs/ssh"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/defs"
)

// resourceAliases — короткие имена ресурсов для команды give.
var resourceAliases = map[string]string{
	"stone":             defs.ResourceStone,
	"iron":              defs.ResourceIron,
	"copper":            defs.ResourceCopper,
	"thorium":           defs.ResourceThorium,
	"coins":             defs.ResourceCoins,
	"force-core":        defs.ResourceForceCore,
	"spirit-core":       defs.ResourceSpiritCore,
	"magic-core":        defs.ResourceMagicCore,
	"void-core":         defs.ResourceVoidCore,
	"unstoppable-force": defs.ItemUnstoppableForce,
	"serene-spirit":     defs.ItemSereneSpirit,
}

type command struct {
	line  string
	reply chan string
}

// Console applies tuning commands to the live game.
type Console struct {
	game *app.Game
	cmds chan command
}

func NewConsole(game *app.Game) *Console {
	return &Console{
		game: game,
		cmds: make(chan command, 16),
	}
}

// Drain executes queued commands. Call it from the game loop, once per
// frame, so every mutation happens on the game goroutine.
func (c *Console) Drain() {
	for {
		select {
		case cmd := <-c.cmds:
			cmd.reply <- c.Execute(cmd.line)
		default:
			return
		}
	}
}

// Submit queues a command and blocks until the game loop has applied it.
func (c *Console) Submit(line string) string {
	cmd := command{line: line, reply: make(chan string, 1)}
	c.cmds <- cmd
	return <-cmd.reply
}

// Execute parses and applies one command line. Must run on the game
// goroutine; SSH sessions go through Submit.
func (c *Console) Execute(line string) string {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "help":
		return helpText
	case "show":
		return c.show()
	case "set":
		if len(fields) != 3 {
			return "usage: set <param> <value>"
		}
		return c.setParam(fields[1], fields[2])
	case "give":
		if len(fields) != 3 {
			return "usage: give <resource> <count>"
		}
		return c.give(fields[1], fields[2])
	case "wave":
		if len(fields) != 2 {
			return "usage: wave <n>"
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return fmt.Sprintf("bad wave number %q", fields[1])
		}
		c.game.Waves.SetWave(n)
		return fmt.Sprintf("wave counter set to %d", n)
	default:
		return fmt.Sprintf("unknown command %q (try help)", fields[0])
	}
}

// setParam pokes a Balance field addressed by its yaml tag.
func (c *Console) setParam(name, value string) string {
	v := reflect.ValueOf(c.game.Lib.Balance).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("yaml"), ",")[0]
		if tag != name {
			continue
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.Float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Sprintf("bad float %q", value)
			}
			field.SetFloat(f)
		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Sprintf("bad int %q", value)
			}
			field.SetInt(int64(n))
		default:
			return fmt.Sprintf("parameter %q is not tunable", name)
		}
		return fmt.Sprintf("%s = %s", name, value)
	}
	return fmt.Sprintf("unknown parameter %q", name)
}

func (c *Console) give(alias, count string) string {
	kind, ok := resourceAliases[alias]
	if !ok {
		return fmt.Sprintf("unknown resource %q", alias)
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return fmt.Sprintf("bad count %q", count)
	}
	c.game.Ledger.Add(kind, n)
	return fmt.Sprintf("%s += %d (now %d)", kind, n, c.game.Ledger.Amount(kind))
}

func (c *Console) show() string {
	var b strings.Builder
	fmt.Fprintf(&b, "wave: %d (active=%v)\n", c.game.Waves.CurrentWave, c.game.Waves.WaveActive)
	fmt.Fprintf(&b, "castle: %.0f/%.0f\n", c.game.World.Castle.Health, c.game.World.Castle.MaxHealth)
	fmt.Fprintf(&b, "time scale: %.0f\n", c.game.TimeScale)

	lines := make([]string, 0, 8)
	for kind, n := range c.game.Ledger.Contents() {
		lines = append(lines, fmt.Sprintf("  %s: %d", kind, n))
	}
	sort.Strings(lines)
	b.WriteString("resources:\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

const helpText = `commands:
  show                  game and balance overview
  set <param> <value>   poke a balance parameter (yaml tag name)
  give <resource> <n>   add resources (stone, coins, force-core, ...)
  wave <n>              set the wave counter
  help`

// ListenAndServe runs the SSH console until the listener fails. Meant
// for a goroutine; пустой адрес отключает консоль.
func ListenAndServe(addr string, console *Console) error {
	if addr == "" {
		return nil
	}
	server := &ssh.Server{
		Addr: addr,
		Handler: func(sess ssh.Session) {
			handleSession(sess, console)
		},
	}
	log.Printf("tuning console listening on %s", addr)
	return server.ListenAndServe()
}

func handleSession(sess ssh.Session, console *Console) {
	log.Printf("tuning session from %s", sess.User())
	io.WriteString(sess, "castle-defense tuning console (help for commands)\n")

	scanner := bufio.NewScanner(sess)
	io.WriteString(sess, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "quit" {
			return
		}
		if reply := console.Submit(line); reply != "" {
			io.WriteString(sess, reply+"\n")
		}
		io.WriteString(sess, "> ")
	}
}
