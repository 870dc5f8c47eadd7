// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
)

const (
	monsterRadius = 8.0
	bossRadius    = 14.0
	barHeight     = 4.0
)

// RenderSystem draws the field: castle, structures, monsters. HUD text
// lives in the ui package; states compose the two.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders the whole world onto screen.
func (r *RenderSystem) Draw(screen *ebiten.Image, world *entity.World, monsters []*component.Monster) {
	r.drawCastle(screen, world.Castle)

	for _, mine := range world.MinesSorted() {
		r.drawBuilding(screen, mine.Position.X, mine.Position.Y, config.MineColor)
	}
	for _, smith := range world.CoresmithsSorted() {
		r.drawBuilding(screen, smith.Position.X, smith.Position.Y, config.CoresmithColor)
	}

	for _, t := range world.TowersSorted() {
		r.drawTower(screen, t)
	}
	for _, m := range monsters {
		r.drawMonster(screen, m)
	}
}

func (r *RenderSystem) drawCastle(screen *ebiten.Image, c *component.Castle) {
	minX, minY, maxX, maxY := c.Bounds()
	vector.DrawFilledRect(screen,
		float32(minX), float32(minY),
		float32(maxX-minX), float32(maxY-minY),
		config.CastleColor, false)

	frac := 0.0
	if c.MaxHealth > 0 {
		frac = c.Health / c.MaxHealth
	}
	drawBar(screen, minX, minY-10, maxX-minX, frac)
}

func (r *RenderSystem) drawTower(screen *ebiten.Image, t *component.Tower) {
	clr, ok := config.TowerColors[string(t.Kind)]
	if !ok {
		clr = config.CastleColor
	}
	half := float32(config.TowerSize / 2)
	vector.DrawFilledRect(screen,
		float32(t.Position.X)-half, float32(t.Position.Y)-half,
		float32(config.TowerSize), float32(config.TowerSize), clr, false)

	if t.Selected {
		vector.StrokeCircle(screen,
			float32(t.Position.X), float32(t.Position.Y),
			float32(t.Range), 1, config.TextDimColor, false)
	}
}

func (r *RenderSystem) drawMonster(screen *ebiten.Image, m *component.Monster) {
	if m.IsDead || m.ReachedCastle {
		return
	}
	clr, ok := config.MonsterColors[m.Kind]
	if !ok {
		clr = config.TextLightColor
	}
	radius := monsterRadius
	if m.IsBoss {
		radius = bossRadius
	}
	vector.DrawFilledCircle(screen,
		float32(m.Position.X), float32(m.Position.Y), float32(radius), clr, false)
	if m.Slow != nil {
		vector.StrokeCircle(screen,
			float32(m.Position.X), float32(m.Position.Y),
			float32(radius+2), 1, config.SlowTintColor, false)
	}
	drawBar(screen, m.Position.X-radius, m.Position.Y-radius-7, radius*2, m.HealthFraction())
}

func (r *RenderSystem) drawBuilding(screen *ebiten.Image, x, y float64, clr color.RGBA) {
	half := float32(config.TowerSize / 2)
	vector.DrawFilledRect(screen,
		float32(x)-half, float32(y)-half,
		float32(config.TowerSize), float32(config.TowerSize), clr, false)
}

func drawBar(screen *ebiten.Image, x, y, width, frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(width), barHeight, config.BarBackColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(width*frac), barHeight, config.BarFillColor, false)
}
