// internal/ui/button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-castle-defense/internal/config"
	"go-castle-defense/pkg/geom"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Label      string
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(p geom.Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursor geom.Point) {
	bg := config.BarBackColor
	if b.Contains(cursor) {
		bg = config.CastleColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, config.TextDimColor, false)

	face := basicfont.Face7x13
	tx := int(b.X) + (int(b.W)-len(b.Label)*7)/2
	ty := int(b.Y+b.H/2) + 4
	text.Draw(screen, b.Label, face, tx, ty, config.TextLightColor)
}
