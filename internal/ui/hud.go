// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/econ"
)

const lineHeight = 16

// DrawText prints a line at screen coordinates with the HUD font.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// HUD renders the top-left status block during play.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

// hudResources — ресурсы, которые показываем всегда, в этом порядке.
var hudResources = []string{
	defs.ResourceStone,
	defs.ResourceIron,
	defs.ResourceCopper,
	defs.ResourceThorium,
	defs.ResourceCoins,
}

// Draw prints wave, castle health, resources and any held cores/items.
func (h *HUD) Draw(screen *ebiten.Image, waveNum int, waveActive bool, castleHealth, castleMax float64, ledger *econ.ResourceLedger, timeScale float64) {
	y := lineHeight

	waveLine := fmt.Sprintf("Wave %d", waveNum)
	if !waveActive {
		waveLine += " (press Space)"
	}
	clr := color.Color(config.TextLightColor)
	if waveActive && waveNum%10 == 0 {
		clr = config.BossWaveColor
	}
	DrawText(screen, waveLine, 8, y, clr)
	y += lineHeight

	DrawText(screen, fmt.Sprintf("Castle %.0f/%.0f", castleHealth, castleMax), 8, y, config.TextLightColor)
	y += lineHeight

	if timeScale != 1 {
		DrawText(screen, fmt.Sprintf("Speed x%.0f", timeScale), 8, y, config.TextDimColor)
		y += lineHeight
	}

	for _, kind := range hudResources {
		DrawText(screen, fmt.Sprintf("%s: %d", kind, ledger.Amount(kind)), 8, y, config.TextDimColor)
		y += lineHeight
	}

	// Ядра и предметы показываем только когда они есть.
	extras := make([]string, 0, 4)
	for kind, n := range ledger.Contents() {
		if isHUDResource(kind) || n == 0 {
			continue
		}
		extras = append(extras, fmt.Sprintf("%s: %d", kind, n))
	}
	sort.Strings(extras)
	for _, line := range extras {
		DrawText(screen, line, 8, y, config.TextLightColor)
		y += lineHeight
	}
}

func isHUDResource(kind string) bool {
	for _, k := range hudResources {
		if k == kind {
			return true
		}
	}
	return false
}
