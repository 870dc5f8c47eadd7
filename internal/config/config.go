// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	MaxDeltaTime = 0.06

	// Castle footprint at the bottom centre of the play area.
	CastleWidth   = 200.0
	CastleHeight  = 80.0
	CastleOffsetY = 60.0 // Отступ от нижнего края экрана

	// Monsters spawn along the top edge, inset from the corners.
	SpawnEdgeInset = 50.0
	SpawnEdgeY     = 50.0

	TowerSize = 40.0

	// Distance at which a monster counts as having reached the castle.
	ContactRange = 20.0

	GameOverAutoContinue = 15.0 // Секунды до автоматического продолжения
	WaveSetback          = 10
	WaveSetbackThreshold = 11

	AutosaveWaves = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{160, 160, 170, 255}
	CastleColor     = color.RGBA{120, 120, 140, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 180}
	ValidPlaceColor = color.RGBA{100, 220, 100, 128}
	BadPlaceColor   = color.RGBA{255, 60, 60, 128}
	BossWaveColor   = color.RGBA{255, 100, 100, 255}
	MineColor       = color.RGBA{150, 120, 60, 255}
	CoresmithColor  = color.RGBA{90, 70, 120, 255}
	SlowTintColor   = color.RGBA{120, 200, 255, 255}
	BarBackColor    = color.RGBA{40, 40, 50, 255}
	BarFillColor    = color.RGBA{90, 200, 90, 255}

	TowerColors = map[string]color.RGBA{
		"Archer": {100, 150, 100, 255},
		"Sniper": {150, 100, 100, 255},
		"Splash": {150, 150, 100, 255},
		"Frozen": {100, 150, 150, 255},
	}

	MonsterColors = map[string]color.RGBA{
		"Grunt":  {170, 110, 70, 255},
		"Runner": {220, 200, 90, 255},
		"Tank":   {110, 110, 130, 255},
		"Flyer":  {130, 180, 230, 255},
		"Force":  {230, 90, 50, 255},
		"Spirit": {110, 230, 140, 255},
		"Magic":  {170, 90, 230, 255},
		"Void":   {60, 40, 90, 255},
	}
)
