package game

import (
	"image/color"

	"github.com/golangdaddy/autorennen/pkg/texture"
	"github.com/golangdaddy/autorennen/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Minimap layout: a square panel in the top-right corner showing
// everything within minimapRange units of the player.
const (
	minimapSize   = 200
	minimapMargin = 20
	minimapRange  = 50.0
)

// drawMinimap renders the overhead map with the player at its center.
func (gs *GameplayScreen) drawMinimap(screen *ebiten.Image) {
	panel := ebiten.NewImage(minimapSize, minimapSize)

	// Ground texture as the map backdrop.
	ground := texture.Synthesize(texture.Ground, gs.world.Seed)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(minimapSize)/float64(ground.Bounds().Dx()), float64(minimapSize)/float64(ground.Bounds().Dy()))
	panel.DrawImage(ground, op)

	border := color.RGBA{200, 200, 200, 255}
	for i := 0; i < minimapSize; i++ {
		panel.Set(i, 0, border)
		panel.Set(i, minimapSize-1, border)
		panel.Set(0, i, border)
		panel.Set(minimapSize-1, i, border)
	}

	gray := color.RGBA{120, 120, 120, 255}
	for _, o := range gs.world.Obstacles {
		gs.plotMinimapDot(panel, o.Position, 2, gray)
	}
	for _, car := range gs.world.AICars {
		gs.plotMinimapDot(panel, car.Position, 3, texture.CarPalette[car.PaletteIndex%len(texture.CarPalette)])
	}
	gs.plotMinimapDot(panel, gs.world.Player.Position, 4, texture.CarPalette[0])

	screenOp := &ebiten.DrawImageOptions{}
	screenOp.GeoM.Translate(ScreenWidth-minimapSize-minimapMargin, minimapMargin)
	screen.DrawImage(panel, screenOp)
}

// plotMinimapDot marks a world position on the panel, skipping anything
// outside the mapped range.
func (gs *GameplayScreen) plotMinimapDot(panel *ebiten.Image, pos world.Vec3, radius int, clr color.RGBA) {
	player := gs.world.Player.Position
	dx := (pos.X - player.X) / minimapRange
	dz := (pos.Z - player.Z) / minimapRange
	if dx < -1 || dx > 1 || dz < -1 || dz > 1 {
		return
	}

	cx := minimapSize/2 + int(dx*minimapSize/2)
	cy := minimapSize/2 - int(dz*minimapSize/2)
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x >= 0 && x < minimapSize && y >= 0 && y < minimapSize {
				panel.Set(x, y, clr)
			}
		}
	}
}
