package game

import (
	"math"

	"github.com/golangdaddy/autorennen/pkg/texture"
	"github.com/golangdaddy/autorennen/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Top-down projection: the camera hangs over the player, +z points up the
// screen. One world unit is pixelsPerUnit screen pixels.
const (
	pixelsPerUnit   = 8.0
	groundTileUnits = 64.0 // 64 units * 8 px/unit = the 512px ground texture
)

// Sprite sizes in world units.
const (
	wallSpriteW     = 0.5
	wallSpriteL     = world.WallLength
	obstacleSpriteW = 2.0
	coinSpriteW     = 0.8
	carSpriteW      = 1.5
	carSpriteL      = 3.0
)

// Draw renders the gameplay screen.
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.drawGround(screen)
	gs.drawPlaceables(screen)
	gs.drawCars(screen)
	gs.drawDashboard(screen)
	if gs.mapVisible {
		gs.drawMinimap(screen)
	}
	if gs.paused {
		gs.drawPauseMenu(screen)
	}
}

// worldToScreen projects a world position into screen pixels relative to
// the player-centered camera.
func (gs *GameplayScreen) worldToScreen(p world.Vec3) (float64, float64) {
	player := gs.world.Player.Position
	x := (p.X-player.X)*pixelsPerUnit + ScreenWidth/2
	y := (player.Z-p.Z)*pixelsPerUnit + ScreenHeight/2
	return x, y
}

// drawGround tiles the asphalt texture across the visible area, anchored
// to world coordinates so the road appears to move under the car.
func (gs *GameplayScreen) drawGround(screen *ebiten.Image) {
	ground := texture.Synthesize(texture.Ground, gs.world.Seed)
	player := gs.world.Player.Position

	halfW := ScreenWidth / 2 / pixelsPerUnit
	halfH := ScreenHeight / 2 / pixelsPerUnit
	firstX := math.Floor((player.X-halfW)/groundTileUnits) * groundTileUnits
	firstZ := math.Floor((player.Z-halfH)/groundTileUnits) * groundTileUnits

	for tx := firstX; tx < player.X+halfW+groundTileUnits; tx += groundTileUnits {
		for tz := firstZ; tz < player.Z+halfH+groundTileUnits; tz += groundTileUnits {
			// The tile's top-left screen corner is its (minX, maxZ) world corner.
			sx, sy := gs.worldToScreen(world.Vec3{X: tx, Z: tz + groundTileUnits})
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sx, sy)
			screen.DrawImage(ground, op)
		}
	}
}

// drawPlaceables renders walls, obstacles, and alive coins, skipping
// anything off screen.
func (gs *GameplayScreen) drawPlaceables(screen *ebiten.Image) {
	seed := gs.world.Seed
	wallTex := texture.Synthesize(texture.Wall, seed)
	coinTex := texture.Synthesize(texture.Coin, seed)

	for _, wall := range gs.world.Walls {
		gs.drawSprite(screen, wallTex, wall.Position, wallSpriteW, wallSpriteL, 0)
	}
	for _, o := range gs.world.Obstacles {
		gs.drawSprite(screen, wallTex, o.Position, obstacleSpriteW, obstacleSpriteW, 0)
	}
	for _, c := range gs.world.Coins {
		if c.Alive {
			gs.drawSprite(screen, coinTex, c.Position, coinSpriteW, coinSpriteW, 0)
		}
	}
}

// drawCars renders the AI opponents and then the player so the player
// stays on top.
func (gs *GameplayScreen) drawCars(screen *ebiten.Image) {
	for _, car := range gs.world.AICars {
		gs.drawSprite(screen, gs.carSprite(car), car.Position, carSpriteW, carSpriteL, car.Rotation.Y)
	}
	p := gs.world.Player
	gs.drawSprite(screen, gs.carSprite(p), p.Position, carSpriteW, carSpriteL, p.Rotation.Y)
}

// carSprite resolves a vehicle's synthesized body texture. Opponents get
// per-index derived seeds so each looks distinct but reproducible.
func (gs *GameplayScreen) carSprite(v *world.Vehicle) *ebiten.Image {
	seed := gs.world.Seed
	if v.Kind == world.AI {
		seed += int64(v.PaletteIndex - 1)
	}
	return texture.SynthesizeCar(v.PaletteIndex, seed)
}

// drawSprite draws img centered at a world position, scaled to the given
// world-unit footprint and rotated by yaw degrees.
func (gs *GameplayScreen) drawSprite(screen *ebiten.Image, img *ebiten.Image, pos world.Vec3, unitsW, unitsL, yawDegrees float64) {
	sx, sy := gs.worldToScreen(pos)
	pxW := unitsW * pixelsPerUnit
	pxH := unitsL * pixelsPerUnit
	if sx < -pxW || sx > ScreenWidth+pxW || sy < -pxH || sy > ScreenHeight+pxH {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pxW/float64(bounds.Dx()), pxH/float64(bounds.Dy()))
	op.GeoM.Translate(-pxW/2, -pxH/2)
	if yawDegrees != 0 {
		op.GeoM.Rotate(yawDegrees * math.Pi / 180)
	}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}
