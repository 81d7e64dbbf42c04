package texture

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// key identifies a synthesized texture. The palette index matters only for
// car textures: the player and the first opponent share a seed but not a
// body color.
type key struct {
	kind    Kind
	seed    int64
	palette int
}

var cache = map[key]*ebiten.Image{}

// Synthesize returns the GPU image for a world-level texture, generating
// it on first use. Identical (kind, seed) pairs always return the same
// image.
func Synthesize(kind Kind, seed int64) *ebiten.Image {
	return lookup(key{kind: kind, seed: seed}, func() *image.RGBA {
		switch kind {
		case Ground:
			return RenderGround(seed)
		case Wall:
			return RenderWall(seed)
		case Coin:
			return RenderCoin(seed)
		default:
			return RenderCar(CarPalette[0], seed)
		}
	})
}

// SynthesizeCar returns the body texture for the given palette index.
// Callers derive opponent seeds as worldSeed + opponentIndex; this
// function only needs the final seed.
func SynthesizeCar(paletteIndex int, seed int64) *ebiten.Image {
	body := CarPalette[paletteIndex%len(CarPalette)]
	return lookup(key{kind: Car, seed: seed, palette: paletteIndex}, func() *image.RGBA {
		return RenderCar(body, seed)
	})
}

func lookup(k key, render func() *image.RGBA) *ebiten.Image {
	if img, ok := cache[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(render())
	cache[k] = img
	return img
}
