// Package texture synthesizes the game's textures procedurally from the
// world seed. Every texture is a pure function of (kind, seed): the same
// pair always yields identical pixels, which is what lets a loaded save
// reproduce the exact look of the original session.
package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Kind identifies a texture family.
type Kind int

const (
	Ground Kind = iota
	Wall
	Coin
	Car
)

// Perlin parameters matching the asphalt/body-gradient look: persistence
// 0.5 over 4 octaves.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 4
)

// CarPalette holds the body colors: index 0 is the player's red, 1-4 the
// AI opponents.
var CarPalette = []color.RGBA{
	{255, 0, 0, 255},   // player
	{0, 0, 255, 255},   // blue
	{0, 255, 0, 255},   // green
	{255, 255, 0, 255}, // yellow
	{255, 165, 0, 255}, // orange
}

// RenderGround returns the 512x512 asphalt texture: dark gray with Perlin
// grain.
func RenderGround(seed int64) *image.RGBA {
	const size = 512
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := noise.Noise2D(float64(x)/100, float64(y)/100)
			gray := clampByte(50 + n*30)
			img.SetRGBA(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}
	return img
}

// RenderWall returns the 256x256 barrier texture: horizontal red and white
// stripes, 20 pixels tall.
func RenderWall(seed int64) *image.RGBA {
	const (
		size         = 256
		stripeHeight = 20
	)
	_ = seed // the stripe pattern is fixed; seed kept for the cache key

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	red := color.RGBA{255, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < size; y++ {
		c := red
		if (y/stripeHeight)%2 != 0 {
			c = white
		}
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// RenderCoin returns the 128x128 coin texture: a gold disc with a radial
// gradient, transparent outside the disc.
func RenderCoin(seed int64) *image.RGBA {
	const size = 128
	_ = seed

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size / 2)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < center {
				intensity := clampByte(200 - dist/center*100)
				img.SetRGBA(x, y, color.RGBA{255, 215, intensity, 255})
			}
		}
	}
	return img
}

// RenderCar returns the 128x128 car body texture: a colored oval with a
// Perlin highlight gradient, transparent outside the body.
func RenderCar(body color.RGBA, seed int64) *image.RGBA {
	const size = 128
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Abs(float64(x-size/2)) >= size/3 || math.Abs(float64(y-size/2)) >= size/4 {
				continue
			}
			intensity := 150 + noise.Noise2D(float64(x)/50, float64(y)/50)*50
			img.SetRGBA(x, y, color.RGBA{
				R: addClamped(body.R, intensity),
				G: addClamped(body.G, intensity),
				B: addClamped(body.B, intensity),
				A: 255,
			})
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func addClamped(base uint8, add float64) uint8 {
	return clampByte(float64(base) + add)
}
