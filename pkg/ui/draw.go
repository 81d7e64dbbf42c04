package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// fontFace is the shared bitmap font face (16px tall at natural size).
var fontFace = text.NewGoXFace(bitmapfont.Face)

// DrawText draws str centered at (centerX, centerY) at the given pixel size.
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	textWidth := text.Advance(str, fontFace)
	scale := size / 16.0
	scaledWidth := textWidth * scale

	// Center horizontally; nudge the baseline so the glyph box is centered
	// vertically too.
	textX := centerX - scaledWidth/2
	textY := centerY - (16.0*scale)/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, fontFace, op)
}

// DrawButton draws a bordered button with centered text.
func DrawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	buttonImg := ebiten.NewImage(int(width), int(height))
	buttonImg.Fill(bgColor)

	// 2px border
	borderColor := color.RGBA{80, 80, 100, 255}
	borderWidth := 2
	w, h := int(width), int(height)
	for i := 0; i < w; i++ {
		for j := 0; j < borderWidth; j++ {
			buttonImg.Set(i, j, borderColor)
			buttonImg.Set(i, h-1-j, borderColor)
		}
	}
	for i := 0; i < h; i++ {
		for j := 0; j < borderWidth; j++ {
			buttonImg.Set(j, i, borderColor)
			buttonImg.Set(w-1-j, i, borderColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(buttonImg, op)

	DrawText(screen, label, x+width/2, y+height/2, 16, textColor)
}

// Menu colors shared by the title screen and the pause overlay.
var (
	ButtonColor            = color.RGBA{40, 40, 60, 255}
	ButtonTextColor        = color.RGBA{255, 255, 255, 255}
	ButtonFocusColor       = color.RGBA{60, 100, 140, 255}
	ButtonFocusTextColor   = color.RGBA{200, 240, 255, 255}
	TitleGold              = color.RGBA{255, 200, 50, 255}
	HintGray               = color.RGBA{150, 150, 150, 255}
	BackgroundColor        = color.RGBA{20, 20, 30, 255}
	OverlayBackgroundAlpha = color.RGBA{0, 0, 0, 160}
)
