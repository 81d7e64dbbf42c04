package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/autorennen/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// drawDashboard renders the in-game HUD: speed, coin progress, level,
// score, and the transient status line.
func (gs *GameplayScreen) drawDashboard(screen *ebiten.Image) {
	p := gs.world.Progress

	// Panel background.
	panelW, panelH := 210, 128
	panel := ebiten.NewImage(panelW, panelH)
	panel.Fill(color.RGBA{20, 20, 30, 200})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(14, 14)
	screen.DrawImage(panel, op)

	// Speed, color-coded like a gauge: calm green through warning red.
	speedKMH := math.Abs(gs.world.Player.Speed * 3.6)
	speedColor := color.RGBA{100, 255, 100, 255}
	switch {
	case speedKMH > 55:
		speedColor = color.RGBA{255, 100, 100, 255}
	case speedKMH > 35:
		speedColor = color.RGBA{255, 255, 100, 255}
	}

	x := 14.0 + float64(panelW)/2
	ui.DrawText(screen, fmt.Sprintf("%3.0f km/h", speedKMH), x, 36, 28, speedColor)
	ui.DrawText(screen, fmt.Sprintf("Coins: %d/%d", p.Coins, p.TotalCoins), x, 66, 16, ui.ButtonTextColor)
	ui.DrawText(screen, fmt.Sprintf("Level: %d", p.Level), x, 88, 16, ui.ButtonTextColor)
	ui.DrawText(screen, fmt.Sprintf("Score: %d", p.Score), x, 110, 16, ui.ButtonTextColor)

	hint := "[M] Map"
	if gs.mapVisible {
		hint = "[M] Close map"
	}
	ui.DrawText(screen, hint, ScreenWidth-80, ScreenHeight-24, 16, ui.HintGray)

	if gs.statusTimer > 0 && gs.status != "" {
		ui.DrawText(screen, gs.status, ScreenWidth/2, 40, 24, ui.TitleGold)
	}
}

// drawPauseMenu renders the dimming overlay and the pause options.
func (gs *GameplayScreen) drawPauseMenu(screen *ebiten.Image) {
	overlay := ebiten.NewImage(ScreenWidth, ScreenHeight)
	overlay.Fill(ui.OverlayBackgroundAlpha)
	screen.DrawImage(overlay, &ebiten.DrawImageOptions{})

	ui.DrawText(screen, "PAUSED", ScreenWidth/2, 140, 56, ui.TitleGold)

	labels := []string{"Resume", "Save Game", "Load Game", "Save & Quit"}
	buttonW, buttonH := 300.0, 46.0
	buttonX := float64(ScreenWidth)/2 - buttonW/2
	y := 220.0
	for i, label := range labels {
		bg, fg := ui.ButtonColor, ui.ButtonTextColor
		if i == gs.pauseChoice {
			bg, fg = ui.ButtonFocusColor, ui.ButtonFocusTextColor
		}
		ui.DrawButton(screen, label, buttonX, y, buttonW, buttonH, bg, fg)
		y += 58
	}

	if gs.statusTimer > 0 && gs.status != "" {
		ui.DrawText(screen, gs.status, ScreenWidth/2, y+20, 20, ui.TitleGold)
	}
}
