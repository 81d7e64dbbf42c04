package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Title menu options.
const (
	titleDifficulty = iota
	titleNewGame
	titleLoadGame
	titleLeaderboard
	titleQuit
	titleOptionCount
)

var difficulties = []string{"easy", "medium", "hard"}

// TitleScreen represents the main title screen with difficulty selection
// and the new/load/leaderboard/quit menu.
type TitleScreen struct {
	startTime      time.Time
	selectedOption int
	difficultyIdx  int

	onStart       func(difficulty string, loadSave bool)
	onLeaderboard func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStart func(difficulty string, loadSave bool), onLeaderboard func()) *TitleScreen {
	return &TitleScreen{
		startTime:     time.Now(),
		difficultyIdx: 1, // medium
		onStart:       onStart,
		onLeaderboard: onLeaderboard,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ts.selectedOption = (ts.selectedOption + titleOptionCount - 1) % titleOptionCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ts.selectedOption = (ts.selectedOption + 1) % titleOptionCount
	}

	// Left/right cycle the difficulty while it has focus.
	if ts.selectedOption == titleDifficulty {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
			ts.difficultyIdx = (ts.difficultyIdx + len(difficulties) - 1) % len(difficulties)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
			ts.difficultyIdx = (ts.difficultyIdx + 1) % len(difficulties)
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}

	switch ts.selectedOption {
	case titleDifficulty:
		ts.difficultyIdx = (ts.difficultyIdx + 1) % len(difficulties)
	case titleNewGame:
		if ts.onStart != nil {
			ts.onStart(difficulties[ts.difficultyIdx], false)
		}
	case titleLoadGame:
		if ts.onStart != nil {
			ts.onStart(difficulties[ts.difficultyIdx], true)
		}
	case titleLeaderboard:
		if ts.onLeaderboard != nil {
			ts.onLeaderboard()
		}
	case titleQuit:
		return ebiten.Termination
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	// Pulsing gold title.
	brightness := 1.0 + 0.2*math.Sin(elapsed*1.5)
	if brightness > 1.0 {
		brightness = 1.0
	}
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	titleSize := 16 * (6.0 + 0.4*math.Sin(elapsed*2.0))
	DrawText(screen, "AUTORENNEN", float64(width)/2, float64(height)/5, titleSize, titleColor)
	DrawText(screen, "Endless Racing", float64(width)/2, float64(height)/5+70, 32, color.RGBA{180, 180, 200, 255})

	// Menu buttons.
	buttonWidth := 340.0
	buttonHeight := 46.0
	buttonX := float64(width)/2 - buttonWidth/2
	optionY := float64(height)/2 - 40
	optionSpacing := 58.0

	labels := []string{
		"Difficulty: " + difficulties[ts.difficultyIdx],
		"New Game",
		"Load Game",
		"Leaderboard",
		"Quit",
	}
	for i, label := range labels {
		bg, fg := ButtonColor, ButtonTextColor
		if i == ts.selectedOption {
			bg, fg = ButtonFocusColor, ButtonFocusTextColor
		}
		DrawButton(screen, label, buttonX, optionY+float64(i)*optionSpacing, buttonWidth, buttonHeight, bg, fg)
	}

	DrawText(screen, "WASD/Arrows: Drive | M: Map | Esc: Pause", float64(width)/2, float64(height)-30, 16, HintGray)
}
