package ui

import (
	"fmt"

	"github.com/golangdaddy/autorennen/pkg/save"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LeaderboardScreen shows the top scores.
type LeaderboardScreen struct {
	board  *save.Leaderboard
	onBack func()
}

// NewLeaderboardScreen creates the leaderboard screen.
func NewLeaderboardScreen(board *save.Leaderboard, onBack func()) *LeaderboardScreen {
	return &LeaderboardScreen{board: board, onBack: onBack}
}

// Update returns to the title on Escape or Enter.
func (ls *LeaderboardScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ls.onBack != nil {
			ls.onBack()
		}
	}
	return nil
}

// Draw renders the ranked score table.
func (ls *LeaderboardScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(BackgroundColor)

	DrawText(screen, "LEADERBOARD", float64(width)/2, 70, 64, TitleGold)

	if len(ls.board.Entries) == 0 {
		DrawText(screen, "No scores yet - go drive!", float64(width)/2, float64(height)/2, 24, ButtonTextColor)
	}

	y := 150.0
	for i, e := range ls.board.Entries {
		line := fmt.Sprintf("%2d. %-12s Level %-3d Coins %-4d Score %d",
			i+1, e.Name, e.Level, e.Coins, e.Score)
		DrawText(screen, line, float64(width)/2, y, 20, ButtonTextColor)
		y += 36
	}

	DrawText(screen, "Press Escape to go back", float64(width)/2, float64(height)-40, 16, HintGray)
}
