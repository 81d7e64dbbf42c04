package game

import (
	"errors"
	"log"
	"math/rand"

	"github.com/golangdaddy/autorennen/pkg/save"
	"github.com/golangdaddy/autorennen/pkg/ui"
	"github.com/golangdaddy/autorennen/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen dimensions for the whole game.
const (
	ScreenWidth  = 1024
	ScreenHeight = 600
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	currentScreen Screen
}

// New creates a new game instance sitting at the title screen.
func New() *Game {
	g := &Game{}
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.startGameplay, g.showLeaderboard)
}

func (g *Game) showLeaderboard() {
	lb := save.LoadLeaderboard(save.LeaderboardPath)
	g.currentScreen = ui.NewLeaderboardScreen(lb, g.showTitle)
}

// startGameplay builds a world and enters the driving screen. When loading
// is requested but no usable save exists, a fresh world is generated
// instead; a broken save never blocks the player from starting.
func (g *Game) startGameplay(difficulty string, loadSave bool) {
	var w *world.World

	if loadSave {
		rec, err := save.Read(save.DefaultPath)
		switch {
		case errors.Is(err, save.ErrNoSave):
			log.Printf("no save file found, starting a new game")
		case err != nil:
			log.Printf("save file unusable: %v", err)
		default:
			w = save.Restore(rec)
			log.Printf("game loaded: seed=%d level=%d score=%d",
				w.Seed, w.Progress.Level, w.Progress.Score)
		}
	}

	if w == nil {
		seed := rand.Int63n(1000001)
		w = world.New(seed, difficulty)
		log.Printf("new world: seed=%d difficulty=%s", seed, difficulty)
	}

	g.currentScreen = NewGameplayScreen(w, g.showTitle)
}
