package game

import (
	"errors"
	"log"

	"github.com/golangdaddy/autorennen/pkg/data"
	"github.com/golangdaddy/autorennen/pkg/save"
	"github.com/golangdaddy/autorennen/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tickSeconds is the fixed timestep of the game loop (60 Hz).
const tickSeconds = 1.0 / 60

// autoSaveInterval is how often the game saves on its own during play.
const autoSaveInterval = 60.0

// Pause menu options.
const (
	pauseResume = iota
	pauseSave
	pauseLoad
	pauseSaveAndQuit
	pauseOptionCount
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	world     *world.World
	onGameEnd func() // Callback when the player quits back to the title

	paused      bool
	pauseChoice int
	mapVisible  bool

	autoSaveTimer float64

	// Transient status line ("Game saved!" etc.) with remaining display time.
	status      string
	statusTimer float64
}

// NewGameplayScreen starts driving in the given world.
func NewGameplayScreen(w *world.World, onGameEnd func()) *GameplayScreen {
	return &GameplayScreen{
		world:     w,
		onGameEnd: onGameEnd,
	}
}

// Update handles gameplay logic for one frame.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.paused = !gs.paused
		gs.pauseChoice = pauseResume
		return nil
	}
	if gs.paused {
		gs.updatePauseMenu()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		gs.mapVisible = !gs.mapVisible
	}

	gs.tick(tickSeconds)
	return nil
}

// tick advances the world by one fixed step. A panic anywhere in the step
// abandons the tick: the fault is logged and the next frame starts from
// consistent state instead of tearing the process down mid-race.
func (gs *GameplayScreen) tick(dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("game: tick abandoned: %v", r)
		}
	}()

	w := gs.world

	in := world.Input{
		Throttle: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	w.Player.Update(in, dt)
	for _, car := range w.AICars {
		car.Update(world.Input{}, dt)
	}

	gs.handleCollisions(dt)

	w.ExtendBounds(w.Player.Position.Z)
	w.MaybeRecenter()

	gs.autoSaveTimer += dt
	if gs.autoSaveTimer >= autoSaveInterval {
		gs.autoSaveTimer = 0
		if err := gs.saveGame(); err != nil {
			log.Printf("auto-save failed: %v", err)
		} else {
			log.Printf("game auto-saved")
			gs.flashStatus("Auto-saved")
		}
	}

	if gs.statusTimer > 0 {
		gs.statusTimer -= dt
	}
}

// handleCollisions scans the player against every live entity and feeds
// the hits back into the world's collision responses.
func (gs *GameplayScreen) handleCollisions(dt float64) {
	w := gs.world

	for _, c := range w.Coins {
		if c.Alive && carHitsCoin(w.Player, c) {
			if w.CollectCoin(c) {
				gs.flashStatus("Level up!")
			}
		}
	}
	for _, wall := range w.Walls {
		if carHitsBox(w.Player, wall) {
			w.HitBarrier(dt)
		}
	}
	for _, o := range w.Obstacles {
		if carHitsBox(w.Player, o) {
			w.HitBarrier(dt)
		}
	}
	for _, car := range w.AICars {
		if carsCollide(w.Player, car) {
			w.HitAICar()
		}
	}
}

// updatePauseMenu drives the pause overlay: Resume, Save, Load, Save & Quit.
func (gs *GameplayScreen) updatePauseMenu() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		gs.pauseChoice = (gs.pauseChoice + pauseOptionCount - 1) % pauseOptionCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.pauseChoice = (gs.pauseChoice + 1) % pauseOptionCount
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}

	switch gs.pauseChoice {
	case pauseResume:
		gs.paused = false

	case pauseSave:
		if err := gs.saveGame(); err != nil {
			log.Printf("save failed: %v", err)
			gs.flashStatus("Save failed")
		} else {
			log.Printf("game saved")
			gs.flashStatus("Game saved!")
		}

	case pauseLoad:
		rec, err := save.Read(save.DefaultPath)
		switch {
		case errors.Is(err, save.ErrNoSave):
			log.Printf("no save file found")
			gs.flashStatus("No save found")
		case err != nil:
			log.Printf("save file unusable: %v", err)
			gs.flashStatus("Save unreadable")
		default:
			gs.world = save.Restore(rec)
			gs.paused = false
			gs.flashStatus("Game loaded")
		}

	case pauseSaveAndQuit:
		if err := gs.saveGame(); err != nil {
			log.Printf("save failed: %v", err)
		}
		lb := save.LoadLeaderboard(save.LeaderboardPath)
		p := gs.world.Progress
		if err := lb.Add(data.DriverName(gs.world.Seed), p.Level, p.Coins, p.Score); err != nil {
			log.Printf("leaderboard update failed: %v", err)
		}
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
	}
}

func (gs *GameplayScreen) saveGame() error {
	return save.Snapshot(gs.world).Write(save.DefaultPath)
}

func (gs *GameplayScreen) flashStatus(msg string) {
	gs.status = msg
	gs.statusTimer = 2.5
}
