// Package save persists and restores game worlds and the leaderboard as
// JSON files. Walls and obstacles are never written: the world seed and
// the generated bounds are enough to rebuild them, so a save record only
// carries the state that generation cannot reproduce (coins collected, car
// kinematics, progression).
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golangdaddy/autorennen/pkg/world"
)

// DefaultPath is where the game writes its save file.
const DefaultPath = "savegame.json"

// ErrNoSave reports that no save file exists. It is an expected condition,
// not a failure: callers fall back to generating a new world.
var ErrNoSave = errors.New("no save file")

// PlayerRecord is the durable projection of the player's car.
type PlayerRecord struct {
	Position      [3]float64 `json:"position"`
	Rotation      [3]float64 `json:"rotation"`
	Speed         float64    `json:"speed"`
	MaxSpeed      float64    `json:"max_speed"`
	RotationSpeed float64    `json:"rotation_speed"`
}

// AICarRecord is the durable projection of one AI opponent.
type AICarRecord struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Speed    float64    `json:"speed"`
	MaxSpeed float64    `json:"max_speed"`
}

// GameStateRecord carries the progression counters and difficulty.
type GameStateRecord struct {
	Score      int    `json:"score"`
	Level      int    `json:"level"`
	Coins      int    `json:"coins"`
	TotalCoins int    `json:"total_coins"`
	Difficulty string `json:"difficulty"`
}

// Record is the complete on-disk save format.
type Record struct {
	WorldSeed     int64           `json:"world_seed"`
	MinGeneratedZ float64         `json:"min_generated_z"`
	MaxGeneratedZ float64         `json:"max_generated_z"`
	Player        PlayerRecord    `json:"player"`
	Coins         [][3]float64    `json:"coins"`
	AICars        []AICarRecord   `json:"ai_cars"`
	GameState     GameStateRecord `json:"game_state"`
}

// Snapshot projects a live world into a save record. Only coins still
// alive are written; collected ones stay collected across a load.
func Snapshot(w *world.World) *Record {
	rec := &Record{
		WorldSeed:     w.Seed,
		MinGeneratedZ: w.Bounds.MinZ,
		MaxGeneratedZ: w.Bounds.MaxZ,
		Player: PlayerRecord{
			Position:      vecToArray(w.Player.Position),
			Rotation:      vecToArray(w.Player.Rotation),
			Speed:         w.Player.Speed,
			MaxSpeed:      w.Player.MaxSpeed,
			RotationSpeed: w.Player.RotationSpeed,
		},
		GameState: GameStateRecord{
			Score:      w.Progress.Score,
			Level:      w.Progress.Level,
			Coins:      w.Progress.Coins,
			TotalCoins: w.Progress.TotalCoins,
			Difficulty: w.Difficulty,
		},
	}
	for _, c := range w.AliveCoins() {
		rec.Coins = append(rec.Coins, vecToArray(c.Position))
	}
	for _, car := range w.AICars {
		rec.AICars = append(rec.AICars, AICarRecord{
			Position: vecToArray(car.Position),
			Rotation: vecToArray(car.Rotation),
			Speed:    car.Speed,
			MaxSpeed: car.MaxSpeed,
		})
	}
	return rec
}

// Write stores the record as JSON.
func (r *Record) Write(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Read loads a record from disk. A missing file yields ErrNoSave; corrupt
// data yields a parse error the caller should treat as "no usable save"
// without touching its current state.
func Read(filename string) (*Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("reading save file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing save file: %w", err)
	}
	return &rec, nil
}

// Restore reconstructs a running world from a record. Walls and obstacles
// are regenerated by replaying the generator over the recorded bounds with
// the recorded seed; coins are recreated at their exact saved positions
// (some may have been collected, so they cannot be regenerated); car
// kinematics and progression come back verbatim.
func Restore(rec *Record) *world.World {
	w := world.NewEmpty(rec.WorldSeed, rec.GameState.Difficulty)

	w.Bounds = world.Bounds{MinZ: rec.MinGeneratedZ, MaxZ: rec.MaxGeneratedZ}
	w.RegenerateTrack()

	for _, pos := range rec.Coins {
		w.Coins = append(w.Coins, &world.Placeable{
			Position: arrayToVec(pos),
			Kind:     world.KindCoin,
			Alive:    true,
		})
	}

	for i, carRec := range rec.AICars {
		car := world.NewAICar(i, rec.WorldSeed, arrayToVec(carRec.Position), carRec.MaxSpeed)
		car.Rotation = arrayToVec(carRec.Rotation)
		car.Speed = carRec.Speed
		w.AICars = append(w.AICars, car)
	}

	w.Player.Position = arrayToVec(rec.Player.Position)
	w.Player.Rotation = arrayToVec(rec.Player.Rotation)
	w.Player.Speed = rec.Player.Speed
	w.Player.MaxSpeed = rec.Player.MaxSpeed
	w.Player.RotationSpeed = rec.Player.RotationSpeed

	w.Progress = world.Progression{
		Score:      rec.GameState.Score,
		Level:      rec.GameState.Level,
		Coins:      rec.GameState.Coins,
		TotalCoins: rec.GameState.TotalCoins,
	}

	return w
}

func vecToArray(v world.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayToVec(a [3]float64) world.Vec3 {
	return world.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
