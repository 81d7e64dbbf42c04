package world

// Bounds is the half-open z-interval [MinZ, MaxZ) currently materialized
// with track geometry. Only the bounds tracker mutates it, except during
// recentering where both edges shift by the same offset.
type Bounds struct {
	MinZ float64
	MaxZ float64
}

// Progression tracks the player's advancement through levels.
type Progression struct {
	Coins      int // collected this level, resets on level-up
	TotalCoins int // every coin ever generated, only grows
	Level      int
	Score      int
}

// AI speed multipliers per difficulty.
const (
	easySpeedFactor   = 0.7
	mediumSpeedFactor = 0.9
	hardSpeedFactor   = 1.2
)

// SpeedFactor returns the AI speed multiplier for a difficulty name.
// Unknown names fall back to medium.
func SpeedFactor(difficulty string) float64 {
	switch difficulty {
	case "easy":
		return easySpeedFactor
	case "hard":
		return hardSpeedFactor
	default:
		return mediumSpeedFactor
	}
}

// Initial materialized track extent and AI opponent spawn area.
const (
	initialHalfSpan = 50.0
	aiCarCount      = 4
)

// World is the aggregate holding all live game state. Generation, bounds
// tracking, recentering, and persistence all operate on this struct; there
// is no ambient global state.
type World struct {
	Seed       int64
	Rand       *Rand
	Bounds     Bounds
	Difficulty string

	Walls     []*Placeable
	Obstacles []*Placeable
	Coins     []*Placeable
	AICars    []*Vehicle
	Player    *Vehicle

	Progress Progression
}

// New creates a fresh world: seeds the random stream, materializes the
// initial [-50, 50) track interval, spawns the AI opponents, and places
// the player at the origin.
func New(seed int64, difficulty string) *World {
	w := NewEmpty(seed, difficulty)
	w.GenerateSegment(w.Bounds.MinZ, w.Bounds.MaxZ)
	w.SpawnAICars()
	return w
}

// NewEmpty creates a world with the initial bounds but no geometry or
// opponents. The load path uses it before replaying generation from a
// save record.
func NewEmpty(seed int64, difficulty string) *World {
	return &World{
		Seed:       seed,
		Rand:       NewRand(seed),
		Bounds:     Bounds{MinZ: -initialHalfSpan, MaxZ: initialHalfSpan},
		Difficulty: difficulty,
		Player:     NewPlayerCar(),
		Progress:   Progression{Level: 1},
	}
}

// SpawnAICars creates the AI opponents scattered behind the start line.
// Their max speed scales with the difficulty setting.
func (w *World) SpawnAICars() {
	factor := SpeedFactor(w.Difficulty)
	for i := 0; i < aiCarCount; i++ {
		pos := Vec3{
			X: w.Rand.Uniform(-10, 10),
			Z: w.Rand.Uniform(-40, -20),
		}
		w.AICars = append(w.AICars, NewAICar(i, w.Seed, pos, DefaultMaxSpeed*factor))
	}
}

// AliveCoins returns the coins that have not been collected.
func (w *World) AliveCoins() []*Placeable {
	alive := make([]*Placeable, 0, len(w.Coins))
	for _, c := range w.Coins {
		if c.Alive {
			alive = append(alive, c)
		}
	}
	return alive
}
