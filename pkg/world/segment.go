package world

import (
	"log"
	"math"
)

// Track geometry constants. Walls line both edges of the track every
// WallStep units; obstacles and coins scatter across the drivable width.
const (
	WallStep       = 2.0
	WallOffsetX    = 15.0
	WallLength     = 2.0
	TrackHalfWidth = 12.0

	// wallDedupeTolerance: two walls on the same side closer than this in
	// z are duplicates; generation skips the second.
	wallDedupeTolerance = 0.1

	obstacleUnitsPer = 10.0
	coinUnitsPer     = 5.0
	minObstacles     = 5
	minCoins         = 10
)

// GenStatus reports whether a placement category completed for a segment.
// A skipped category is a gameplay defect, not a crash; the other
// categories still run so the level stays completable.
type GenStatus int

const (
	GenOK GenStatus = iota
	GenSkipped
)

// SegmentResult is the outcome of one generation call.
type SegmentResult struct {
	Walls     []*Placeable
	Obstacles []*Placeable
	Coins     []*Placeable

	WallStatus     GenStatus
	ObstacleStatus GenStatus
	CoinStatus     GenStatus
}

// GenerateSegment materializes track geometry for the half-open interval
// [startZ, endZ): wall pairs on a fixed grid, plus randomly scattered
// obstacles and coins. Every generated coin increments TotalCoins, exactly
// once per call. Results are appended to the world's live collections and
// also returned for the caller.
func (w *World) GenerateSegment(startZ, endZ float64) SegmentResult {
	return w.generateSegment(startZ, endZ, true)
}

// RegenerateTrack replays generation for the entire bounds interval. Walls
// and obstacles come back exactly as the seed dictates; coins are drawn
// from the stream but discarded, because saved games restore coins from
// their recorded positions instead.
func (w *World) RegenerateTrack() SegmentResult {
	return w.generateSegment(w.Bounds.MinZ, w.Bounds.MaxZ, false)
}

func (w *World) generateSegment(startZ, endZ float64, keepCoins bool) SegmentResult {
	var res SegmentResult

	if !validInterval(startZ, endZ) {
		log.Printf("world: rejecting segment interval [%v, %v)", startZ, endZ)
		res.WallStatus = GenSkipped
		res.ObstacleStatus = GenSkipped
		res.CoinStatus = GenSkipped
		return res
	}

	res.Walls, res.WallStatus = w.generateWalls(startZ, endZ)
	w.Walls = append(w.Walls, res.Walls...)

	// Obstacles and coins proceed even if wall generation was skipped.
	numObstacles := max(minObstacles, int((endZ-startZ)/obstacleUnitsPer))
	for i := 0; i < numObstacles; i++ {
		o := &Placeable{
			Position:   Vec3{X: w.Rand.Uniform(-TrackHalfWidth, TrackHalfWidth), Y: 1, Z: w.Rand.Uniform(startZ, endZ)},
			Kind:       KindObstacle,
			Collidable: true,
			Alive:      true,
		}
		res.Obstacles = append(res.Obstacles, o)
	}
	w.Obstacles = append(w.Obstacles, res.Obstacles...)

	numCoins := max(minCoins, int((endZ-startZ)/coinUnitsPer))
	for i := 0; i < numCoins; i++ {
		c := &Placeable{
			Position: Vec3{X: w.Rand.Uniform(-TrackHalfWidth, TrackHalfWidth), Y: 1, Z: w.Rand.Uniform(startZ, endZ)},
			Kind:     KindCoin,
			Alive:    true,
		}
		res.Coins = append(res.Coins, c)
	}
	if keepCoins {
		w.Coins = append(w.Coins, res.Coins...)
		w.Progress.TotalCoins += numCoins
	}

	return res
}

// generateWalls places one left and one right wall every WallStep units
// across [startZ, endZ), skipping a side when a wall already exists within
// the dedupe tolerance of that z. The scan is defensive: the bounds
// tracker never hands out overlapping intervals, but a duplicate wall at a
// segment boundary must never slip through regardless.
func (w *World) generateWalls(startZ, endZ float64) ([]*Placeable, GenStatus) {
	steps := int(math.Ceil((endZ - startZ) / WallStep))
	if steps <= 0 || steps > 1<<20 {
		log.Printf("world: wall generation skipped for [%v, %v)", startZ, endZ)
		return nil, GenSkipped
	}

	var walls []*Placeable
	for i := 0; i < steps; i++ {
		z := startZ + float64(i)*WallStep
		if z >= endZ {
			break
		}
		if !w.hasWallNear(z, SideLeft) {
			walls = append(walls, newWall(WallOffsetX, z, SideLeft))
		}
		if !w.hasWallNear(z, SideRight) {
			walls = append(walls, newWall(-WallOffsetX, z, SideRight))
		}
	}
	return walls, GenOK
}

func newWall(x, z float64, side Side) *Placeable {
	return &Placeable{
		Position:   Vec3{X: x, Y: 0.5, Z: z},
		Kind:       KindWall,
		Side:       side,
		Collidable: true,
		Alive:      true,
	}
}

func (w *World) hasWallNear(z float64, side Side) bool {
	for _, wall := range w.Walls {
		if wall.Side == side && math.Abs(wall.Position.Z-z) < wallDedupeTolerance {
			return true
		}
	}
	return false
}

func validInterval(startZ, endZ float64) bool {
	if math.IsNaN(startZ) || math.IsNaN(endZ) || math.IsInf(startZ, 0) || math.IsInf(endZ, 0) {
		return false
	}
	return startZ < endZ
}
