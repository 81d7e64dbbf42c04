package world

// PlaceableKind identifies a non-vehicle world object.
type PlaceableKind int

const (
	KindWall PlaceableKind = iota
	KindObstacle
	KindCoin
)

// Side marks which edge of the track a wall sits on.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Placeable is any non-vehicle object on the track. Walls and obstacles
// are regenerated from the world seed; coins carry state (collected or
// not) and are persisted individually.
type Placeable struct {
	Position   Vec3
	Kind       PlaceableKind
	Side       Side
	Collidable bool
	Alive      bool
}

// VehicleKind distinguishes the player car from AI opponents.
type VehicleKind int

const (
	Player VehicleKind = iota
	AI
)

// Default vehicle parameters, matching the car prefab.
const (
	DefaultMaxSpeed      = 20.0
	DefaultRotationSpeed = 60.0 // degrees per second
)

// Vehicle is a car in the world. Player and AI cars share the same shape;
// behavior branches on Kind in Update.
type Vehicle struct {
	Kind          VehicleKind
	Position      Vec3
	Rotation      Vec3 // Euler degrees; Y is the yaw that steering changes
	Speed         float64
	MaxSpeed      float64
	RotationSpeed float64

	// PaletteIndex selects the body color (0 = player red, 1+ = AI colors).
	PaletteIndex int

	// steer is the AI steering stream, derived from seed + opponent index
	// so each opponent behaves deterministically yet distinctly. Nil for
	// the player.
	steer *Rand
}

// NewPlayerCar creates the player vehicle at the origin.
func NewPlayerCar() *Vehicle {
	return &Vehicle{
		Kind:          Player,
		Speed:         0,
		MaxSpeed:      DefaultMaxSpeed,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// NewAICar creates an AI opponent. The steering stream is seeded with
// worldSeed + index so opponents stay reproducible per world.
func NewAICar(index int, worldSeed int64, position Vec3, maxSpeed float64) *Vehicle {
	return &Vehicle{
		Kind:          AI,
		Position:      position,
		Speed:         0,
		MaxSpeed:      maxSpeed,
		RotationSpeed: DefaultRotationSpeed,
		PaletteIndex:  index + 1,
		steer:         NewRand(worldSeed + int64(index)),
	}
}

// Forward returns the vehicle's unit forward vector.
func (v *Vehicle) Forward() Vec3 {
	return Forward(v.Rotation.Y)
}
