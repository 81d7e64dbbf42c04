package game

import (
	"math"

	"github.com/golangdaddy/autorennen/pkg/world"
)

// Collision extents. Cars are 1.5 x 1 x 3 unit boxes; walls are thin long
// slabs; obstacles are 2-unit cubes; coins are small spheres. Boxes are
// axis-aligned — at these sizes the error from ignoring car yaw is smaller
// than a wheel.
var (
	carHalf      = world.Vec3{X: 0.75, Y: 0.5, Z: 1.5}
	wallHalf     = world.Vec3{X: 0.25, Y: 0.5, Z: 1.0}
	obstacleHalf = world.Vec3{X: 1.0, Y: 1.0, Z: 1.0}
)

// coinRadius is the pickup radius. Coins render at 0.8 units but collect
// generously so driving over one always counts.
const coinRadius = 0.8

// boxesOverlap reports whether two axis-aligned boxes intersect.
func boxesOverlap(aPos, aHalf, bPos, bHalf world.Vec3) bool {
	return math.Abs(aPos.X-bPos.X) < aHalf.X+bHalf.X &&
		math.Abs(aPos.Y-bPos.Y) < aHalf.Y+bHalf.Y &&
		math.Abs(aPos.Z-bPos.Z) < aHalf.Z+bHalf.Z
}

// carHitsBox tests a car against a wall or obstacle.
func carHitsBox(v *world.Vehicle, p *world.Placeable) bool {
	half := obstacleHalf
	if p.Kind == world.KindWall {
		half = wallHalf
	}
	return boxesOverlap(v.Position, carHalf, p.Position, half)
}

// carsCollide tests two cars against each other.
func carsCollide(a, b *world.Vehicle) bool {
	return boxesOverlap(a.Position, carHalf, b.Position, carHalf)
}

// carHitsCoin tests the car's box against a coin's sphere: clamp the coin
// center onto the box, then compare the remaining distance to the radius.
func carHitsCoin(v *world.Vehicle, c *world.Placeable) bool {
	cx := world.Clamp(c.Position.X, v.Position.X-carHalf.X, v.Position.X+carHalf.X)
	cy := world.Clamp(c.Position.Y, v.Position.Y-carHalf.Y, v.Position.Y+carHalf.Y)
	cz := world.Clamp(c.Position.Z, v.Position.Z-carHalf.Z, v.Position.Z+carHalf.Z)

	dx := c.Position.X - cx
	dy := c.Position.Y - cy
	dz := c.Position.Z - cz
	return dx*dx+dy*dy+dz*dz < coinRadius*coinRadius
}
