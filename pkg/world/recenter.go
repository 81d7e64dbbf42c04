package world

import "math"

// recenterThreshold is the absolute player z beyond which the whole
// coordinate frame is shifted back to the origin. Keeping coordinates
// small avoids float precision loss over long sessions.
const recenterThreshold = 1000.0

// MaybeRecenter shifts the entire world so the player sits at z=0 when the
// player has drifted past the threshold. Every wall, obstacle, coin, and
// AI car moves by the same offset, and the bounds shift with them, so all
// relative positions and the bounds/geometry relationship are unchanged.
// Returns the applied offset, or 0 when no recentering happened.
func (w *World) MaybeRecenter() float64 {
	if math.Abs(w.Player.Position.Z) <= recenterThreshold {
		return 0
	}

	offset := w.Player.Position.Z
	w.Player.Position.Z = 0

	for _, wall := range w.Walls {
		wall.Position.Z -= offset
	}
	for _, o := range w.Obstacles {
		o.Position.Z -= offset
	}
	for _, c := range w.Coins {
		c.Position.Z -= offset
	}
	for _, car := range w.AICars {
		car.Position.Z -= offset
	}

	w.Bounds.MinZ -= offset
	w.Bounds.MaxZ -= offset

	return offset
}
