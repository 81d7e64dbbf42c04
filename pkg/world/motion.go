package world

// Input is the player's per-tick control state.
type Input struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
}

// AI behavior constants: opponents cruise at a fraction of their max
// speed, jitter their heading occasionally, and wrap back behind the
// start line once they cross the finish marker.
const (
	aiCruiseFraction = 0.8
	aiSteerChance    = 0.1
	aiSteerRange     = 10.0
	aiWrapAtZ        = 20.0
	aiWrapToZ        = -20.0
)

// Update advances a vehicle by dt seconds. Player cars follow the input:
// speed damps toward max under throttle, half max in reverse under brake,
// and toward zero (at triple rate) when coasting. AI cars drift forward on
// their own, steered by their per-opponent random stream.
func (v *Vehicle) Update(in Input, dt float64) {
	switch v.Kind {
	case Player:
		switch {
		case in.Throttle:
			v.Speed = Lerp(v.Speed, v.MaxSpeed, dt)
		case in.Brake:
			v.Speed = Lerp(v.Speed, -v.MaxSpeed/2, dt)
		default:
			v.Speed = Lerp(v.Speed, 0, dt*3)
		}
		if in.Left {
			v.Rotation.Y -= v.RotationSpeed * dt
		}
		if in.Right {
			v.Rotation.Y += v.RotationSpeed * dt
		}
		v.Position = v.Position.Add(v.Forward().Scale(v.Speed * dt))

	case AI:
		if v.Position.Z < aiWrapAtZ {
			v.Position = v.Position.Add(v.Forward().Scale(v.MaxSpeed * aiCruiseFraction * dt))
			if v.steer != nil && v.steer.Chance(aiSteerChance) {
				v.Rotation.Y += v.steer.Uniform(-aiSteerRange, aiSteerRange)
			}
		} else {
			v.Position.Z = aiWrapToZ
		}
	}
}
