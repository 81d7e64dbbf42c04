package world

import (
	"math"
	"testing"
)

const dt = 1.0 / 60

func TestPlayerThrottleDampsTowardMax(t *testing.T) {
	v := NewPlayerCar()

	prev := v.Speed
	for i := 0; i < 600; i++ {
		v.Update(Input{Throttle: true}, dt)
		if v.Speed < prev {
			t.Fatalf("speed dropped under throttle: %v -> %v", prev, v.Speed)
		}
		if v.Speed > v.MaxSpeed {
			t.Fatalf("speed %v exceeded max %v", v.Speed, v.MaxSpeed)
		}
		prev = v.Speed
	}
	if v.Speed < v.MaxSpeed*0.9 {
		t.Fatalf("speed %v should approach max %v after 10s", v.Speed, v.MaxSpeed)
	}
}

func TestPlayerCoastDecaysToZero(t *testing.T) {
	v := NewPlayerCar()
	v.Speed = 15

	for i := 0; i < 600; i++ {
		v.Update(Input{}, dt)
	}
	if math.Abs(v.Speed) > 0.2 {
		t.Fatalf("coasting speed %v should decay toward zero", v.Speed)
	}
}

func TestPlayerBrakeReverses(t *testing.T) {
	v := NewPlayerCar()
	v.Speed = 5

	for i := 0; i < 1200; i++ {
		v.Update(Input{Brake: true}, dt)
	}
	if v.Speed > -v.MaxSpeed/2*0.9 {
		t.Fatalf("brake should settle near reverse half speed, got %v", v.Speed)
	}
	if v.Speed < -v.MaxSpeed/2 {
		t.Fatalf("reverse speed %v exceeded half max", v.Speed)
	}
}

func TestPlayerSteeringTurnsAndMoves(t *testing.T) {
	v := NewPlayerCar()
	v.Speed = 10

	v.Update(Input{Right: true}, dt)
	if v.Rotation.Y <= 0 {
		t.Fatalf("right input should increase yaw, got %v", v.Rotation.Y)
	}
	if v.Position.Z <= 0 {
		t.Fatalf("car should advance along forward vector, got %+v", v.Position)
	}
}

func TestAICarAdvancesAndWraps(t *testing.T) {
	car := NewAICar(0, 1234, Vec3{Z: -30}, 18)

	car.Update(Input{}, dt)
	if car.Position.Z <= -30 {
		t.Fatalf("AI car should drift forward, z=%v", car.Position.Z)
	}

	car.Position.Z = 25
	car.Update(Input{}, dt)
	if car.Position.Z != -20 {
		t.Fatalf("AI car past the line should wrap to -20, z=%v", car.Position.Z)
	}
}

func TestAISteeringDeterministicPerSeed(t *testing.T) {
	a := NewAICar(2, 777, Vec3{Z: -30}, 18)
	b := NewAICar(2, 777, Vec3{Z: -30}, 18)

	for i := 0; i < 300; i++ {
		a.Update(Input{}, dt)
		b.Update(Input{}, dt)
	}
	if a.Position != b.Position || a.Rotation != b.Rotation {
		t.Fatalf("same seed and index must reproduce the same path: %+v vs %+v", a.Position, b.Position)
	}
}
