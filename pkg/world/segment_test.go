package world

import (
	"math"
	"testing"
)

func TestGenerateSegmentDeterministic(t *testing.T) {
	const seed = 424242

	a := NewEmpty(seed, "medium")
	b := NewEmpty(seed, "medium")

	ra := a.GenerateSegment(0, 50)
	rb := b.GenerateSegment(0, 50)

	if len(ra.Walls) != len(rb.Walls) || len(ra.Obstacles) != len(rb.Obstacles) || len(ra.Coins) != len(rb.Coins) {
		t.Fatalf("placement counts diverged: %d/%d/%d vs %d/%d/%d",
			len(ra.Walls), len(ra.Obstacles), len(ra.Coins),
			len(rb.Walls), len(rb.Obstacles), len(rb.Coins))
	}
	for i := range ra.Obstacles {
		if ra.Obstacles[i].Position != rb.Obstacles[i].Position {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, ra.Obstacles[i].Position, rb.Obstacles[i].Position)
		}
	}
	for i := range ra.Coins {
		if ra.Coins[i].Position != rb.Coins[i].Position {
			t.Fatalf("coin %d diverged: %+v vs %+v", i, ra.Coins[i].Position, rb.Coins[i].Position)
		}
	}
	for i := range ra.Walls {
		if ra.Walls[i].Position != rb.Walls[i].Position || ra.Walls[i].Side != rb.Walls[i].Side {
			t.Fatalf("wall %d diverged", i)
		}
	}
}

func TestGenerateSegmentCounts(t *testing.T) {
	w := NewEmpty(7, "medium")
	res := w.GenerateSegment(0, 50)

	var left, right int
	for _, wall := range res.Walls {
		switch wall.Side {
		case SideLeft:
			left++
		case SideRight:
			right++
		}
	}
	if left != 25 || right != 25 {
		t.Fatalf("expected 25 wall pairs for [0,50), got %d left / %d right", left, right)
	}
	if len(res.Obstacles) < 5 {
		t.Fatalf("expected at least 5 obstacles, got %d", len(res.Obstacles))
	}
	if len(res.Coins) < 10 {
		t.Fatalf("expected at least 10 coins, got %d", len(res.Coins))
	}

	for _, o := range res.Obstacles {
		if o.Position.Z < 0 || o.Position.Z > 50 || math.Abs(o.Position.X) > TrackHalfWidth {
			t.Fatalf("obstacle out of range: %+v", o.Position)
		}
	}
	for _, c := range res.Coins {
		if c.Position.Z < 0 || c.Position.Z > 50 || math.Abs(c.Position.X) > TrackHalfWidth {
			t.Fatalf("coin out of range: %+v", c.Position)
		}
	}

	if res.WallStatus != GenOK || res.ObstacleStatus != GenOK || res.CoinStatus != GenOK {
		t.Fatalf("expected all categories OK, got %v/%v/%v", res.WallStatus, res.ObstacleStatus, res.CoinStatus)
	}
}

func TestNoDuplicateWallsAcrossSegments(t *testing.T) {
	w := NewEmpty(99, "medium")
	w.GenerateSegment(0, 50)
	w.GenerateSegment(50, 100)
	w.GenerateSegment(-50, 0)

	bySide := map[Side][]float64{}
	for _, wall := range w.Walls {
		bySide[wall.Side] = append(bySide[wall.Side], wall.Position.Z)
	}
	for side, zs := range bySide {
		for i := 0; i < len(zs); i++ {
			for j := i + 1; j < len(zs); j++ {
				if math.Abs(zs[i]-zs[j]) < 0.1 {
					t.Fatalf("duplicate wall on side %v at z=%v and z=%v", side, zs[i], zs[j])
				}
			}
		}
	}
}

func TestCoinTotalMonotonic(t *testing.T) {
	w := NewEmpty(3, "medium")

	var expected int
	prev := 0
	for _, span := range [][2]float64{{0, 50}, {50, 100}, {-50, 0}, {100, 150}} {
		res := w.GenerateSegment(span[0], span[1])
		expected += len(res.Coins)
		if w.Progress.TotalCoins < prev {
			t.Fatalf("TotalCoins decreased: %d -> %d", prev, w.Progress.TotalCoins)
		}
		prev = w.Progress.TotalCoins
	}
	if w.Progress.TotalCoins != expected {
		t.Fatalf("TotalCoins = %d, want sum of per-call coin counts %d", w.Progress.TotalCoins, expected)
	}
}

func TestGenerateSegmentRejectsBadInterval(t *testing.T) {
	w := NewEmpty(1, "medium")

	for _, span := range [][2]float64{{50, 0}, {10, 10}, {math.NaN(), 50}, {0, math.Inf(1)}} {
		res := w.GenerateSegment(span[0], span[1])
		if res.WallStatus != GenSkipped || res.ObstacleStatus != GenSkipped || res.CoinStatus != GenSkipped {
			t.Fatalf("interval [%v,%v) should skip all categories", span[0], span[1])
		}
		if len(res.Walls)+len(res.Obstacles)+len(res.Coins) != 0 {
			t.Fatalf("interval [%v,%v) produced entities", span[0], span[1])
		}
	}
	if len(w.Walls) != 0 || w.Progress.TotalCoins != 0 {
		t.Fatalf("rejected intervals mutated the world")
	}
}

func TestRegenerateTrackKeepsCoinsOut(t *testing.T) {
	w := NewEmpty(11, "medium")
	w.Bounds = Bounds{MinZ: -50, MaxZ: 100}
	res := w.RegenerateTrack()

	if len(w.Coins) != 0 {
		t.Fatalf("regeneration must not add live coins, got %d", len(w.Coins))
	}
	if w.Progress.TotalCoins != 0 {
		t.Fatalf("regeneration must not count coins, TotalCoins=%d", w.Progress.TotalCoins)
	}
	if len(res.Walls) == 0 || len(w.Walls) != len(res.Walls) {
		t.Fatalf("regeneration should materialize walls for the whole interval")
	}
}
