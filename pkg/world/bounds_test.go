package world

import "testing"

func TestExtendBoundsForward(t *testing.T) {
	w := NewEmpty(5, "medium")

	results := w.ExtendBounds(10)
	if len(results) != 1 {
		t.Fatalf("expected one segment generated, got %d", len(results))
	}
	if w.Bounds.MaxZ != 100 || w.Bounds.MinZ != -50 {
		t.Fatalf("bounds = [%v, %v), want [-50, 100)", w.Bounds.MinZ, w.Bounds.MaxZ)
	}

	// Player still comfortably inside: nothing to do.
	if got := w.ExtendBounds(10); len(got) != 0 {
		t.Fatalf("no extension expected, got %d segments", len(got))
	}
}

func TestExtendBoundsBackward(t *testing.T) {
	w := NewEmpty(5, "medium")

	results := w.ExtendBounds(-10)
	if len(results) != 1 {
		t.Fatalf("expected one segment generated, got %d", len(results))
	}
	if w.Bounds.MinZ != -100 || w.Bounds.MaxZ != 50 {
		t.Fatalf("bounds = [%v, %v), want [-100, 50)", w.Bounds.MinZ, w.Bounds.MaxZ)
	}
}

func TestExtendBoundsBothEdges(t *testing.T) {
	w := NewEmpty(5, "medium")
	w.Bounds = Bounds{MinZ: -20, MaxZ: 20}

	results := w.ExtendBounds(0)
	if len(results) != 2 {
		t.Fatalf("both edges should extend, got %d segments", len(results))
	}
	if w.Bounds.MinZ != -70 || w.Bounds.MaxZ != 70 {
		t.Fatalf("bounds = [%v, %v), want [-70, 70)", w.Bounds.MinZ, w.Bounds.MaxZ)
	}
}

func TestBoundsMonotonicUnderGrowth(t *testing.T) {
	w := NewEmpty(17, "medium")

	playerZ := 0.0
	prev := w.Bounds
	for tick := 0; tick < 200; tick++ {
		playerZ += 3.5
		w.ExtendBounds(playerZ)
		if w.Bounds.MaxZ < prev.MaxZ {
			t.Fatalf("MaxZ shrank: %v -> %v", prev.MaxZ, w.Bounds.MaxZ)
		}
		if w.Bounds.MinZ > prev.MinZ {
			t.Fatalf("MinZ grew: %v -> %v", prev.MinZ, w.Bounds.MinZ)
		}
		if playerZ > w.Bounds.MaxZ || playerZ < w.Bounds.MinZ {
			t.Fatalf("player at z=%v escaped bounds [%v, %v)", playerZ, w.Bounds.MinZ, w.Bounds.MaxZ)
		}
		prev = w.Bounds
	}
}
