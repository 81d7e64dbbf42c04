package save

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/golangdaddy/autorennen/pkg/world"
)

// buildPlayedWorld sets up a world that has been played for a bit: track
// extended in both directions, a few coins collected, cars moved.
func buildPlayedWorld(t *testing.T) *world.World {
	t.Helper()

	w := world.New(31337, "hard")
	w.ExtendBounds(10)
	w.ExtendBounds(-10)

	coins := w.AliveCoins()
	if len(coins) < 3 {
		t.Fatalf("expected coins to collect, got %d", len(coins))
	}
	for _, c := range coins[:3] {
		w.CollectCoin(c)
	}

	w.Player.Position = world.Vec3{X: 2.5, Y: 0, Z: 73.25}
	w.Player.Rotation = world.Vec3{Y: 145}
	w.Player.Speed = 12.75
	for i, car := range w.AICars {
		car.Position.Z += float64(i) * 3.5
		car.Rotation.Y = float64(i * 20)
		car.Speed = 14
	}
	return w
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "savegame.json")

	w := buildPlayedWorld(t)
	if err := Snapshot(w).Write(path); err != nil {
		t.Fatalf("writing save: %v", err)
	}

	rec, err := Read(path)
	if err != nil {
		t.Fatalf("reading save: %v", err)
	}
	got := Restore(rec)

	if got.Seed != w.Seed {
		t.Fatalf("seed = %d, want %d", got.Seed, w.Seed)
	}
	if got.Bounds != w.Bounds {
		t.Fatalf("bounds = %+v, want %+v", got.Bounds, w.Bounds)
	}
	if got.Progress != w.Progress {
		t.Fatalf("progression = %+v, want %+v", got.Progress, w.Progress)
	}
	if got.Difficulty != w.Difficulty {
		t.Fatalf("difficulty = %q, want %q", got.Difficulty, w.Difficulty)
	}

	if got.Player.Position != w.Player.Position || got.Player.Rotation != w.Player.Rotation ||
		got.Player.Speed != w.Player.Speed || got.Player.MaxSpeed != w.Player.MaxSpeed ||
		got.Player.RotationSpeed != w.Player.RotationSpeed {
		t.Fatalf("player kinematics diverged: %+v vs %+v", got.Player, w.Player)
	}

	if len(got.AICars) != len(w.AICars) {
		t.Fatalf("AI car count = %d, want %d", len(got.AICars), len(w.AICars))
	}
	for i := range w.AICars {
		if got.AICars[i].Position != w.AICars[i].Position ||
			got.AICars[i].Speed != w.AICars[i].Speed ||
			got.AICars[i].MaxSpeed != w.AICars[i].MaxSpeed {
			t.Fatalf("AI car %d diverged", i)
		}
	}

	wantCoins := coinSet(w)
	gotCoins := coinSet(got)
	if len(wantCoins) != len(gotCoins) {
		t.Fatalf("alive coin count = %d, want %d", len(gotCoins), len(wantCoins))
	}
	for i := range wantCoins {
		if wantCoins[i] != gotCoins[i] {
			t.Fatalf("coin %d = %+v, want %+v", i, gotCoins[i], wantCoins[i])
		}
	}
}

func TestRestoreRegeneratesWallsOnTheGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "savegame.json")

	w := buildPlayedWorld(t)
	if err := Snapshot(w).Write(path); err != nil {
		t.Fatalf("writing save: %v", err)
	}
	rec, err := Read(path)
	if err != nil {
		t.Fatalf("reading save: %v", err)
	}
	got := Restore(rec)

	// Walls sit on the fixed grid, so the regenerated set must match the
	// live set exactly.
	want := wallKeys(w)
	have := wallKeys(got)
	if len(want) != len(have) {
		t.Fatalf("wall count = %d, want %d", len(have), len(want))
	}
	for i := range want {
		if want[i] != have[i] {
			t.Fatalf("wall %d = %+v, want %+v", i, have[i], want[i])
		}
	}
}

func TestRestoreIsDeterministic(t *testing.T) {
	w := buildPlayedWorld(t)
	rec := Snapshot(w)

	a := Restore(rec)
	b := Restore(rec)

	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i].Position != b.Obstacles[i].Position {
			t.Fatalf("two restores of one record must agree; obstacle %d: %+v vs %+v",
				i, a.Obstacles[i].Position, b.Obstacles[i].Position)
		}
	}
	if len(a.Walls) != len(b.Walls) {
		t.Fatalf("wall counts differ: %d vs %d", len(a.Walls), len(b.Walls))
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "savegame.json"))
	if !errors.Is(err, ErrNoSave) {
		t.Fatalf("missing file should yield ErrNoSave, got %v", err)
	}
}

func TestReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatalf("corrupt save should fail to parse")
	}
	if errors.Is(err, ErrNoSave) {
		t.Fatalf("corrupt save is a parse error, not ErrNoSave")
	}
}

func coinSet(w *world.World) [][3]float64 {
	var coins [][3]float64
	for _, c := range w.AliveCoins() {
		coins = append(coins, [3]float64{c.Position.X, c.Position.Y, c.Position.Z})
	}
	sort.Slice(coins, func(i, j int) bool {
		if coins[i][2] != coins[j][2] {
			return coins[i][2] < coins[j][2]
		}
		return coins[i][0] < coins[j][0]
	})
	return coins
}

type wallKey struct {
	side world.Side
	z    float64
}

func wallKeys(w *world.World) []wallKey {
	keys := make([]wallKey, 0, len(w.Walls))
	for _, wall := range w.Walls {
		keys = append(keys, wallKey{wall.Side, roundTo(wall.Position.Z, 1e-9)})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].side != keys[j].side {
			return keys[i].side < keys[j].side
		}
		return keys[i].z < keys[j].z
	})
	return keys
}

func roundTo(v, unit float64) float64 {
	return math.Round(v/unit) * unit
}
