package world

// The tracker keeps at least lookAhead units of materialized track between
// the player and each edge, extending by segmentSpan when the margin
// shrinks. The margin always exceeds the distance a car can cover between
// two checks at max speed, so the player never reaches ungenerated space.
const (
	lookAhead   = 50.0
	segmentSpan = 50.0
)

// ExtendBounds checks the player's z against both edges and generates new
// segments where the margin has worn thin. The two checks are independent
// and order-insensitive; both may fire on the same tick. Returns the
// results of any generation performed.
func (w *World) ExtendBounds(playerZ float64) []SegmentResult {
	var results []SegmentResult

	if playerZ > w.Bounds.MaxZ-lookAhead {
		start := w.Bounds.MaxZ
		w.Bounds.MaxZ += segmentSpan
		results = append(results, w.GenerateSegment(start, w.Bounds.MaxZ))
	}

	if playerZ < w.Bounds.MinZ+lookAhead {
		end := w.Bounds.MinZ
		w.Bounds.MinZ -= segmentSpan
		results = append(results, w.GenerateSegment(w.Bounds.MinZ, end))
	}

	return results
}
