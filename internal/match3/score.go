package match3

// PointsPerTile is the flat credit for each distinct removed position.
// Run length does not matter, and a cell shared by two runs scores once.
const PointsPerTile = 10

// ScoreAccumulator keeps the running score.
type ScoreAccumulator struct {
	total int
}

// ScoreFor converts a removed-tile count into a score delta.
func (s *ScoreAccumulator) ScoreFor(removed int) int {
	return removed * PointsPerTile
}

// Accumulate adds delta to the running total.
func (s *ScoreAccumulator) Accumulate(delta int) {
	s.total += delta
}

// Total returns the running total.
func (s *ScoreAccumulator) Total() int {
	return s.total
}

// Reset sets the total back to zero.
func (s *ScoreAccumulator) Reset() {
	s.total = 0
}
