package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(b *Board, src IntNSource) (*Resolver, *ScoreAccumulator, *recorder) {
	rec := &recorder{}
	score := &ScoreAccumulator{}
	return NewResolver(b, NewTileFactory(src, DefaultPalette), score, rec.listen), score, rec
}

func TestFallKeepsColumnOrder(t *testing.T) {
	b := mustBoard(t,
		"RGB",
		".YB",
		"P.O",
		"..G",
		"Y.C",
	)
	r, _, rec := newTestResolver(b, script())
	r.busy, r.phase = true, PhaseFalling

	require.True(t, r.Advance())
	assert.Equal(t, PhaseRefilling, r.Phase())

	want := mustBoard(t,
		"..B",
		"..B",
		"R.O",
		"PGG",
		"YYC",
	)
	assert.True(t, want.Equal(b), "got\n%s", b)

	require.Len(t, rec.events, 1)
	assert.Equal(t, GravityApplied{Moves: []Move{
		{From: P(2, 0), To: P(3, 0), Tile: Purple},
		{From: P(0, 0), To: P(2, 0), Tile: Red},
		{From: P(1, 1), To: P(4, 1), Tile: Yellow},
		{From: P(0, 1), To: P(3, 1), Tile: Green},
	}}, rec.events[0])
}

func TestRefillColumnMajorTopDown(t *testing.T) {
	b := mustBoard(t,
		"..B",
		"..B",
		"R.O",
		"PGG",
		"YYC",
	)
	r, _, rec := newTestResolver(b, script(0, 1, 2, 3, 4))
	r.busy, r.phase = true, PhaseRefilling

	require.True(t, r.Advance())
	assert.Equal(t, PhaseRechecking, r.Phase())
	assert.True(t, b.Full())

	require.Len(t, rec.events, 1)
	assert.Equal(t, Refilled{
		Positions: []Position{P(0, 0), P(1, 0), P(0, 1), P(1, 1), P(2, 1)},
		Tiles:     []Tile{Red, Green, Blue, Yellow, Purple},
	}, rec.events[0])
}

func TestRemoveScoresDistinctPositions(t *testing.T) {
	b := mustBoard(t, "GRG", "RRR", "GRG")
	r, score, rec := newTestResolver(b, script())

	r.Commit(Detect(b))
	require.True(t, r.Busy())
	require.True(t, r.Advance())

	assert.Equal(t, 50, score.Total())
	require.Len(t, rec.events, 1)
	ev := rec.events[0].(TilesRemoved)
	assert.Equal(t, 50, ev.ScoreDelta)
	assert.Equal(t, 1, ev.Cascade)
	assert.Len(t, ev.Positions, 5)
	for _, p := range ev.Positions {
		assert.Equal(t, Empty, b.Get(p))
	}
}

func TestRecheckOnStableBoardGoesIdle(t *testing.T) {
	b := mustBoard(t, baseRows...)
	r, score, rec := newTestResolver(b, script())

	r.Recheck()
	assert.True(t, r.Busy())
	assert.False(t, r.Advance())

	assert.False(t, r.Busy())
	assert.Equal(t, PhaseIdle, r.Phase())
	assert.Zero(t, score.Total())
	assert.Equal(t, []Event{Stable{}}, rec.events)
}

func TestAdvanceWhenIdleIsNoop(t *testing.T) {
	b := mustBoard(t, baseRows...)
	r, _, rec := newTestResolver(b, script())

	assert.False(t, r.Advance())
	assert.Zero(t, r.RunToIdle())
	assert.Empty(t, rec.events)
}

func TestCommitEmptyMatchSetPanics(t *testing.T) {
	b := mustBoard(t, baseRows...)
	r, _, _ := newTestResolver(b, script())

	assert.Panics(t, func() { r.Commit(MatchSet{}) })
}

func TestRunToIdleCountsPhases(t *testing.T) {
	// Removing the red row lets nothing fall; a single refill closes the sequence.
	b := mustBoard(t, "RRR", "GBY", "BYG")
	r, score, rec := newTestResolver(b, script(3, 4, 5))

	r.Commit(Detect(b))
	assert.Equal(t, 4, r.RunToIdle())
	assert.Equal(t, 30, score.Total())
	assert.Equal(t, []EventKind{KindTilesRemoved, KindGravityApplied, KindRefilled, KindStable}, rec.kinds())
	assert.Equal(t, "YPO\nGBY\nBYG", b.String())
	assert.Equal(t, Stable{TotalScoreDelta: 30, CascadeCount: 1}, rec.events[3])
}
