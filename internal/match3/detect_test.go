package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Position
	}{
		{
			name: "no runs",
			rows: baseRows,
			want: []Position{},
		},
		{
			name: "horizontal three",
			rows: []string{"RRRG", "GBYB", "BYGY"},
			want: []Position{P(0, 0), P(0, 1), P(0, 2)},
		},
		{
			name: "vertical four",
			rows: []string{"RG", "RB", "RY", "RB"},
			want: []Position{P(0, 0), P(1, 0), P(2, 0), P(3, 0)},
		},
		{
			name: "pair is not a run",
			rows: []string{"RRGB", "GBYR", "BYRG"},
			want: []Position{},
		},
		{
			name: "crossing runs share a cell",
			rows: []string{"GRG", "RRR", "GRG"},
			want: []Position{P(0, 1), P(1, 0), P(1, 1), P(1, 2), P(2, 1)},
		},
		{
			name: "empty cells never match",
			rows: []string{"...R", "GBYR", "BYGR"},
			want: []Position{P(0, 3), P(1, 3), P(2, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows...)
			got := Detect(b)
			assert.Equal(t, tt.want, got.Sorted())
			assert.Equal(t, len(tt.want) > 0, HasMatch(b))
		})
	}
}

func TestRunsAreMaximal(t *testing.T) {
	b := mustBoard(t, "RRRRRG", "GBYBYB", "BYGYGY")

	runs := Runs(b)
	require.Len(t, runs, 1)
	assert.Equal(t, Run{Start: P(0, 0), Length: 5, Orientation: Horizontal, Tile: Red}, runs[0])
	assert.Len(t, runs[0].Positions(), 5)
}

func TestRunsOrderRowsThenColumns(t *testing.T) {
	b := mustBoard(t,
		"BGY",
		"BGY",
		"BRR",
		"GGG",
	)

	runs := Runs(b)
	require.Len(t, runs, 2)
	assert.Equal(t, Horizontal, runs[0].Orientation)
	assert.Equal(t, P(3, 0), runs[0].Start)
	assert.Equal(t, Vertical, runs[1].Orientation)
	assert.Equal(t, P(0, 0), runs[1].Start)
}
