package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-physics/rule30/pkg/automaton"
	"github.com/mesh-physics/rule30/pkg/types"
)

// gridFromRows builds a grid with literal row contents.
func gridFromRows(t *testing.T, rows [][]uint8) *types.Grid {
	t.Helper()
	g := types.NewGrid(len(rows[0]), len(rows))
	for i, r := range rows {
		copy(g.Row(i), r)
	}
	return g
}

func TestRowEntropy(t *testing.T) {
	tests := []struct {
		name string
		row  []uint8
		want float64
	}{
		{name: "all zero", row: []uint8{0, 0, 0, 0}, want: 0},
		{name: "all one", row: []uint8{1, 1, 1, 1}, want: 0},
		{name: "even split", row: []uint8{0, 1, 0, 1}, want: 1},
		{
			name: "quarter split",
			row:  []uint8{1, 0, 0, 0},
			want: -0.25*math.Log2(0.25) - 0.75*math.Log2(0.75),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rowEntropy(tt.row), 1e-12)
		})
	}
}

func TestRowComplexity(t *testing.T) {
	tests := []struct {
		name string
		row  []uint8
		want float64
	}{
		{name: "uniform zero", row: []uint8{0, 0, 0, 0}, want: 0},
		{name: "uniform one", row: []uint8{1, 1, 1, 1}, want: 0},
		{name: "alternating", row: []uint8{0, 1, 0, 1}, want: 1},
		// Two interior transitions plus no wraparound transition.
		{name: "single block", row: []uint8{0, 1, 1, 0}, want: 0.5},
		// One interior transition plus the wraparound pair.
		{name: "wraparound counted once", row: []uint8{1, 0, 0, 0}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rowComplexity(tt.row), 1e-12)
		})
	}
}

func TestComputeBoundsOnEvolvedGrid(t *testing.T) {
	grid, err := automaton.Evolve(types.Params{Width: 101, Steps: 80, CenterPosition: 50})
	require.NoError(t, err)

	s, err := Compute(grid, 4)
	require.NoError(t, err)
	require.Equal(t, grid.Rows(), s.Len())

	for i := 0; i < s.Len(); i++ {
		assert.GreaterOrEqual(t, s.Entropy[i], 0.0)
		assert.LessOrEqual(t, s.Entropy[i], 1.0)
		assert.GreaterOrEqual(t, s.Complexity[i], 0.0)
		assert.LessOrEqual(t, s.Complexity[i], 1.0)
	}
}

func TestComputeWorkerCountInvariance(t *testing.T) {
	grid, err := automaton.Evolve(types.Params{Width: 63, Steps: 50, CenterPosition: 31})
	require.NoError(t, err)

	sequential, err := Compute(grid, 1)
	require.NoError(t, err)

	// The partition scheme must not affect the index-aligned output.
	for _, workers := range []int{2, 3, 7, 16, 200} {
		parallel, err := Compute(grid, workers)
		require.NoError(t, err)
		assert.Equal(t, sequential.Entropy, parallel.Entropy, "workers=%d", workers)
		assert.Equal(t, sequential.Complexity, parallel.Complexity, "workers=%d", workers)
	}
}

func TestComputeMalformedGrid(t *testing.T) {
	var nilGrid *types.Grid
	_, err := Compute(nilGrid, 1)
	assert.ErrorIs(t, err, types.ErrEmptyGrid)

	_, err = Compute(types.NewGrid(5, 0), 1)
	assert.ErrorIs(t, err, types.ErrEmptyGrid)
}

func TestAggregate(t *testing.T) {
	g := gridFromRows(t, [][]uint8{
		{0, 0, 1, 0},
		{0, 1, 1, 1},
		{1, 1, 0, 0},
	})

	s, err := Compute(g, 2)
	require.NoError(t, err)

	agg := Aggregate(g, s)

	meanE := (s.Entropy[0] + s.Entropy[1] + s.Entropy[2]) / 3
	meanC := (s.Complexity[0] + s.Complexity[1] + s.Complexity[2]) / 3
	assert.InDelta(t, meanE, agg.MeanEntropy, 1e-12)
	assert.InDelta(t, meanC, agg.MeanComplexity, 1e-12)

	// Population standard deviation: divide by n, not n-1.
	var varE float64
	for _, e := range s.Entropy {
		varE += (e - meanE) * (e - meanE)
	}
	assert.InDelta(t, math.Sqrt(varE/3), agg.StdEntropy, 1e-12)

	// Final density comes from the last row only.
	assert.InDelta(t, 0.5, agg.FinalDensity, 1e-12)
}

func TestAggregateSingleRow(t *testing.T) {
	g := gridFromRows(t, [][]uint8{{0, 0, 0, 1, 0, 0, 0}})

	s, err := Compute(g, 1)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	agg := Aggregate(g, s)
	assert.InDelta(t, s.Entropy[0], agg.MeanEntropy, 1e-12)
	assert.InDelta(t, s.Complexity[0], agg.MeanComplexity, 1e-12)
	assert.Zero(t, agg.StdEntropy)
	assert.Zero(t, agg.StdComplexity)
	assert.InDelta(t, 1.0/7.0, agg.FinalDensity, 1e-12)
}
