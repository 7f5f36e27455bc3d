package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-physics/rule30/pkg/types"
)

func TestRunEndToEnd(t *testing.T) {
	s := New(types.Params{Width: 501, Steps: 250, CenterPosition: -1})
	require.Equal(t, 250, s.Params().CenterPosition)

	res, err := s.Run()
	require.NoError(t, err)

	// Row 0 holds the single seeded cell.
	row0 := res.Grid.Row(0)
	for i, c := range row0 {
		if i == 250 {
			assert.Equal(t, uint8(1), c)
		} else {
			assert.Equal(t, uint8(0), c)
		}
	}

	assert.Equal(t, 251, res.Grid.Rows())
	assert.Equal(t, 251, res.Series.Len())

	// Rule 30 from a single seed neither dies out nor fills the ring
	// within 250 steps.
	assert.Greater(t, res.Aggregates.FinalDensity, 0.0)
	assert.Less(t, res.Aggregates.FinalDensity, 1.0)

	ones := 0
	for _, c := range res.Grid.Row(250) {
		if c == 1 {
			ones++
		}
	}
	assert.InDelta(t, float64(ones)/501.0, res.Aggregates.FinalDensity, 1e-12)
}

func TestRunZeroSteps(t *testing.T) {
	res, err := New(types.Params{Width: 9, Steps: 0, CenterPosition: 4}).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, res.Grid.Rows())
	assert.Equal(t, 1, res.Series.Len())

	// With one observation the aggregates collapse to the single row.
	assert.InDelta(t, res.Series.Entropy[0], res.Aggregates.MeanEntropy, 1e-12)
	assert.InDelta(t, res.Series.Complexity[0], res.Aggregates.MeanComplexity, 1e-12)
	assert.Zero(t, res.Aggregates.StdEntropy)
	assert.Zero(t, res.Aggregates.StdComplexity)
	assert.InDelta(t, 1.0/9.0, res.Aggregates.FinalDensity, 1e-12)
}

func TestRunInvalidParams(t *testing.T) {
	res, err := New(types.Params{Width: -3, Steps: 5}).Run()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, types.ErrWidthTooSmall)
}

func TestRunProgressObserver(t *testing.T) {
	calls := 0
	res, err := New(
		types.Params{Width: 11, Steps: 6, CenterPosition: 5},
		WithProgress(func(step int) { calls++ }),
		WithWorkers(2),
	).Run()
	require.NoError(t, err)
	assert.Equal(t, 6, calls)
	assert.Equal(t, 2, res.Params.Workers)
}
