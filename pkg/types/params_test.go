package types

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "default scenario",
			params: Params{Width: 501, Steps: 250, CenterPosition: 250},
		},
		{
			name:   "minimal grid",
			params: Params{Width: 1, Steps: 0, CenterPosition: 0},
		},
		{
			name:   "zero steps",
			params: Params{Width: 7, Steps: 0, CenterPosition: 3},
		},
		{
			name:    "zero width rejected",
			params:  Params{Width: 0, Steps: 10, CenterPosition: 0},
			wantErr: ErrWidthTooSmall,
		},
		{
			name:    "negative width rejected",
			params:  Params{Width: -5, Steps: 10, CenterPosition: 0},
			wantErr: ErrWidthTooSmall,
		},
		{
			name:    "negative steps rejected",
			params:  Params{Width: 7, Steps: -1, CenterPosition: 3},
			wantErr: ErrStepsNegative,
		},
		{
			name:    "center at width rejected",
			params:  Params{Width: 7, Steps: 1, CenterPosition: 7},
			wantErr: ErrCenterOutOfRange,
		},
		{
			name:    "unresolved center rejected",
			params:  Params{Width: 7, Steps: 1, CenterPosition: -1},
			wantErr: ErrCenterOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParamsApplyDefaults(t *testing.T) {
	p := Params{Width: 501, Steps: 250, CenterPosition: -1}.ApplyDefaults()
	assert.Equal(t, 250, p.CenterPosition)
	assert.Equal(t, runtime.NumCPU(), p.Workers)

	// Explicit values survive default resolution.
	p = Params{Width: 10, Steps: 5, CenterPosition: 2, Workers: 3}.ApplyDefaults()
	assert.Equal(t, 2, p.CenterPosition)
	assert.Equal(t, 3, p.Workers)
}

func TestGridValidate(t *testing.T) {
	g := NewGrid(7, 3)
	assert.NoError(t, g.Validate())
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 3, g.Rows())
	assert.Len(t, g.Cells(), 21)

	var nilGrid *Grid
	assert.ErrorIs(t, nilGrid.Validate(), ErrEmptyGrid)
	assert.ErrorIs(t, NewGrid(7, 0).Validate(), ErrEmptyGrid)
}

func TestGridRowIsBackedByCells(t *testing.T) {
	g := NewGrid(4, 2)
	g.Row(1)[2] = 1
	assert.Equal(t, uint8(1), g.Cells()[6])
}
