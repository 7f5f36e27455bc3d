package types

import (
	"errors"
	"runtime"
)

// Parameter validation errors. Each one is fatal to the run that raised it;
// the caller must not retry with unchanged input.
var (
	ErrWidthTooSmall    = errors.New("width must be at least 1")
	ErrStepsNegative    = errors.New("steps must not be negative")
	ErrCenterOutOfRange = errors.New("center position must be in [0, width)")
)

// Grid validation errors, returned by the statistics stage when handed a
// malformed grid. Unreachable when the grid came from the evolution engine.
var (
	ErrEmptyGrid  = errors.New("grid has no rows")
	ErrRaggedGrid = errors.New("grid rows have inconsistent width")
)

// InitialSingle is the only supported initial condition: every cell zero
// except a single live cell at the center position.
const InitialSingle = "single"

// Params holds the inputs to a simulation run.
type Params struct {
	// Width is the number of cells in a row. The ring topology needs at
	// least 3 cells for the rule to see distinct neighbors.
	Width int

	// Steps is the number of transitions to apply. The produced grid has
	// Steps+1 rows, the initial condition included.
	Steps int

	// CenterPosition is the index of the seeded cell. Negative means
	// unset; ApplyDefaults resolves it to Width/2.
	CenterPosition int

	// Workers is the number of goroutines used by the statistics stage.
	// Zero means unset; ApplyDefaults resolves it to runtime.NumCPU().
	Workers int
}

// DefaultParams returns the standard scenario parameters.
func DefaultParams() Params {
	return Params{Width: 501, Steps: 250, CenterPosition: -1}
}

// ApplyDefaults returns a copy of p with unset fields resolved.
func (p Params) ApplyDefaults() Params {
	if p.CenterPosition < 0 {
		p.CenterPosition = p.Width / 2
	}
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	return p
}

// Validate checks that the Params are well-formed. It returns a sentinel
// error from this package on failure. Validate expects defaults to have
// been applied; an unresolved CenterPosition fails the range check.
func (p Params) Validate() error {
	if p.Width < 1 {
		return ErrWidthTooSmall
	}
	if p.Steps < 0 {
		return ErrStepsNegative
	}
	if p.CenterPosition < 0 || p.CenterPosition >= p.Width {
		return ErrCenterOutOfRange
	}
	return nil
}
