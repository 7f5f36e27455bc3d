// Package automaton implements the evolution engine: a one-dimensional
// binary cellular automaton on a ring, advanced step by step under the
// Rule 30 transition table (Wolfram code 30, 00011110).
package automaton

import (
	"github.com/mesh-physics/rule30/pkg/types"
)

// rule30 maps a three-cell neighborhood pattern (left*4 + center*2 + right)
// to the next state of the center cell. Kept as a lookup table so the rule
// stays a named constant rather than branching logic.
var rule30 = [8]uint8{
	0, // 000 -> 0
	1, // 001 -> 1
	1, // 010 -> 1
	1, // 011 -> 1
	1, // 100 -> 1
	0, // 101 -> 0
	0, // 110 -> 0
	0, // 111 -> 0
}

// ProgressFunc is called once after each completed transition with the
// 1-based step number. It is a pure observer: implementations must not
// touch the grid, and the engine's output never depends on it.
type ProgressFunc func(step int)

// Evolve produces the full space-time grid for the given parameters:
// Steps+1 rows of Width cells, row 0 the single-cell initial condition.
// It returns a parameter validation error from pkg/types on bad input.
func Evolve(p types.Params) (*types.Grid, error) {
	return EvolveWithProgress(p, nil)
}

// EvolveWithProgress is Evolve with an optional progress observer.
//
// Time evolution is inherently sequential: row t+1 is a pure function of
// row t, so the transition loop never parallelizes. Each row is written
// exactly once and never revisited.
func EvolveWithProgress(p types.Params, progress ProgressFunc) (*types.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := types.NewGrid(p.Width, p.Steps+1)
	grid.Row(0)[p.CenterPosition] = 1

	w := p.Width
	for t := 0; t < p.Steps; t++ {
		cur := grid.Row(t)
		next := grid.Row(t + 1)
		for i := 0; i < w; i++ {
			left := cur[(i-1+w)%w]
			center := cur[i]
			right := cur[(i+1)%w]
			next[i] = rule30[left<<2|center<<1|right]
		}
		if progress != nil {
			progress(t + 1)
		}
	}

	return grid, nil
}
