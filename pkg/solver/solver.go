// Package solver wires the evolution engine and the statistics engine
// into a single run and assembles the Result handed to output writers.
package solver

import (
	"github.com/mesh-physics/rule30/pkg/automaton"
	"github.com/mesh-physics/rule30/pkg/metrics"
	"github.com/mesh-physics/rule30/pkg/types"
)

// Option configures a Solver.
type Option func(*Solver)

// WithProgress installs a per-step observer forwarded to the evolution
// engine. The observer never influences computed values.
func WithProgress(fn automaton.ProgressFunc) Option {
	return func(s *Solver) { s.progress = fn }
}

// WithWorkers overrides the worker count used by the statistics stage.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.params.Workers = n }
}

// Solver runs the full pipeline for one set of parameters.
type Solver struct {
	params   types.Params
	progress automaton.ProgressFunc
}

// New creates a Solver for the given parameters, resolving defaults for
// any unset fields before the options are applied.
func New(p types.Params, opts ...Option) *Solver {
	s := &Solver{params: p.ApplyDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Params returns the resolved parameters the solver will run with.
func (s *Solver) Params() types.Params { return s.params }

// Run evolves the grid, computes the metrics series, and reduces the
// aggregates. Any failure aborts the run; a partial Result is never
// returned.
func (s *Solver) Run() (*types.Result, error) {
	grid, err := automaton.EvolveWithProgress(s.params, s.progress)
	if err != nil {
		return nil, err
	}

	series, err := metrics.Compute(grid, s.params.Workers)
	if err != nil {
		return nil, err
	}

	return &types.Result{
		Grid:       grid,
		Series:     series,
		Aggregates: metrics.Aggregate(grid, series),
		Params:     s.params,
	}, nil
}
