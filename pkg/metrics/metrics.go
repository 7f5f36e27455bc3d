// Package metrics implements the statistics engine: per-timestep Shannon
// entropy and local complexity over a completed grid, plus their scalar
// reductions. Rows are independent, so the per-row pass fans out across a
// caller-controlled number of workers.
package metrics

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/mesh-physics/rule30/pkg/types"
)

// rowEntropy returns the binary Shannon entropy, in bits, of the cell
// value distribution within a row. A degenerate (all-0 or all-1) row has
// entropy 0 by the usual 0*log(0)=0 convention.
func rowEntropy(row []uint8) float64 {
	ones := 0
	for _, c := range row {
		if c == 1 {
			ones++
		}
	}
	zeros := len(row) - ones
	if ones == 0 || zeros == 0 {
		return 0
	}

	p1 := float64(ones) / float64(len(row))
	p0 := float64(zeros) / float64(len(row))
	return -p1*math.Log2(p1) - p0*math.Log2(p0)
}

// rowComplexity returns the fraction of adjacent cell pairs that differ.
// The ring's wraparound pair (last, first) counts exactly once.
func rowComplexity(row []uint8) float64 {
	w := len(row)
	transitions := 0
	for i := 0; i < w-1; i++ {
		if row[i] != row[i+1] {
			transitions++
		}
	}
	if w > 1 && row[w-1] != row[0] {
		transitions++
	}
	return float64(transitions) / float64(w)
}

// Compute derives the entropy and complexity series for every row of g,
// index-aligned with the grid's time axis. Rows are partitioned into
// contiguous disjoint ranges across workers goroutines (workers <= 0 means
// runtime.NumCPU()); each worker writes only its own output slots, so the
// partition itself guarantees exclusivity and no locking is needed.
//
// Compute returns ErrEmptyGrid or ErrRaggedGrid for a malformed grid.
func Compute(g *types.Grid, workers int) (types.Series, error) {
	if err := g.Validate(); err != nil {
		return types.Series{}, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := g.Rows()
	if workers > rows {
		workers = rows
	}

	s := types.Series{
		Entropy:    make([]float64, rows),
		Complexity: make([]float64, rows),
	}

	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for t := lo; t < hi; t++ {
				row := g.Row(t)
				s.Entropy[t] = rowEntropy(row)
				s.Complexity[t] = rowComplexity(row)
			}
		}(start, end)
	}
	wg.Wait()

	return s, nil
}

// Aggregate reduces a metrics series to its scalar summary. Standard
// deviations use the population convention (divide by n), matching the
// "statistics of all observed timesteps" reading of the series.
// FinalDensity comes from the last grid row alone.
func Aggregate(g *types.Grid, s types.Series) types.Aggregates {
	last := g.Row(g.Rows() - 1)
	ones := 0
	for _, c := range last {
		if c == 1 {
			ones++
		}
	}

	return types.Aggregates{
		MeanEntropy:    stat.Mean(s.Entropy, nil),
		StdEntropy:     stat.PopStdDev(s.Entropy, nil),
		MeanComplexity: stat.Mean(s.Complexity, nil),
		StdComplexity:  stat.PopStdDev(s.Complexity, nil),
		FinalDensity:   float64(ones) / float64(g.Width()),
	}
}
