package types

// Series holds the per-timestep metrics, index-aligned with the grid rows.
type Series struct {
	Entropy    []float64
	Complexity []float64
}

// Len returns the number of timesteps the series covers.
func (s Series) Len() int { return len(s.Entropy) }

// Aggregates holds the scalar reductions of a metrics series. Standard
// deviations use the population convention (divide by n, not n-1).
type Aggregates struct {
	MeanEntropy    float64
	StdEntropy     float64
	MeanComplexity float64
	StdComplexity  float64

	// FinalDensity is the fraction of live cells in the last grid row.
	FinalDensity float64
}

// Result is the complete output of one run: the state history, the derived
// metrics, their reductions, and the parameters that produced them. It is
// the only object handed to the persistence and rendering layers.
type Result struct {
	Grid       *Grid
	Series     Series
	Aggregates Aggregates
	Params     Params
}
