package types

// Grid stores the full space-time history of a run as single-bit cell
// values in row-major order: row t is the state after t transitions.
// A Grid is written once by the evolution engine and read-only afterwards.
type Grid struct {
	width int
	rows  int
	data  []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(width, rows int) *Grid {
	return &Grid{width: width, rows: rows, data: make([]uint8, width*rows)}
}

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Rows returns the number of timesteps stored, the initial row included.
func (g *Grid) Rows() int { return g.rows }

// Row returns the cells of timestep t as a subslice of the backing array.
// Callers must treat the returned slice as read-only.
func (g *Grid) Row(t int) []uint8 {
	return g.data[t*g.width : (t+1)*g.width]
}

// Cells exposes the backing slice in row-major order, for writers that
// stream the whole grid out.
func (g *Grid) Cells() []uint8 { return g.data }

// Validate checks the structural invariants the statistics stage relies
// on: at least one row, and a backing array that covers rows*width cells
// exactly. It returns ErrEmptyGrid or ErrRaggedGrid on failure.
func (g *Grid) Validate() error {
	if g == nil || g.rows == 0 || g.width == 0 {
		return ErrEmptyGrid
	}
	if len(g.data) != g.rows*g.width {
		return ErrRaggedGrid
	}
	return nil
}
