package grid

import "fmt"

// Count a dense uint64 raster over a Definition (flow accumulation counts);
// zero marks cells excluded from the computation.
type Count struct {
	GD *Definition
	A  []uint64
}

// NewCount constructor, all zero
func NewCount(gd *Definition) *Count {
	return &Count{GD: gd, A: make([]uint64, gd.Ncells())}
}

// Get bounds-checked accessor
func (g *Count) Get(row, col int) uint64 {
	if !g.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Count.Get out of bounds (%d,%d)", row, col))
	}
	return g.A[row*g.GD.Nc+col]
}

// Set bounds-checked mutator
func (g *Count) Set(row, col int, v uint64) {
	if !g.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Count.Set out of bounds (%d,%d)", row, col))
	}
	g.A[row*g.GD.Nc+col] = v
}

// Sum total of all counts
func (g *Count) Sum() uint64 {
	var s uint64
	for _, v := range g.A {
		s += v
	}
	return s
}
