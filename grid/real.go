package grid

import (
	"fmt"
	"math"
)

// Real a dense float64 raster over a Definition. Backing array is row-major.
type Real struct {
	GD *Definition
	A  []float64
}

// NewReal constructor; cells initialized to the nodata sentinel
func NewReal(gd *Definition) *Real {
	a := make([]float64, gd.Ncells())
	if gd.NoData != 0. {
		for i := range a {
			a[i] = gd.NoData
		}
	}
	return &Real{GD: gd, A: a}
}

// FromSlice builds a Real from a row-major slice
func FromSlice(gd *Definition, a []float64) (*Real, error) {
	if len(a) != gd.Ncells() {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrDimensionMismatch, len(a), gd.Nr, gd.Nc)
	}
	o := make([]float64, len(a))
	copy(o, a)
	return &Real{GD: gd, A: o}, nil
}

// Get bounds-checked accessor
func (g *Real) Get(row, col int) float64 {
	if !g.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Real.Get out of bounds (%d,%d)", row, col))
	}
	return g.A[row*g.GD.Nc+col]
}

// Set bounds-checked mutator
func (g *Real) Set(row, col int, v float64) {
	if !g.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Real.Set out of bounds (%d,%d)", row, col))
	}
	g.A[row*g.GD.Nc+col] = v
}

// IsNull reports whether (row,col) holds the nodata sentinel
func (g *Real) IsNull(row, col int) bool {
	return g.isNull(g.Get(row, col))
}

// IsNullID nodata test by cell index
func (g *Real) IsNullID(cid int) bool { return g.isNull(g.A[cid]) }

func (g *Real) isNull(v float64) bool {
	return v == g.GD.NoData || math.IsNaN(v)
}

// Copy deep copy
func (g *Real) Copy() *Real {
	a := make([]float64, len(g.A))
	copy(a, g.A)
	return &Real{GD: g.GD, A: a}
}

// Nvalid count of non-nodata cells
func (g *Real) Nvalid() int {
	n := 0
	for _, v := range g.A {
		if !g.isNull(v) {
			n++
		}
	}
	return n
}
