package d8

import (
	"math"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// Net the D8 flow-direction network over a grid: every cell holds at most
// one downslope direction, forming a forest of trees rooted at sinks.
// Immutable once built.
type Net struct {
	GD *grid.Definition
	D  []Direction
}

// Flowdir assigns each non-nodata cell the direction of its steepest
// descending neighbour, drop over distance, diagonal distance Cw·√2. Ties
// break in fixed E,SE,S,SW,W,NW,N,NE order. Cells with no descending
// neighbour (boundary outlets, water terminals, unresolved sinks) get None.
func Flowdir(cond *grid.Real) *Net {
	gd := cond.GD
	t := &Net{GD: gd, D: make([]Direction, gd.Ncells())}
	diag := gd.Cw * math.Sqrt2
	for cid := range cond.A {
		if cond.IsNullID(cid) {
			continue
		}
		row, col := gd.RowCol(cid)
		z, best, bestGrad := cond.A[cid], None, 0.
		for _, d := range priority {
			dr, dc := d.Offset()
			r, c := row+dr, col+dc
			if !gd.InBounds(r, c) || cond.IsNull(r, c) {
				continue
			}
			dist := gd.Cw
			if d.Diagonal() {
				dist = diag
			}
			if grad := (z - cond.Get(r, c)) / dist; grad > bestGrad {
				best, bestGrad = d, grad
			}
		}
		t.D[cid] = best
	}
	return t
}

// Downstream the cell index cid drains to, or -1 for sinks and nodata
func (t *Net) Downstream(cid int) int {
	d := t.D[cid]
	if d == None {
		return -1
	}
	row, col := t.GD.RowCol(cid)
	dr, dc := d.Offset()
	r, c := row+dr, col+dc
	if !t.GD.InBounds(r, c) {
		return -1
	}
	return t.GD.CellID(r, c)
}

// Upslopes inverts the network: for each cell, the indices of cells
// draining directly into it.
func (t *Net) Upslopes() [][]int32 {
	us := make([][]int32, len(t.D))
	for cid := range t.D {
		if ds := t.Downstream(cid); ds >= 0 {
			us[ds] = append(us[ds], int32(cid))
		}
	}
	return us
}

// Codes the network as conventional power-of-two D8 codes, for export
func (t *Net) Codes() []uint8 {
	o := make([]uint8, len(t.D))
	for i, d := range t.D {
		o[i] = d.Code()
	}
	return o
}
