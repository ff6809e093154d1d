// Package hand computes Height Above Nearest Drainage: the vertical
// distance from each cell to the drainage cell it reaches by following D8
// flow directions downstream.
package hand

import (
	"github.com/paulhosch/hydro-topo-features/d8"
	"github.com/paulhosch/hydro-topo-features/grid"
)

// Result the HAND surface plus cells with no flow path to any drainage
type Result struct {
	Hand        *grid.Real  // nodata where no drainage is reachable
	Unreachable []grid.Cell // isolated-basin cells (non-fatal)
}

// Hand expands breadth-first from every drainage cell (HAND 0) over the
// inverse flow adjacency, assigning each reached cell its raw elevation
// minus the raw elevation of its seed drainage cell, clamped to ≥0. Raw
// (unburned) elevations are used on both sides so stream burning never
// leaks into the output. Cells that drain nowhere near mapped water keep
// the nodata sentinel and are reported.
func Hand(raw *grid.Real, net *d8.Net, water *grid.Mask) (*Result, error) {
	if err := raw.GD.Compatible(water.GD); err != nil {
		return nil, err
	}
	gd := raw.GD
	n := gd.Ncells()
	out := grid.NewReal(gd)
	us := net.Upslopes()

	seedz := make([]float64, n)
	visited := make([]bool, n)
	q := make([]int32, 0, water.CountTrue())
	for cid := 0; cid < n; cid++ {
		if water.B[cid] && !raw.IsNullID(cid) {
			visited[cid] = true
			seedz[cid] = raw.A[cid]
			out.A[cid] = 0.
			q = append(q, int32(cid))
		}
	}

	for len(q) > 0 {
		cid := q[0]
		q = q[1:]
		for _, up := range us[cid] {
			if visited[up] || raw.IsNullID(int(up)) {
				continue
			}
			visited[up] = true
			seedz[up] = seedz[cid]
			if h := raw.A[up] - seedz[up]; h > 0. {
				out.A[up] = h
			} else {
				out.A[up] = 0.
			}
			q = append(q, up)
		}
	}

	var unreached []grid.Cell
	for cid := 0; cid < n; cid++ {
		if !visited[cid] && !raw.IsNullID(cid) {
			r, c := gd.RowCol(cid)
			unreached = append(unreached, grid.Cell{Row: r, Col: c})
		}
	}
	return &Result{Hand: out, Unreachable: unreached}, nil
}
