package terrain

import (
	"math"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// EDTW computes the exact Euclidean distance from every cell to the nearest
// water-masked cell, in physical units (cell width scaled), via the
// Felzenszwalb–Huttenlocher two-pass transform. The raster edge is treated
// as water beyond the grid, so distances stay bounded by the analysis
// window. maxDist > 0 caps the result; water cells are exactly 0.
func EDTW(water *grid.Mask, maxDist float64) *grid.Real {
	gd := water.GD
	nr, nc := gd.Nr, gd.Nc
	o := grid.NewReal(gd)

	// squared distances, initialized to the source indicator
	d := make([]float64, nr*nc)
	for i, b := range water.B {
		if b {
			d[i] = 0.
		} else {
			d[i] = math.Inf(1)
		}
	}

	// column pass
	f := make([]float64, nr)
	dd := make([]float64, nr)
	v := make([]int, nr)
	z := make([]float64, nr+1)
	for c := 0; c < nc; c++ {
		for r := 0; r < nr; r++ {
			f[r] = d[r*nc+c]
		}
		edt1d(f, dd, v, z)
		for r := 0; r < nr; r++ {
			d[r*nc+c] = dd[r]
		}
	}

	// row pass
	f = make([]float64, nc)
	dd = make([]float64, nc)
	v = make([]int, nc)
	z = make([]float64, nc+1)
	for r := 0; r < nr; r++ {
		copy(f, d[r*nc:(r+1)*nc])
		edt1d(f, dd, v, z)
		copy(d[r*nc:(r+1)*nc], dd)
	}

	for cid := range o.A {
		r, c := gd.RowCol(cid)
		dist := math.Sqrt(d[cid])
		if edge := float64(borderDist(gd, r, c)); edge < dist {
			dist = edge // off-grid treated as water
		}
		dist *= gd.Cw
		if maxDist > 0. && dist > maxDist {
			dist = maxDist
		}
		o.A[cid] = dist
	}
	return o
}

// borderDist cell steps from (r,c) to the nearest point beyond the grid
func borderDist(gd *grid.Definition, r, c int) int {
	m := r + 1
	if v := gd.Nr - r; v < m {
		m = v
	}
	if v := c + 1; v < m {
		m = v
	}
	if v := gd.Nc - c; v < m {
		m = v
	}
	return m
}

// edt1d the 1D squared-distance transform of sampled function f; dd
// receives the result, v and z are scratch (len(f) and len(f)+1).
// Infinite samples carry no parabola; an all-infinite row stays infinite.
func edt1d(f, dd []float64, v []int, z []float64) {
	n := len(f)
	k := -1
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		if k < 0 {
			k = 0
			v[0] = q
			z[0] = math.Inf(-1)
			z[1] = math.Inf(1)
			continue
		}
		var s float64
		for {
			p := v[k]
			s = ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*(q-p))
			if s > z[k] {
				break
			}
			k-- // z[0] = -inf guarantees k never drops below 0
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}
	if k < 0 {
		for q := 0; q < n; q++ {
			dd[q] = math.Inf(1)
		}
		return
	}
	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		dd[q] = dq*dq + f[v[k]]
	}
}
