package condition

import "github.com/paulhosch/hydro-topo-features/grid"

// ResolveFlats imposes a secondary gradient on contiguous equal-elevation
// regions that lack a unique descent direction. Per flat, a BFS distance
// from the region's low-adjacent edge (mapped water cells inside the flat
// count as outlets) and one from its high-adjacent edge are combined into
//
//	inc = minSlope * (2*dlo + (maxdhi - dhi))
//
// which decreases monotonically toward the flat's outlet; the doubled
// low-edge term dominates so opposing gradients cannot tie. Returns a new
// surface. Flats with no outlet at all are left untouched and surface as
// terminal sinks downstream.
func ResolveFlats(dem *grid.Real, water *grid.Mask, minSlope float64) *grid.Real {
	o := dem.Copy()
	gd := o.GD
	n := gd.Ncells()
	inRegion := make([]bool, n)
	buf := make([]int, 0, 8)

	// a cell forces flat resolution when nothing around it is lower and it
	// has no outlet of its own (void edge, grid boundary, water)
	needsResolve := func(cid int) bool {
		if o.IsNullID(cid) || water.B[cid] || gd.OnBoundary(cid) {
			return false
		}
		z := o.A[cid]
		for _, nb := range gd.Nbr8(cid, buf) {
			if o.IsNullID(nb) || o.A[nb] < z {
				return false
			}
		}
		return true
	}

	for cid := 0; cid < n; cid++ {
		if inRegion[cid] || !needsResolve(cid) {
			continue
		}
		resolveRegion(o, water, cid, inRegion, minSlope)
	}
	return o
}

// resolveRegion grades a single equal-elevation region seeded at cid
func resolveRegion(o *grid.Real, water *grid.Mask, cid int, inRegion []bool, minSlope float64) {
	gd := o.GD
	z := o.A[cid]
	buf := make([]int, 0, 8)

	// collect the connected component of elevation z
	members := []int{cid}
	inRegion[cid] = true
	for i := 0; i < len(members); i++ {
		for _, nb := range gd.Nbr8(members[i], buf) {
			if !inRegion[nb] && !o.IsNullID(nb) && o.A[nb] == z {
				inRegion[nb] = true
				members = append(members, nb)
			}
		}
	}

	// classify edges
	var low, high []int
	for _, m := range members {
		isLow, isHigh := water.B[m] || gd.OnBoundary(m), false
		for _, nb := range gd.Nbr8(m, buf) {
			if o.IsNullID(nb) {
				isLow = true
			} else if o.A[nb] < z {
				isLow = true
			} else if o.A[nb] > z {
				isHigh = true
			}
		}
		if isLow {
			low = append(low, m)
		}
		if isHigh {
			high = append(high, m)
		}
	}
	if len(low) == 0 {
		return // no outlet; terminal sink territory
	}

	dlo := regionBFS(gd, o, z, low)
	dhi := regionBFS(gd, o, z, high)
	maxdhi := 0
	for _, m := range members {
		if d, ok := dhi[m]; ok && d > maxdhi {
			maxdhi = d
		}
	}
	for _, m := range members {
		d, ok := dhi[m]
		if !ok {
			d = maxdhi // unreachable from any high edge
		}
		o.A[m] += minSlope * float64(2*dlo[m]+(maxdhi-d))
	}
}

// regionBFS breadth-first distance from srcs, constrained to cells of
// elevation z; cells unreached from srcs are absent from the result
func regionBFS(gd *grid.Definition, o *grid.Real, z float64, srcs []int) map[int]int {
	d := make(map[int]int, len(srcs))
	q := make([]int, 0, len(srcs))
	for _, s := range srcs {
		d[s] = 0
		q = append(q, s)
	}
	buf := make([]int, 0, 8)
	for len(q) > 0 {
		c := q[0]
		q = q[1:]
		for _, nb := range gd.Nbr8(c, buf) {
			if _, ok := d[nb]; ok || o.IsNullID(nb) || o.A[nb] != z {
				continue
			}
			d[nb] = d[c] + 1
			q = append(q, nb)
		}
	}
	return d
}
