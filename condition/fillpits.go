package condition

import "github.com/paulhosch/hydro-topo-features/grid"

// FillPits raises single-cell pits (interior cells lower than all 8
// neighbours) to their minimum neighbour elevation, iterating until no pits
// remain or maxIter passes have run. Water cells are terminal drain points
// and are never raised. Returns the infilled surface and the pass count.
func FillPits(dem *grid.Real, water *grid.Mask, maxIter int) (*grid.Real, int) {
	o := dem.Copy()
	gd := o.GD
	buf := make([]int, 0, 8)
	npass := 0
	for npass < maxIter {
		nfixed := 0
		for cid := range o.A {
			if o.IsNullID(cid) || water.B[cid] || gd.OnBoundary(cid) {
				continue
			}
			z, zmin, pit := o.A[cid], 0., true
			nbrs := gd.Nbr8(cid, buf)
			if len(nbrs) < 8 {
				continue
			}
			for j, n := range nbrs {
				if o.IsNullID(n) { // adjacent to the void, drains there
					pit = false
					break
				}
				zn := o.A[n]
				if zn <= z {
					pit = false
					break
				}
				if j == 0 || zn < zmin {
					zmin = zn
				}
			}
			if pit {
				o.A[cid] = zmin
				nfixed++
			}
		}
		if nfixed == 0 {
			break
		}
		npass++
	}
	return o, npass
}
