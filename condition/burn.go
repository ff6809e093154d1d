package condition

import "github.com/paulhosch/hydro-topo-features/grid"

// Burn lowers every water-masked cell by depth, creating an artificial
// gradient pulling flow toward mapped water. Returns a new surface; cells
// outside the mask and nodata cells pass through untouched.
func Burn(dem *grid.Real, water *grid.Mask, depth float64) *grid.Real {
	o := dem.Copy()
	if depth == 0. {
		return o
	}
	for cid, b := range water.B {
		if b && !o.IsNullID(cid) {
			o.A[cid] -= depth
		}
	}
	return o
}
