// Package terrain holds the grid products independent of the drainage
// chain: local-gradient slope and the Euclidean distance-to-water
// transform.
package terrain

import (
	"fmt"
	"math"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// SlopeUnits output unit for the slope surface
type SlopeUnits string

const (
	Degrees SlopeUnits = "degrees"
	Percent SlopeUnits = "percent"
)

// Valid reports whether u names a supported unit
func (u SlopeUnits) Valid() bool { return u == Degrees || u == Percent }

// Slope computes per-cell gradient by Horn's method: weighted central
// differences over the 3×3 neighbourhood, magnitude atan(√(dzdx²+dzdy²)).
// Out-of-bounds taps replicate the centre cell; cells adjacent to nodata
// propagate nodata.
func Slope(dem *grid.Real, units SlopeUnits) (*grid.Real, error) {
	if !units.Valid() {
		return nil, fmt.Errorf("terrain.Slope: unknown units %q", units)
	}
	gd := dem.GD
	o := grid.NewReal(gd)
	cw := gd.Cw
	for row := 0; row < gd.Nr; row++ {
		for col := 0; col < gd.Nc; col++ {
			if dem.IsNull(row, col) {
				continue
			}
			zc := dem.Get(row, col)
			var w [3][3]float64
			null := false
			for i := -1; i <= 1 && !null; i++ {
				for j := -1; j <= 1; j++ {
					r, c := row+i, col+j
					if !gd.InBounds(r, c) {
						w[i+1][j+1] = zc // edge replication
						continue
					}
					if dem.IsNull(r, c) {
						null = true
						break
					}
					w[i+1][j+1] = dem.Get(r, c)
				}
			}
			if null {
				continue // nodata propagates
			}
			dzdx := ((w[0][2] + 2*w[1][2] + w[2][2]) - (w[0][0] + 2*w[1][0] + w[2][0])) / (8. * cw)
			dzdy := ((w[2][0] + 2*w[2][1] + w[2][2]) - (w[0][0] + 2*w[0][1] + w[0][2])) / (8. * cw)
			s := math.Atan(math.Sqrt(dzdx*dzdx + dzdy*dzdy))
			if units == Degrees {
				s *= 180. / math.Pi
			} else {
				s = math.Tan(s) * 100.
			}
			o.Set(row, col, s)
		}
	}
	return o, nil
}
