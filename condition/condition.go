// Package condition builds hydrologically valid elevation surfaces: mapped
// water is burned into the raw DEM, single-cell pits and multi-cell
// depressions are filled, and flats are resolved to a unique gradient so
// that every cell drains to a boundary outlet or a mapped drainage cell.
package condition

import (
	"github.com/paulhosch/hydro-topo-features/grid"
)

// Options conditioning parameters; see hydrotopo.Config for defaults
type Options struct {
	BurnDepth      float64 // subtracted from water-masked cells
	MaxPitFillIter int     // pit-fill pass limit
	MinSlope       float64 // flat-resolution gradient increment
}

// Result a conditioned surface plus per-run diagnostics
type Result struct {
	Dem             *grid.Real  // conditioned elevation surface
	PitFillPasses   int         // pit-fill passes applied
	UnresolvedSinks []grid.Cell // interior cells left with no downhill path (non-fatal)
}

// Condition applies stream burning, pit filling, depression filling and
// flat resolution, in that order. The raw DEM is not modified. Water cells
// act as terminal drain points: they seed the depression fill and anchor
// flat outlets, keeping burned channels from being refilled where they
// reach an outlet.
func Condition(dem *grid.Real, water *grid.Mask, opt Options) (*Result, error) {
	if err := dem.GD.Compatible(water.GD); err != nil {
		return nil, err
	}

	cond := Burn(dem, water, opt.BurnDepth)
	cond, npass := FillPits(cond, water, opt.MaxPitFillIter)
	cond = FillDepressions(cond, water)
	cond = ResolveFlats(cond, water, opt.MinSlope)

	return &Result{
		Dem:             cond,
		PitFillPasses:   npass,
		UnresolvedSinks: unresolvedSinks(cond, water),
	}, nil
}

// unresolvedSinks lists interior non-water cells that still lack a
// lower-or-equal neighbour; downstream stages treat them as terminal drains.
func unresolvedSinks(dem *grid.Real, water *grid.Mask) []grid.Cell {
	gd := dem.GD
	var sinks []grid.Cell
	buf := make([]int, 0, 8)
	for cid := range dem.A {
		if dem.IsNullID(cid) || water.B[cid] || gd.OnBoundary(cid) {
			continue
		}
		z, open, edge := dem.A[cid], false, false
		for _, n := range gd.Nbr8(cid, buf) {
			if dem.IsNullID(n) {
				edge = true // drains off the valid surface
				break
			}
			if dem.A[n] <= z {
				open = true
				break
			}
		}
		if !open && !edge {
			r, c := gd.RowCol(cid)
			sinks = append(sinks, grid.Cell{Row: r, Col: c})
		}
	}
	return sinks
}
