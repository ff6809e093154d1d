package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulhosch/hydro-topo-features/grid"
	"github.com/paulhosch/hydro-topo-features/terrain"
)

const nodata = -9999.

func defn(t *testing.T, nr, nc int) *grid.Definition {
	t.Helper()
	gd, err := grid.NewDefinition(0., 0., 30., nr, nc, nodata)
	require.NoError(t, err)
	return gd
}

func TestSlopeFlatSurface(t *testing.T) {
	gd := defn(t, 4, 4)
	a := make([]float64, 16)
	for i := range a {
		a[i] = 250.
	}
	dem, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	s, err := terrain.Slope(dem, terrain.Degrees)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, 0., s.Get(r, c), 1e-12)
		}
	}
}

func TestSlopeRamp(t *testing.T) {
	// unit gradient eastward: dz/dx = 1 → 45° or 100%
	gd := defn(t, 5, 5)
	a := make([]float64, 25)
	for cid := range a {
		_, c := gd.RowCol(cid)
		a[cid] = float64(c) * gd.Cw
	}
	dem, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	deg, err := terrain.Slope(dem, terrain.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 45., deg.Get(2, 2), 1e-9)

	pct, err := terrain.Slope(dem, terrain.Percent)
	require.NoError(t, err)
	assert.InDelta(t, 100., pct.Get(2, 2), 1e-9)

	// edge replication halves the east-west difference at the rim
	assert.Less(t, deg.Get(2, 0), 45.)
}

func TestSlopePropagatesNodata(t *testing.T) {
	gd := defn(t, 3, 3)
	a := []float64{
		10, 10, 10,
		10, 10, nodata,
		10, 10, 10,
	}
	dem, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	s, err := terrain.Slope(dem, terrain.Degrees)
	require.NoError(t, err)
	assert.True(t, s.IsNull(1, 1), "nodata neighbour propagates")
	assert.True(t, s.IsNull(1, 2), "nodata itself stays nodata")
	assert.False(t, s.IsNull(0, 0), "cells away from the hole are computed")
}

func TestSlopeRejectsUnknownUnits(t *testing.T) {
	gd := defn(t, 2, 2)
	dem, err := grid.FromSlice(gd, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	_, err = terrain.Slope(dem, terrain.SlopeUnits("radians"))
	assert.Error(t, err)
}

func TestEDTWZeroAtWaterAndScaled(t *testing.T) {
	gd := defn(t, 5, 5)
	water := grid.NewMask(gd)
	water.Set(2, 2, true)

	e := terrain.EDTW(water, 0.)
	assert.Equal(t, 0., e.Get(2, 2))
	assert.InDelta(t, 30., e.Get(2, 3), 1e-9, "one orthogonal step")
	assert.InDelta(t, 30.*math.Sqrt2, e.Get(1, 1), 1e-9, "one diagonal step")
	// the rim is one step from off-grid, treated as water beyond the window
	assert.InDelta(t, 30., e.Get(0, 2), 1e-9)
}

func TestEDTWAllLandMonotoneFromEdge(t *testing.T) {
	gd := defn(t, 3, 3)
	e := terrain.EDTW(grid.NewMask(gd), 0.)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			assert.InDelta(t, 30., e.Get(r, c), 1e-9, "rim cell (%d,%d)", r, c)
		}
	}
	assert.InDelta(t, 60., e.Get(1, 1), 1e-9, "centre is two steps in")
}

func TestEDTWMaxDistanceCap(t *testing.T) {
	gd := defn(t, 3, 3)
	e := terrain.EDTW(grid.NewMask(gd), 40.)
	assert.InDelta(t, 40., e.Get(1, 1), 1e-9, "capped")
	assert.InDelta(t, 30., e.Get(0, 0), 1e-9, "under the cap, untouched")
}

func TestEDTWExactAcrossRows(t *testing.T) {
	// knight-move offsets from interior water: distances are true
	// euclidean, not chamfer approximations
	gd := defn(t, 8, 8)
	water := grid.NewMask(gd)
	water.Set(3, 3, true)

	e := terrain.EDTW(water, 0.)
	assert.InDelta(t, 30.*math.Hypot(1, 2), e.Get(4, 5), 1e-9)
	assert.InDelta(t, 30.*math.Hypot(2, 1), e.Get(5, 4), 1e-9)
	assert.InDelta(t, 30.*math.Sqrt2, e.Get(2, 2), 1e-9)
}
