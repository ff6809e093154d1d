package hand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulhosch/hydro-topo-features/d8"
	"github.com/paulhosch/hydro-topo-features/grid"
	"github.com/paulhosch/hydro-topo-features/hand"
)

const nodata = -9999.

func defn(t *testing.T, nr, nc int) *grid.Definition {
	t.Helper()
	gd, err := grid.NewDefinition(0., 0., 30., nr, nc, nodata)
	require.NoError(t, err)
	return gd
}

func TestHandAlongRamp(t *testing.T) {
	// raw elevation climbs east off a river in the west column: HAND is the
	// raw rise above the seed each cell drains to
	gd := defn(t, 3, 5)
	a := make([]float64, 15)
	for cid := range a {
		_, c := gd.RowCol(cid)
		a[cid] = 2. * float64(c)
	}
	raw, err := grid.FromSlice(gd, a)
	require.NoError(t, err)
	water := grid.NewMask(gd)
	for r := 0; r < 3; r++ {
		water.Set(r, 0, true)
	}

	net := d8.Flowdir(raw) // monotone surface needs no conditioning
	res, err := hand.Hand(raw, net, water)
	require.NoError(t, err)
	require.Empty(t, res.Unreachable)

	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			assert.InDelta(t, 2.*float64(c), res.Hand.Get(r, c), 1e-9, "cell (%d,%d)", r, c)
		}
	}
}

func TestHandZeroAtDrainage(t *testing.T) {
	gd := defn(t, 3, 3)
	a := []float64{
		12, 11, 12,
		11, 10, 11,
		12, 11, 12,
	}
	raw, err := grid.FromSlice(gd, a)
	require.NoError(t, err)
	water := grid.NewMask(gd)
	water.Set(1, 1, true)

	net := d8.Flowdir(raw)
	res, err := hand.Hand(raw, net, water)
	require.NoError(t, err)

	assert.Equal(t, 0., res.Hand.Get(1, 1))
	for _, nb := range gd.Neighbors8(1, 1) {
		h := res.Hand.Get(nb.Row, nb.Col)
		assert.GreaterOrEqual(t, h, 0.)
	}
}

func TestHandClampsNegativeRise(t *testing.T) {
	// a cell draining into higher-seeded water (possible after burning)
	// clamps to zero rather than going negative
	gd := defn(t, 1, 3)
	raw, err := grid.FromSlice(gd, []float64{5., 8., 4.})
	require.NoError(t, err)
	water := grid.NewMask(gd)
	water.Set(0, 1, true)

	net := &d8.Net{GD: gd, D: []d8.Direction{d8.E, d8.None, d8.W}}
	res, err := hand.Hand(raw, net, water)
	require.NoError(t, err)
	assert.Equal(t, 0., res.Hand.Get(0, 0), "raw rise is negative, clamped")
	assert.Equal(t, 0., res.Hand.Get(0, 1))
}

func TestHandReportsUnreachableCells(t *testing.T) {
	// two basins, only one carries water: the dry basin's cells get nodata
	// and are reported, not fatal
	gd := defn(t, 1, 5)
	raw, err := grid.FromSlice(gd, []float64{3., 5., 9., 6., 3.})
	require.NoError(t, err)
	water := grid.NewMask(gd)
	water.Set(0, 0, true)

	net := d8.Flowdir(raw)
	res, err := hand.Hand(raw, net, water)
	require.NoError(t, err)

	assert.False(t, res.Hand.IsNull(0, 1))
	assert.True(t, res.Hand.IsNull(0, 3), "drains away from water")
	assert.True(t, res.Hand.IsNull(0, 4))
	assert.Len(t, res.Unreachable, 2)
}

func TestHandMismatchedMask(t *testing.T) {
	raw, err := grid.FromSlice(defn(t, 1, 2), []float64{1., 2.})
	require.NoError(t, err)
	water := grid.NewMask(defn(t, 2, 2))
	net := &d8.Net{GD: raw.GD, D: []d8.Direction{d8.None, d8.None}}

	_, err = hand.Hand(raw, net, water)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
}
