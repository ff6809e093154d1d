package d8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulhosch/hydro-topo-features/d8"
	"github.com/paulhosch/hydro-topo-features/grid"
)

const nodata = -9999.

func defn(t *testing.T, nr, nc int) *grid.Definition {
	t.Helper()
	gd, err := grid.NewDefinition(0., 0., 30., nr, nc, nodata)
	require.NoError(t, err)
	return gd
}

func TestFlowdirTiltedPlane(t *testing.T) {
	// elevation drops eastward: every cell but the east rim flows E
	gd := defn(t, 3, 4)
	a := make([]float64, 12)
	for cid := range a {
		_, c := gd.RowCol(cid)
		a[cid] = float64(10 - c)
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	net := d8.Flowdir(cond)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, d8.E, net.D[gd.CellID(r, c)], "cell (%d,%d)", r, c)
		}
		assert.Equal(t, d8.None, net.D[gd.CellID(r, 3)], "east rim is the outlet")
	}
}

func TestFlowdirSteepestOverDistance(t *testing.T) {
	// drop of 1 orthogonally beats a drop of 1.2 diagonally:
	// 1/cw > 1.2/(cw·√2)
	gd := defn(t, 3, 3)
	a := []float64{
		10, 10, 10,
		10, 10, 9,
		10, 10, 8.8,
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	net := d8.Flowdir(cond)
	assert.Equal(t, d8.E, net.D[gd.CellID(1, 1)])
}

func TestFlowdirTiePriority(t *testing.T) {
	// equal drops east and south resolve east (fixed priority order)
	gd := defn(t, 3, 3)
	a := []float64{
		10, 10, 10,
		10, 10, 9,
		10, 9, 10,
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	net := d8.Flowdir(cond)
	assert.Equal(t, d8.E, net.D[gd.CellID(1, 1)])
}

func TestFlowdirSkipsNodata(t *testing.T) {
	gd := defn(t, 3, 3)
	a := []float64{
		10, 10, 10,
		10, 10, nodata,
		10, 10, 9,
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	net := d8.Flowdir(cond)
	assert.Equal(t, d8.SE, net.D[gd.CellID(1, 1)], "nodata neighbour is never a target")
	assert.Equal(t, d8.None, net.D[gd.CellID(1, 2)])
	assert.Equal(t, -1, net.Downstream(gd.CellID(1, 2)))
}

func TestDownstreamAndUpslopes(t *testing.T) {
	gd := defn(t, 3, 4)
	a := make([]float64, 12)
	for cid := range a {
		_, c := gd.RowCol(cid)
		a[cid] = float64(10 - c)
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)

	net := d8.Flowdir(cond)
	assert.Equal(t, gd.CellID(1, 2), net.Downstream(gd.CellID(1, 1)))

	us := net.Upslopes()
	assert.Equal(t, []int32{int32(gd.CellID(1, 1))}, us[gd.CellID(1, 2)])
	assert.Empty(t, us[gd.CellID(1, 0)], "west rim has no inflow")
}

func TestAccumulateConservation(t *testing.T) {
	gd := defn(t, 3, 4)
	a := make([]float64, 12)
	for cid := range a {
		_, c := gd.RowCol(cid)
		a[cid] = float64(10 - c)
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)
	net := d8.Flowdir(cond)

	acc, err := d8.Accumulate(net, cond)
	require.NoError(t, err)

	// accumulation grows along each row: 1, 2, 3, 4
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, uint64(c+1), acc.Get(r, c))
		}
	}

	// conservation: each cell equals 1 plus the sum over its inflows
	us := net.Upslopes()
	for cid := range acc.A {
		want := uint64(1)
		for _, up := range us[cid] {
			want += acc.A[up]
		}
		assert.Equal(t, want, acc.A[cid])
	}

	// the sinks drain everything
	var total uint64
	for _, s := range net.Sinks(cond) {
		total += acc.A[s]
	}
	assert.Equal(t, uint64(12), total)
}

func TestAccumulateNodataExcluded(t *testing.T) {
	gd := defn(t, 3, 3)
	a := []float64{
		10, 9, 8,
		10, nodata, 8,
		10, 9, 8,
	}
	cond, err := grid.FromSlice(gd, a)
	require.NoError(t, err)
	net := d8.Flowdir(cond)

	acc, err := d8.Accumulate(net, cond)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), acc.Get(1, 1), "nodata cells carry no count")

	var total uint64
	for _, s := range net.Sinks(cond) {
		total += acc.A[s]
	}
	assert.Equal(t, uint64(8), total)
}

func TestAccumulateDetectsCycle(t *testing.T) {
	// hand-built two-cell cycle: a conditioning invariant violation
	gd := defn(t, 1, 2)
	cond, err := grid.FromSlice(gd, []float64{5., 5.})
	require.NoError(t, err)

	net := &d8.Net{GD: gd, D: []d8.Direction{d8.E, d8.W}}
	_, err = d8.Accumulate(net, cond)
	assert.ErrorIs(t, err, d8.ErrCycleDetected)
}

func TestDirectionCodes(t *testing.T) {
	assert.Equal(t, uint8(0), d8.None.Code())
	assert.Equal(t, uint8(1), d8.E.Code())
	assert.Equal(t, uint8(4), d8.S.Code())
	assert.Equal(t, uint8(64), d8.N.Code())
	assert.Equal(t, uint8(128), d8.NE.Code())
	assert.True(t, d8.SW.Diagonal())
	assert.False(t, d8.S.Diagonal())
	assert.Equal(t, "SE", d8.SE.String())
}
