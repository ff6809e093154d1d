package d8

import (
	"errors"
	"fmt"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// ErrCycleDetected the flow-direction graph contains a cycle; this signals
// a conditioning invariant violation, not bad input.
var ErrCycleDetected = errors.New("d8: cycle detected in flow-direction graph")

// Accumulate computes per-cell upstream counts (self inclusive) over the
// flow network by a reverse-topological sweep: cells with no inflow drain
// first, each adding its accumulated count to its downstream target. On a
// valid conditioned surface this visits every non-nodata cell exactly once;
// cells left pending prove a cycle and abort the run.
func Accumulate(t *Net, cond *grid.Real) (*grid.Count, error) {
	gd := t.GD
	n := gd.Ncells()
	acc := grid.NewCount(gd)
	indeg := make([]int32, n)
	nv := 0
	for cid := range t.D {
		if cond.IsNullID(cid) {
			continue
		}
		nv++
		acc.A[cid] = 1
		if ds := t.Downstream(cid); ds >= 0 {
			indeg[ds]++
		}
	}

	q := make([]int, 0, n)
	for cid := range t.D {
		if !cond.IsNullID(cid) && indeg[cid] == 0 {
			q = append(q, cid)
		}
	}
	done := 0
	for len(q) > 0 {
		cid := q[len(q)-1]
		q = q[:len(q)-1]
		done++
		if ds := t.Downstream(cid); ds >= 0 {
			acc.A[ds] += acc.A[cid]
			if indeg[ds]--; indeg[ds] == 0 {
				q = append(q, ds)
			}
		}
	}
	if done != nv {
		for cid := range t.D {
			if !cond.IsNullID(cid) && indeg[cid] > 0 {
				r, c := gd.RowCol(cid)
				return nil, fmt.Errorf("%w at cell (%d,%d)", ErrCycleDetected, r, c)
			}
		}
		return nil, ErrCycleDetected
	}
	return acc, nil
}

// Sinks the indices of terminal cells (direction None, non-nodata); the sum
// of accumulation over these equals the non-nodata cell count on a valid
// network.
func (t *Net) Sinks(cond *grid.Real) []int {
	var o []int
	for cid, d := range t.D {
		if d == None && !cond.IsNullID(cid) {
			o = append(o, cid)
		}
	}
	return o
}
