package condition

import (
	"container/heap"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// frontierItem a cell on the priority-flood frontier
type frontierItem struct {
	z   float64
	cid int
}

// frontier min-heap over frontier elevations (arena+index, no pointers)
type frontier []frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].z < f[j].z }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() interface{} {
	o := *f
	n := len(o) - 1
	v := o[n]
	*f = o[:n]
	return v
}

// FillDepressions removes multi-cell enclosed basins by priority-flood:
// the frontier is seeded with every outlet (grid-boundary cells,
// nodata-adjacent cells and mapped water cells) at its current elevation;
// the lowest frontier cell is expanded first and each unvisited neighbour
// is raised to at least that elevation. Every interior cell ends with a
// monotonically non-increasing path down to some outlet. O(N log N).
func FillDepressions(dem *grid.Real, water *grid.Mask) *grid.Real {
	o := dem.Copy()
	gd := o.GD
	n := gd.Ncells()
	visited := make([]bool, n)
	buf := make([]int, 0, 8)

	f := make(frontier, 0, 2*(gd.Nr+gd.Nc))
	seed := func(cid int) {
		if !visited[cid] && !o.IsNullID(cid) {
			visited[cid] = true
			f = append(f, frontierItem{o.A[cid], cid})
		}
	}
	for cid := 0; cid < n; cid++ {
		if o.IsNullID(cid) {
			visited[cid] = true
			continue
		}
		if gd.OnBoundary(cid) || water.B[cid] {
			seed(cid)
			continue
		}
		for _, nb := range gd.Nbr8(cid, buf) {
			if o.IsNullID(nb) {
				seed(cid)
				break
			}
		}
	}
	heap.Init(&f)

	for f.Len() > 0 {
		it := heap.Pop(&f).(frontierItem)
		for _, nb := range gd.Nbr8(it.cid, buf) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			if o.A[nb] < it.z {
				o.A[nb] = it.z
			}
			heap.Push(&f, frontierItem{o.A[nb], nb})
		}
	}
	return o
}
