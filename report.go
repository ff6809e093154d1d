package hydrotopo

import (
	"fmt"
	"math"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/paulhosch/hydro-topo-features/grid"
)

// maxReportCells representative coordinates retained per condition
const maxReportCells = 25

// Summary distribution of the valid cells of one product grid
type Summary struct {
	N                 int
	Min, Max, Mean, Sd float64
}

// Report aggregates the non-fatal conditions and summary statistics of a
// pipeline run; returned alongside the Products, never as an error.
type Report struct {
	PitFillPasses      int
	NumUnresolvedSinks int
	UnresolvedSinks    []grid.Cell // representative sample
	NumUnreachable     int
	Unreachable        []grid.Cell // representative sample
	Stats              map[string]Summary
	HandHist           map[int]int // integer-unit HAND bins
}

func (r *Report) addSinks(cells []grid.Cell) {
	r.NumUnresolvedSinks += len(cells)
	r.UnresolvedSinks = appendCapped(r.UnresolvedSinks, cells)
}

func (r *Report) addUnreachable(cells []grid.Cell) {
	r.NumUnreachable += len(cells)
	r.Unreachable = appendCapped(r.Unreachable, cells)
}

func appendCapped(dst, src []grid.Cell) []grid.Cell {
	for _, c := range src {
		if len(dst) >= maxReportCells {
			break
		}
		dst = append(dst, c)
	}
	return dst
}

// summarize collects per-product statistics and the HAND histogram
func (r *Report) summarize(p *Products) {
	r.Stats = map[string]Summary{
		"conditioned": summary(p.Conditioned),
		"hand":        summary(p.Hand),
		"slope":       summary(p.Slope),
		"edtw":        summary(p.Edtw),
	}
	r.HandHist = make(map[int]int)
	for cid, v := range p.Hand.A {
		if p.Hand.IsNullID(cid) {
			continue
		}
		r.HandHist[int(v)]++
	}
}

func summary(g *grid.Real) Summary {
	a := make([]float64, 0, len(g.A))
	for cid, v := range g.A {
		if !g.IsNullID(cid) && !math.IsInf(v, 0) {
			a = append(a, v)
		}
	}
	if len(a) == 0 {
		return Summary{}
	}
	mean, sd := stat.MeanStdDev(a, nil)
	if len(a) == 1 {
		sd = 0.
	}
	return Summary{
		N:    len(a),
		Min:  floats.Min(a),
		Max:  floats.Max(a),
		Mean: mean,
		Sd:   sd,
	}
}

// Print writes the run report to stdout
func (r *Report) Print() {
	fmt.Printf("\n run report\n")
	fmt.Printf("  pit-fill passes: %d\n", r.PitFillPasses)
	fmt.Printf("  unresolved sinks: %s", mmio.Thousands(int64(r.NumUnresolvedSinks)))
	if len(r.UnresolvedSinks) > 0 {
		fmt.Printf("  e.g. %v", r.UnresolvedSinks)
	}
	fmt.Println()
	fmt.Printf("  cells with no drainage path: %s", mmio.Thousands(int64(r.NumUnreachable)))
	if len(r.Unreachable) > 0 {
		fmt.Printf("  e.g. %v", r.Unreachable)
	}
	fmt.Println()
	for _, nm := range []string{"conditioned", "hand", "slope", "edtw"} {
		s := r.Stats[nm]
		fmt.Printf("  %-12s n %-10s min %10.3f  max %10.3f  mean %10.3f  sd %8.3f\n",
			nm, mmio.Thousands(int64(s.N)), s.Min, s.Max, s.Mean, s.Sd)
	}
	if len(r.HandHist) > 0 {
		fmt.Printf("  top HAND bins (unit intervals):\n")
		k, v := mmaths.SortMapInt(r.HandHist, false)
		n := 0
		for i := len(k) - 1; i >= 0 && n < 5; i-- {
			fmt.Printf("   %4d+: %s cells\n", k[i], mmio.Thousands(int64(v[i])))
			n++
		}
	}
}
