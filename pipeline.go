// Package hydrotopo derives hydro-topological terrain descriptors from a
// raw elevation raster and a co-registered water mask: a conditioned
// elevation surface, D8 flow directions and accumulation, Height Above
// Nearest Drainage, slope and Euclidean distance to water, for use in
// flood-susceptibility mapping. Raster file I/O, reprojection and
// rendering are the caller's concern; everything here is in-memory.
package hydrotopo

import (
	"fmt"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"

	"github.com/paulhosch/hydro-topo-features/condition"
	"github.com/paulhosch/hydro-topo-features/d8"
	"github.com/paulhosch/hydro-topo-features/grid"
	"github.com/paulhosch/hydro-topo-features/hand"
	"github.com/paulhosch/hydro-topo-features/terrain"
)

const nstage = 6 // burn+fill+resolve, flowdir, accumulation, HAND, slope, EDTW

// Run executes the full pipeline. The drainage chain
// (condition→flowdir→accumulate→HAND) runs concurrently with the slope and
// EDTW branches; the input grids are shared read-only and never modified.
// Fatal errors (mis-registered inputs, bad configuration, a routing cycle)
// abort the run; per-cell conditions are aggregated into the Report.
func Run(dem *grid.Real, water *grid.Mask, cfg Config) (*Products, *Report, error) {
	if err := cfg.Valid(); err != nil {
		return nil, nil, err
	}
	if err := dem.GD.Compatible(water.GD); err != nil {
		return nil, nil, fmt.Errorf("pipeline inputs not co-registered: %w", err)
	}

	tt := mmio.NewTimer()
	var bar *uiprogress.Bar
	if !cfg.Quiet {
		fmt.Printf(" hydro-topo pipeline: %dx%d cells (%s valid)\n", dem.GD.Nr, dem.GD.Nc, mmio.Thousands(int64(dem.Nvalid())))
		uiprogress.Start()
		bar = uiprogress.AddBar(nstage).AppendCompleted().PrependElapsed()
	}
	step := func() {
		if bar != nil {
			bar.Incr()
		}
	}

	p := &Products{GD: dem.GD}
	var rpt Report
	var wg sync.WaitGroup
	var chainErr, slopeErr error

	// drainage chain
	wg.Add(1)
	go func() {
		defer wg.Done()
		cres, err := condition.Condition(dem, water, condition.Options{
			BurnDepth:      cfg.BurnDepth,
			MaxPitFillIter: cfg.MaxPitFillIter,
			MinSlope:       cfg.MinSlope,
		})
		if err != nil {
			chainErr = fmt.Errorf("conditioning: %w", err)
			return
		}
		p.Conditioned = cres.Dem
		rpt.PitFillPasses = cres.PitFillPasses
		rpt.addSinks(cres.UnresolvedSinks)
		step()

		p.Flowdir = d8.Flowdir(p.Conditioned)
		step()

		acc, err := d8.Accumulate(p.Flowdir, p.Conditioned)
		if err != nil {
			chainErr = fmt.Errorf("accumulation: %w", err)
			return
		}
		p.Accum = acc
		step()

		hres, err := hand.Hand(dem, p.Flowdir, water)
		if err != nil {
			chainErr = fmt.Errorf("hand: %w", err)
			return
		}
		p.Hand = hres.Hand
		rpt.addUnreachable(hres.Unreachable)
		step()
	}()

	// independent branches
	wg.Add(2)
	go func() {
		defer wg.Done()
		s, err := terrain.Slope(dem, cfg.SlopeUnits)
		if err != nil {
			slopeErr = fmt.Errorf("slope: %w", err)
			return
		}
		p.Slope = s
		step()
	}()
	go func() {
		defer wg.Done()
		p.Edtw = terrain.EDTW(water, cfg.MaxDistance)
		step()
	}()

	wg.Wait()
	if !cfg.Quiet {
		uiprogress.Stop()
	}
	if chainErr != nil {
		return nil, nil, chainErr
	}
	if slopeErr != nil {
		return nil, nil, slopeErr
	}

	rpt.summarize(p)
	if !cfg.Quiet {
		tt.Lap(" pipeline complete")
	}
	return p, &rpt, nil
}
