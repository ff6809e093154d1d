package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"

	hydrotopo "github.com/paulhosch/hydro-topo-features"
	"github.com/paulhosch/hydro-topo-features/grid"
)

func main() {

	const (
		demFP   = "M:/hydrotopo/dat/danube.dem.bil"   // row-major float64 elevations
		waterFP = "M:/hydrotopo/dat/danube.water.bil" // row-major 0/1 water mask
		outPrfx = "M:/hydrotopo/out/danube."
		eorig   = 437000.
		norig   = 5318000.
		cw      = 30.
		nr      = 3600
		nc      = 3600
		nodata  = -9999.
		utmzone = 33
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	gd, err := grid.NewDefinition(eorig, norig, cw, nr, nc, nodata)
	if err != nil {
		log.Fatalf("%v", err)
	}
	gd.Zone = utmzone

	dem := func() *grid.Real {
		a, err := mmio.ReadFloats(demFP)
		if err != nil {
			log.Fatalf(" ReadFloats failed for %s: %v", demFP, err)
		}
		g, err := grid.FromSlice(gd, a)
		if err != nil {
			log.Fatalf("%v", err)
		}
		return g
	}()
	water := func() *grid.Mask {
		a, err := mmio.ReadFloats(waterFP)
		if err != nil {
			log.Fatalf(" ReadFloats failed for %s: %v", waterFP, err)
		}
		m, err := grid.MaskFromSlice(gd, a)
		if err != nil {
			log.Fatalf("%v", err)
		}
		return m
	}()
	tt.Print("input load complete\n")

	if minlat, minlon, maxlat, maxlon, err := gd.LatLonExtent(); err == nil {
		fmt.Printf(" extent: (%.4f, %.4f) to (%.4f, %.4f)\n", minlat, minlon, maxlat, maxlon)
	}

	prods, rpt, err := hydrotopo.Run(dem, water, hydrotopo.DefaultConfig())
	if err != nil {
		log.Fatalf(" pipeline failed: %v", err)
	}
	rpt.Print()

	if err := prods.Checkandprint(outPrfx); err != nil {
		log.Fatalf("%v", err)
	}
	if err := prods.SaveGob(outPrfx + "products.gob"); err != nil {
		log.Fatalf("%v", err)
	}
}
