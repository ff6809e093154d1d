package hydrotopo

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/paulhosch/hydro-topo-features/d8"
	"github.com/paulhosch/hydro-topo-features/grid"
)

// Products the derived grids of a pipeline run, all sharing the input
// definition. Each is produced once by its owning stage and never mutated
// afterward.
type Products struct {
	GD          *grid.Definition
	Conditioned *grid.Real  // stream-burned, filled, flat-resolved surface
	Flowdir     *d8.Net     // D8 directions
	Accum       *grid.Count // upstream cell counts, self inclusive
	Hand        *grid.Real  // height above nearest drainage, raw elevations
	Slope       *grid.Real  // Horn gradient
	Edtw        *grid.Real  // euclidean distance to water
}

// SaveGob persists the full product set
func (p *Products) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" products.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return fmt.Errorf(" products.SaveGob %v", err)
	}
	return f.Close()
}

// LoadGobProducts reloads a saved product set
func LoadGobProducts(fp string) (*Products, error) {
	var p Products
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
