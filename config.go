package hydrotopo

import (
	"errors"
	"fmt"

	"github.com/paulhosch/hydro-topo-features/terrain"
)

// ErrInvalidConfiguration a Config field is out of range
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config pipeline parameters; a single immutable value passed explicitly
// into each run, never global state.
type Config struct {
	BurnDepth      float64            // subtracted from water-masked elevations (physical units)
	MaxPitFillIter int                // pit-fill pass limit, guards pathological inputs
	MinSlope       float64            // flat-resolution gradient increment
	SlopeUnits     terrain.SlopeUnits // degrees or percent
	MaxDistance    float64            // EDTW cap; 0 = uncapped
	Quiet          bool               // suppress step printing and the progress bar
}

// DefaultConfig the defaults of the reference pipeline: 20-unit burn,
// degree slopes, uncapped EDTW.
func DefaultConfig() Config {
	return Config{
		BurnDepth:      20.,
		MaxPitFillIter: 100,
		MinSlope:       1e-5,
		SlopeUnits:     terrain.Degrees,
		MaxDistance:    0.,
	}
}

// Valid checks the configuration before any computation
func (c Config) Valid() error {
	if c.BurnDepth < 0. {
		return fmt.Errorf("%w: negative burn depth %f", ErrInvalidConfiguration, c.BurnDepth)
	}
	if c.MaxPitFillIter <= 0 {
		return fmt.Errorf("%w: max pit-fill iterations %d", ErrInvalidConfiguration, c.MaxPitFillIter)
	}
	if c.MinSlope <= 0. {
		return fmt.Errorf("%w: min slope %f", ErrInvalidConfiguration, c.MinSlope)
	}
	if !c.SlopeUnits.Valid() {
		return fmt.Errorf("%w: slope units %q", ErrInvalidConfiguration, c.SlopeUnits)
	}
	if c.MaxDistance < 0. {
		return fmt.Errorf("%w: max distance %f", ErrInvalidConfiguration, c.MaxDistance)
	}
	return nil
}
