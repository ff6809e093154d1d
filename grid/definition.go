package grid

import (
	"errors"
	"fmt"

	"github.com/im7mortal/UTM"
)

// ErrDimensionMismatch paired grids are not co-registered
var ErrDimensionMismatch = errors.New("grid dimension mismatch")

// Cell a row-column coordinate pair, used for reporting
type Cell struct{ Row, Col int }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Definition a uniform (square-celled) grid definition: upper-left origin,
// cell width, dimensions and the nodata sentinel. Rotation unsupported.
type Definition struct {
	Eorig, Norig float64 // upper-left corner
	Cw           float64 // cell width
	NoData       float64
	Nr, Nc       int
	Zone         int // UTM zone (0: unreferenced)
}

// NewDefinition constructor
func NewDefinition(eorig, norig, cw float64, nr, nc int, nodata float64) (*Definition, error) {
	if nr <= 0 || nc <= 0 {
		return nil, fmt.Errorf("grid.NewDefinition: invalid dimensions %d x %d", nr, nc)
	}
	if cw <= 0. {
		return nil, fmt.Errorf("grid.NewDefinition: invalid cell width %f", cw)
	}
	return &Definition{Eorig: eorig, Norig: norig, Cw: cw, Nr: nr, Nc: nc, NoData: nodata}, nil
}

// Ncells number of cells in the definition
func (gd *Definition) Ncells() int { return gd.Nr * gd.Nc }

// CellArea area of a single cell
func (gd *Definition) CellArea() float64 { return gd.Cw * gd.Cw }

// InBounds reports whether (row,col) lies within the grid
func (gd *Definition) InBounds(row, col int) bool {
	return row >= 0 && row < gd.Nr && col >= 0 && col < gd.Nc
}

// CellID converts (row,col) to a cell index
func (gd *Definition) CellID(row, col int) int { return row*gd.Nc + col }

// RowCol converts a cell index to (row,col)
func (gd *Definition) RowCol(cid int) (row, col int) { return cid / gd.Nc, cid % gd.Nc }

// Coord cell-centre coordinate
func (gd *Definition) Coord(cid int) (x, y float64) {
	r, c := gd.RowCol(cid)
	x = gd.Eorig + (float64(c)+.5)*gd.Cw
	y = gd.Norig - (float64(r)+.5)*gd.Cw
	return
}

// Extent grid extents (minx, miny, maxx, maxy)
func (gd *Definition) Extent() (minx, miny, maxx, maxy float64) {
	minx = gd.Eorig
	maxy = gd.Norig
	maxx = gd.Eorig + float64(gd.Nc)*gd.Cw
	miny = gd.Norig - float64(gd.Nr)*gd.Cw
	return
}

// LatLonExtent grid extents converted to geographic coordinates; requires a
// UTM zone be set on the definition (northern hemisphere assumed).
func (gd *Definition) LatLonExtent() (minlat, minlon, maxlat, maxlon float64, err error) {
	if gd.Zone <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("grid.LatLonExtent: no UTM zone set")
	}
	minx, miny, maxx, maxy := gd.Extent()
	minlat, minlon, err = UTM.ToLatLon(minx, miny, gd.Zone, "", true)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("grid.LatLonExtent: %v -- (x,y)=(%f, %f)", err, minx, miny)
	}
	maxlat, maxlon, err = UTM.ToLatLon(maxx, maxy, gd.Zone, "", true)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("grid.LatLonExtent: %v -- (x,y)=(%f, %f)", err, maxx, maxy)
	}
	return
}

// Compatible reports whether two definitions are co-registered; paired
// input rasters (DEM and water mask) must agree before any computation.
func (gd *Definition) Compatible(other *Definition) error {
	if other == nil {
		return fmt.Errorf("%w: nil definition", ErrDimensionMismatch)
	}
	if gd.Nr != other.Nr || gd.Nc != other.Nc {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, gd.Nr, gd.Nc, other.Nr, other.Nc)
	}
	if gd.Cw != other.Cw {
		return fmt.Errorf("%w: cell widths %f vs %f", ErrDimensionMismatch, gd.Cw, other.Cw)
	}
	if gd.Eorig != other.Eorig || gd.Norig != other.Norig {
		return fmt.Errorf("%w: origins (%f,%f) vs (%f,%f)", ErrDimensionMismatch, gd.Eorig, gd.Norig, other.Eorig, other.Norig)
	}
	return nil
}

// offset8 fixed 8-neighbour order; also the D8 tie-break priority
var offset8 = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}} // E,SE,S,SW,W,NW,N,NE

// Neighbors8 returns the in-bounds 8-neighbourhood of (row,col), fewer at
// edges, ordered E,SE,S,SW,W,NW,N,NE.
func (gd *Definition) Neighbors8(row, col int) []Cell {
	o := make([]Cell, 0, 8)
	for _, d := range offset8 {
		r, c := row+d[0], col+d[1]
		if gd.InBounds(r, c) {
			o = append(o, Cell{r, c})
		}
	}
	return o
}

// Nbr8 appends the in-bounds 8-neighbour indices of cid to buf and returns
// it; allocation-free when buf has capacity 8. Same ordering as Neighbors8.
func (gd *Definition) Nbr8(cid int, buf []int) []int {
	row, col := gd.RowCol(cid)
	buf = buf[:0]
	for _, d := range offset8 {
		r, c := row+d[0], col+d[1]
		if gd.InBounds(r, c) {
			buf = append(buf, r*gd.Nc+c)
		}
	}
	return buf
}

// OnBoundary reports whether cid lies on the outer ring of the grid
func (gd *Definition) OnBoundary(cid int) bool {
	r, c := gd.RowCol(cid)
	return r == 0 || r == gd.Nr-1 || c == 0 || c == gd.Nc-1
}
