package grid

import "fmt"

// Mask a dense binary raster over a Definition (water/drainage masks)
type Mask struct {
	GD *Definition
	B  []bool
}

// NewMask constructor, all false
func NewMask(gd *Definition) *Mask {
	return &Mask{GD: gd, B: make([]bool, gd.Ncells())}
}

// MaskFromSlice builds a Mask from a row-major 0/1 slice; any non-zero is true
func MaskFromSlice(gd *Definition, a []float64) (*Mask, error) {
	if len(a) != gd.Ncells() {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrDimensionMismatch, len(a), gd.Nr, gd.Nc)
	}
	m := NewMask(gd)
	for i, v := range a {
		m.B[i] = v != 0.
	}
	return m, nil
}

// Get bounds-checked accessor
func (m *Mask) Get(row, col int) bool {
	if !m.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Mask.Get out of bounds (%d,%d)", row, col))
	}
	return m.B[row*m.GD.Nc+col]
}

// Set bounds-checked mutator
func (m *Mask) Set(row, col int, v bool) {
	if !m.GD.InBounds(row, col) {
		panic(fmt.Sprintf("grid.Mask.Set out of bounds (%d,%d)", row, col))
	}
	m.B[row*m.GD.Nc+col] = v
}

// CountTrue number of set cells
func (m *Mask) CountTrue() int {
	n := 0
	for _, b := range m.B {
		if b {
			n++
		}
	}
	return n
}
