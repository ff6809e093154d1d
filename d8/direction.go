// Package d8 assigns single-neighbour (D8) flow directions over a
// conditioned elevation surface and computes flow accumulation over the
// resulting downslope forest.
package d8

// Direction one of the eight compass neighbours a cell may drain to, or
// None for sinks (outlets, unresolved terminals and nodata cells).
type Direction uint8

const (
	None Direction = iota
	E
	SE
	S
	SW
	W
	NW
	N
	NE
)

// priority fixed steepest-descent tie-break order
var priority = [8]Direction{E, SE, S, SW, W, NW, N, NE}

// drowcol row/col offsets per direction (zero value for None)
var drowcol = [9][2]int{
	{0, 0},   // None
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
	{-1, 0},  // N
	{-1, 1},  // NE
}

// codes conventional D8 export codes (64=N, 128=NE, 1=E, 2=SE, 4=S, 8=SW,
// 16=W, 32=NW; 0=no direction)
var codes = [9]uint8{0, 1, 2, 4, 8, 16, 32, 64, 128}

var names = [9]string{"none", "E", "SE", "S", "SW", "W", "NW", "N", "NE"}

// Code the conventional power-of-two D8 code
func (d Direction) Code() uint8 { return codes[d] }

// Offset the (drow,dcol) step taken when following d
func (d Direction) Offset() (int, int) { return drowcol[d][0], drowcol[d][1] }

// Diagonal reports whether d steps diagonally
func (d Direction) Diagonal() bool { return d == SE || d == SW || d == NW || d == NE }

func (d Direction) String() string { return names[d] }
