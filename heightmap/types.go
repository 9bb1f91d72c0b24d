package heightmap

import (
	"errors"
)

// Sentinel errors for heightmap construction and parsing.
var (
	// ErrEmptyGrid indicates New received no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrElevationRange indicates an elevation above MaxElevation.
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrMarker indicates a start or end index that is out of range or
	// does not carry the elevation its marker implies.
	ErrMarker = errors.New("heightmap: invalid start or end marker")

	// ErrEmptyInput indicates the text input holds no cells.
	ErrEmptyInput = errors.New("heightmap: received no input")
	// ErrInvalidCharacter indicates a character other than 'a'..'z', 'S' or 'E'.
	ErrInvalidCharacter = errors.New("heightmap: invalid character")
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = errors.New("heightmap: multiple start markers")
	// ErrDuplicateEnd indicates more than one 'E' marker.
	ErrDuplicateEnd = errors.New("heightmap: multiple end markers")
	// ErrMissingMarker indicates the input lacks an 'S' or an 'E'.
	ErrMissingMarker = errors.New("heightmap: start or end marker not found")
)

// MaxElevation is the highest elevation a cell may hold ('z').
const MaxElevation uint8 = 25

// Cell is a (Row, Col) grid position. Offsets reuse it as a delta.
type Cell struct {
	Row, Col int
}

// Offsets lists the four axis-aligned neighbour deltas in enumeration
// order: east, north, west, south.
var Offsets = [4]Cell{
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
}

// HeightMap is an immutable rectangular elevation grid.
// Width and Height define dimensions; Start and End are the linear indices
// of the designated start and end cells. elevations holds Width*Height
// values in row-major order.
type HeightMap struct {
	Width, Height int
	Start, End    int
	elevations    []uint8
}
