package heightmap

import (
	"fmt"
)

// New constructs a HeightMap from a non-empty, rectangular 2D slice of
// elevations. start and end are linear indices (row*width + col); the start
// cell must have elevation 0 and the end cell MaxElevation.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrElevationRange or ErrMarker.
// Complexity: O(W×H) time and memory.
func New(rows [][]uint8, start, end int) (*HeightMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v > MaxElevation {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrElevationRange, v, y, x)
			}
		}
		cells = append(cells, row...)
	}

	hm := &HeightMap{
		Width:      w,
		Height:     h,
		Start:      start,
		End:        end,
		elevations: cells,
	}
	if !hm.Contains(start) || cells[start] != 0 {
		return nil, fmt.Errorf("%w: start %d", ErrMarker, start)
	}
	if !hm.Contains(end) || cells[end] != MaxElevation {
		return nil, fmt.Errorf("%w: end %d", ErrMarker, end)
	}

	return hm, nil
}

// Len returns the number of cells, Width*Height.
func (hm *HeightMap) Len() int {
	return len(hm.elevations)
}

// Contains reports whether idx addresses a cell of the map.
func (hm *HeightMap) Contains(idx int) bool {
	return idx >= 0 && idx < len(hm.elevations)
}

// Elevation returns the elevation of cell idx.
// idx must be valid; an out-of-range index panics like a slice access.
func (hm *HeightMap) Elevation(idx int) uint8 {
	return hm.elevations[idx]
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (hm *HeightMap) InBounds(row, col int) bool {
	return row >= 0 && row < hm.Height && col >= 0 && col < hm.Width
}

// Index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (hm *HeightMap) Index(row, col int) int {
	return row*hm.Width + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (hm *HeightMap) Coordinate(idx int) (row, col int) {
	return idx / hm.Width, idx % hm.Width
}

// CanStep reports whether a single step from cell from to the adjacent
// cell to is legal, i.e. it climbs at most one elevation unit.
// Adjacency is not checked.
func (hm *HeightMap) CanStep(from, to int) bool {
	return hm.elevations[to] <= hm.elevations[from]+1
}

// Manhattan returns the L1 distance between cells a and b.
func (hm *HeightMap) Manhattan(a, b int) int {
	ar, ac := hm.Coordinate(a)
	br, bc := hm.Coordinate(b)

	return abs(ar-br) + abs(ac-bc)
}

// Lowlands returns the indices of all cells with elevation 0, in index
// order. The start cell is one of them.
func (hm *HeightMap) Lowlands() []int {
	var out []int
	for i, v := range hm.elevations {
		if v == 0 {
			out = append(out, i)
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
