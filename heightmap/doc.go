// Package heightmap models a rectangular elevation grid and the movement
// rule that the ridgeline searches run over.
//
// What:
//
//   - HeightMap stores Width×Height elevations in row-major order, each in
//     [0, MaxElevation], plus the designated Start and End cells.
//   - Cells are addressed by linear index row*Width + col; Index and
//     Coordinate convert between the two forms.
//   - Neighbors / AppendNeighbors enumerate up to four axis-aligned in-bounds
//     neighbours in the fixed order east, north, west, south.
//   - CanStep encodes the elevation constraint: a step from a to b is legal
//     only if Elevation(b) ≤ Elevation(a)+1.
//   - Parse / ParseString read the text format: one row per line, 'a'..'z'
//     for elevations 0..25, 'S' for the start (elevation 0) and 'E' for the
//     end (elevation 25).
//
// Why:
//
//   - Both searches borrow the same map read-only. A HeightMap is never
//     mutated after construction, so it can be shared between goroutines
//     without locks.
//
// Complexity:
//
//   - New, Parse:     O(W×H) time and memory.
//   - Elevation, CanStep, Manhattan, Index, Coordinate: O(1).
//   - AppendNeighbors: O(1), no allocation when dst has capacity 4.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrElevationRange, ErrMarker from New.
//   - ErrEmptyInput, ErrInvalidCharacter, ErrNonRectangular,
//     ErrDuplicateStart, ErrDuplicateEnd, ErrMissingMarker from Parse.
package heightmap
