package heightmap

// Neighbors returns the in-bounds axis-aligned neighbours of (row,col) in
// the order east, north, west, south.
// Complexity: O(1).
func (hm *HeightMap) Neighbors(row, col int) []Cell {
	out := make([]Cell, 0, len(Offsets))
	for _, d := range Offsets {
		r, c := row+d.Row, col+d.Col
		if hm.InBounds(r, c) {
			out = append(out, Cell{Row: r, Col: c})
		}
	}

	return out
}

// AppendNeighbors appends the linear indices of the in-bounds neighbours of
// cell idx to dst, in the same order as Neighbors, and returns the extended
// slice. Searches pass a reusable buffer so the hot loop does not allocate.
func (hm *HeightMap) AppendNeighbors(dst []int, idx int) []int {
	row, col := hm.Coordinate(idx)
	for _, d := range Offsets {
		r, c := row+d.Row, col+d.Col
		if hm.InBounds(r, c) {
			dst = append(dst, hm.Index(r, c))
		}
	}

	return dst
}

// NeighborIndices is AppendNeighbors into a fresh slice.
func (hm *HeightMap) NeighborIndices(idx int) []int {
	return hm.AppendNeighbors(make([]int, 0, len(Offsets)), idx)
}
