package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// grid3 builds a 3×3 map:
//
//	S b c
//	d e f
//	g h E
func grid3(t *testing.T) *heightmap.HeightMap {
	t.Helper()
	hm, err := heightmap.ParseString("Sbc\ndef\nghE")
	require.NoError(t, err)

	return hm
}

func TestNeighbors_Order(t *testing.T) {
	hm := grid3(t)

	cases := []struct {
		name     string
		row, col int
		want     []heightmap.Cell
	}{
		{"Center", 1, 1, []heightmap.Cell{{Row: 1, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 1}}},
		{"TopLeft", 0, 0, []heightmap.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}},
		{"BottomRight", 2, 2, []heightmap.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
		{"TopEdge", 0, 1, []heightmap.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 0}, {Row: 1, Col: 1}}},
		{"RightEdge", 1, 2, []heightmap.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hm.Neighbors(tc.row, tc.col))
		})
	}
}

func TestAppendNeighbors(t *testing.T) {
	hm := grid3(t)

	assert.Equal(t, []int{5, 1, 3, 7}, hm.NeighborIndices(4))
	assert.Equal(t, []int{1, 3}, hm.NeighborIndices(0))

	buf := make([]int, 0, 4)
	buf = hm.AppendNeighbors(buf, 8)
	assert.Equal(t, []int{5, 7}, buf)
	buf = hm.AppendNeighbors(buf[:0], 2)
	assert.Equal(t, []int{1, 5}, buf)
}

func TestNeighbors_Strips(t *testing.T) {
	hm, err := heightmap.ParseString("SE")
	require.NoError(t, err)

	assert.Equal(t, []int{1}, hm.NeighborIndices(0))
	assert.Equal(t, []int{0}, hm.NeighborIndices(1))

	column, err := heightmap.ParseString("S\nE")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, column.NeighborIndices(0))
	assert.Equal(t, []heightmap.Cell{{Row: 1, Col: 0}}, column.Neighbors(0, 0))
}
