package heightmap

import (
	"strings"
)

// String renders the map back to its text form, one row per line,
// without a trailing newline.
func (hm *HeightMap) String() string {
	return hm.render(nil)
}

// RenderPath renders the map with only the cells of path shown; every other
// cell is drawn as '.'. Indices outside the map are ignored.
func (hm *HeightMap) RenderPath(path []int) string {
	onPath := make([]bool, hm.Len())
	for _, idx := range path {
		if hm.Contains(idx) {
			onPath[idx] = true
		}
	}

	return hm.render(onPath)
}

// render draws every cell, or only the cells flagged in mask when mask is
// non-nil.
func (hm *HeightMap) render(mask []bool) string {
	var sb strings.Builder
	sb.Grow(hm.Len() + hm.Height)
	for row := 0; row < hm.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < hm.Width; col++ {
			idx := hm.Index(row, col)
			switch {
			case mask != nil && !mask[idx]:
				sb.WriteByte('.')
			case idx == hm.Start:
				sb.WriteByte('S')
			case idx == hm.End:
				sb.WriteByte('E')
			default:
				sb.WriteByte('a' + hm.elevations[idx])
			}
		}
	}

	return sb.String()
}
