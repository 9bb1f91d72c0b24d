package descent_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ridgeline/descent"
	"github.com/katalvlaran/ridgeline/heightmap"
)

// BenchmarkShortestFromAnyZero_Ramp descends an n×n ramp whose only
// lowlands lie on the far west edge.
func BenchmarkShortestFromAnyZero_Ramp(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		rows := make([][]uint8, n)
		for y := range rows {
			rows[y] = make([]uint8, n)
			for x := range rows[y] {
				rows[y][x] = uint8(x * int(heightmap.MaxElevation) / (n - 1))
			}
		}
		hm, err := heightmap.New(rows, 0, n*n-1)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(hm.Len()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = descent.ShortestFromAnyZero(hm, hm.End)
			}
		})
	}
}
