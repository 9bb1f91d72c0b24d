package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ridgeline/astar"
	"github.com/katalvlaran/ridgeline/heightmap"
)

// rampMap builds an n×n map whose elevation rises gently from 0 on the west
// edge to MaxElevation on the east edge, so every eastward step is legal.
func rampMap(b *testing.B, n int) *heightmap.HeightMap {
	b.Helper()
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

	return hm
}

// BenchmarkShortestPath_Ramp measures a corner-to-corner search on a
// 200×200 ramp.
func BenchmarkShortestPath_Ramp(b *testing.B) {
	hm := rampMap(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.ShortestPath(hm, hm.Start, hm.End)
	}
}

// BenchmarkShortestPath_Estimate compares the two estimate anchors on a
// noisy 150×150 map. The end sits on a lone peak, so every run exhausts the
// reachable area.
func BenchmarkShortestPath_Estimate(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	hm := randomMap(b, rng, 150, 150, 2)

	for _, est := range []astar.Estimate{astar.EstimateFromSource, astar.EstimateFromTarget} {
		b.Run(est.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = astar.ShortestPath(hm, hm.Start, hm.End, astar.WithEstimate(est))
			}
		})
	}
}

// BenchmarkShortestPath_ReturnPath measures the cost of predecessor tracking.
func BenchmarkShortestPath_ReturnPath(b *testing.B) {
	hm := rampMap(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.ShortestPath(hm, hm.Start, hm.End, astar.WithReturnPath())
	}
}
