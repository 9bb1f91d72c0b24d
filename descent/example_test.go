// File: descent/example_test.go
package descent_test

import (
	"fmt"

	"github.com/katalvlaran/ridgeline/descent"
	"github.com/katalvlaran/ridgeline/heightmap"
)

// ExampleShortestFromAnyZero finds the best trailhead: the lowland cell with
// the shortest hike to the summit.
func ExampleShortestFromAnyZero() {
	hm, err := heightmap.ParseString(`
		Sabqponm
		abcryxxl
		accszExk
		acctuvwj
		abdefghi`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := descent.ShortestFromAnyZero(hm, hm.End, descent.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	row, col := hm.Coordinate(res.Source)
	fmt.Printf("steps: %d from (%d,%d)\n", res.Steps, row, col)
	fmt.Println(hm.RenderPath(res.Path))
	// Output:
	// steps: 29 from (4,0)
	// ...qponm
	// ...ryxxl
	// ...szExk
	// .cctuvwj
	// abdefghi
}
