// Command ridgeline reads a height map and prints the fewest steps from the
// start marker to the end marker and from the nearest lowland to the end.
//
//	ridgeline solve input.txt
//	ridgeline solve --path < input.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
