// Package ridgeline finds shortest climbs across elevation grids.
//
// What is ridgeline?
//
//	A small, dependency-light engine for hill-climbing maps: rectangular
//	grids of elevations 'a'..'z' with a start 'S' and an end 'E', where a
//	step goes to one of the four adjacent cells and may climb at most one
//	level (dropping any distance is fine). It answers two questions:
//		• the fewest steps from S to E (forward A* search)
//		• the fewest steps from any lowland 'a' cell to E (one reverse
//		  breadth-first search from E instead of one search per lowland)
//
// Under the hood, everything is organized into subpackages:
//
//	heightmap/      the immutable grid, step rule, neighbours, text parser and renderer
//	astar/          forward search with a Manhattan estimate and lazy stale-entry skip
//	descent/        reverse breadth-first search to the nearest goal elevation
//	solver/         runs both searches concurrently with logs, spans and metrics
//	config/         YAML configuration with environment overrides
//	logging/        slog logger construction
//	telemetry/      OpenTelemetry provider setup (stdout or none)
//	cmd/ridgeline/  the command-line front end
//
// Quick example:
//
//	Sabqponm
//	abcryxxl        start to end: 31
//	accszExk   →    nearest lowland to end: 29
//	acctuvwj
//	abdefghi
//
//	go install github.com/katalvlaran/ridgeline/cmd/ridgeline@latest
//	ridgeline solve input.txt
package ridgeline
