// Package solver answers both ridgeline questions for one height map:
// the fewest steps from the start marker to the end marker, and the fewest
// steps from the nearest lowland to the end marker.
//
// Solve parses the map once and runs the forward search (package astar) and
// the reverse search (package descent) side by side in an errgroup. Both
// read the same immutable map. Each run gets a RunID that tags its log
// records and its OpenTelemetry span; search durations and expanded-cell
// counts are recorded as metrics.
//
// An unreachable end is reported in the Report (Found == false), never as
// an error. Errors are reserved for malformed input, invalid options and a
// cancelled context.
//
// Usage
//
//	s, err := solver.New(logger, solver.WithReturnPath())
//	if err != nil { ... }
//	rep, err := s.Solve(ctx, os.Stdin)
//	if err != nil { ... }
//	for _, line := range rep.Lines() {
//	    fmt.Println(line)
//	}
package solver
