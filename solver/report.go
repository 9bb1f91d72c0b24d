package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ridgeline/astar"
	"github.com/katalvlaran/ridgeline/descent"
	"github.com/katalvlaran/ridgeline/heightmap"
)

// Labels of the two answers.
const (
	ForwardLabel = "start to end"
	ReverseLabel = "nearest lowland to end"
)

// NoRoute replaces the step count when a search finds no legal route.
const NoRoute = "no route found"

// Report is the outcome of one run.
type Report struct {
	RunID   string
	Width   int
	Height  int
	Forward astar.Result
	Reverse descent.Result

	hm *heightmap.HeightMap
}

// Lines returns the two answers, forward first:
//
//	start to end: 31
//	nearest lowland to end: 29
func (r *Report) Lines() []string {
	return []string{
		line(ForwardLabel, r.Forward.Steps, r.Forward.Found),
		line(ReverseLabel, r.Reverse.Steps, r.Reverse.Found),
	}
}

func line(label string, steps int, found bool) string {
	if !found {
		return label + ": " + NoRoute
	}

	return fmt.Sprintf("%s: %d", label, steps)
}

// Render draws each route found on its own copy of the map, headed by its
// answer line. It returns "" when the run did not ask for paths.
func (r *Report) Render() string {
	if r.hm == nil {
		return ""
	}
	lines := r.Lines()

	var blocks []string
	if r.Forward.Path != nil {
		blocks = append(blocks, lines[0]+"\n"+r.hm.RenderPath(r.Forward.Path))
	}
	if r.Reverse.Path != nil {
		blocks = append(blocks, lines[1]+"\n"+r.hm.RenderPath(r.Reverse.Path))
	}

	return strings.Join(blocks, "\n\n")
}
