// Step-emitting Bellman-Ford: repeated full-edge sweeps with one frame
// per pass, early exit when a sweep changes nothing, and a terminal
// negative-cycle frame when a V-th sweep still finds an improvement.

package paths

import (
	"fmt"
	"maps"
)

// BellmanFord computes shortest distances from source over a graph that
// may carry negative edge weights, returning the run as an ordered
// frame sequence: one StepInit, one StepPass per sweep, and either a
// StepDone or a terminal StepNegativeCycle naming the vertices whose
// distances are still shrinking. A reachable negative cycle is a normal
// outcome of the simulation, reported in-band like the B-tree engine's
// terminal steps, not an error.
//
// Validation (in order): ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O(V · E) sweeps; each emitted frame copies O(V) tables.
//   - Space: O(V).
func BellmanFord(g *Graph, source string) ([]Step, error) {
	// 1) Validate inputs.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	r := &bellmanFordRun{
		g:      g,
		source: source,
		dist:   make(map[string]int64, len(g.order)),
		prev:   make(map[string]string, len(g.order)),
	}

	// 2) Initialize: Unreachable everywhere, zero at the source.
	for _, v := range g.order {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0
	r.emit(StepInit, nil, "distances initialized; %s starts at 0", source)

	// 3) Up to V-1 sweeps; each settles at least one more hop level.
	edges := g.Edges()
	for pass := 1; pass < len(g.order); pass++ {
		relaxed := r.sweep(edges)
		if len(relaxed) == 0 {
			r.emit(StepPass, nil, "pass %d: no relaxations; distances are final", pass)
			break
		}
		r.emit(StepPass, relaxed, "pass %d: %d relaxation(s)", pass, len(relaxed))
	}

	// 4) One more sweep: any improvement now proves a reachable
	//    negative cycle.
	if tainted := r.sweep(edges); len(tainted) > 0 {
		marks := make(map[string]Marker, len(tainted))
		for _, v := range tainted {
			marks[v] = MarkCycle
		}
		r.steps = append(r.steps, Step{
			Kind: StepNegativeCycle,
			Message: fmt.Sprintf("negative cycle reachable from %s: distances of %v never converge",
				source, tainted),
			Dist:  maps.Clone(r.dist),
			Prev:  maps.Clone(r.prev),
			Marks: marks,
		})

		return r.steps, nil
	}

	r.emit(StepDone, nil, "all reachable vertices finalized from %s", source)

	return r.steps, nil
}

// bellmanFordRun holds the mutable state of one execution.
type bellmanFordRun struct {
	g      *Graph
	source string
	dist   map[string]int64
	prev   map[string]string
	steps  []Step
}

// sweep relaxes every edge once, returning the vertices whose distance
// improved, in first-improvement order without duplicates.
func (r *bellmanFordRun) sweep(edges []Edge) []string {
	var relaxed []string
	seen := make(map[string]bool)
	for _, e := range edges {
		if r.dist[e.From] == Unreachable {
			continue
		}
		candidate := r.dist[e.From] + e.Weight
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = e.From
		if !seen[e.To] {
			seen[e.To] = true
			relaxed = append(relaxed, e.To)
		}
	}

	return relaxed
}

// emit appends a frame with copies of the tables; relaxed vertices (if
// any) are marked MarkRelaxed on top of the source mark.
func (r *bellmanFordRun) emit(kind StepKind, relaxed []string, format string, args ...any) {
	marks := map[string]Marker{r.source: MarkSource}
	for _, v := range relaxed {
		marks[v] = MarkRelaxed
	}

	r.steps = append(r.steps, Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Dist:    maps.Clone(r.dist),
		Prev:    maps.Clone(r.prev),
		Marks:   marks,
	})
}
