// Step-emitting Dijkstra: processes vertices in increasing distance
// from the source with a min-heap priority queue under the lazy
// decrease-key strategy (duplicates pushed, stale entries skipped on
// pop), emitting one frame per settle and per improving relaxation.

package paths

import (
	"container/heap"
	"fmt"
	"maps"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of g, returning the run as an ordered frame sequence. The
// final StepDone frame carries the completed distance and predecessor
// tables.
//
// Preconditions and validation (in order):
//
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Options must be valid (ErrBadMaxDistance).
//  4. g must contain source (ErrVertexNotFound).
//  5. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the algorithm itself; each emitted
//     frame additionally copies the O(V) distance tables.
//   - Space: O(V + E).
func Dijkstra(g *Graph, source string, opts ...Option) ([]Step, error) {
	// 1) Validate inputs, cheapest check first: source, graph, options.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 2) Upfront scan: Dijkstra is undefined for negative weights, so
	//    fail fast with the offending edge.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newDijkstraRun(g, source, cfg)
	r.init()
	r.process()
	r.emit(StepDone, "", "all reachable vertices settled from %s", source)

	return r.steps, nil
}

// dijkstraRun holds the mutable state of one execution.
type dijkstraRun struct {
	g       *Graph
	source  string
	cfg     Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      vertexPQ
	steps   []Step
}

func newDijkstraRun(g *Graph, source string, cfg Options) *dijkstraRun {
	n := len(g.order)

	return &dijkstraRun{
		g:       g,
		source:  source,
		cfg:     cfg,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		settled: make(map[string]bool, n),
		pq:      make(vertexPQ, 0, n),
	}
}

// init seeds the distance table with Unreachable everywhere, zero at
// the source, and pushes the source onto the heap.
func (r *dijkstraRun) init() {
	for _, v := range r.g.order {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{id: r.source, dist: 0})
	r.emit(StepInit, "", "distances initialized; %s starts at 0", r.source)
}

// process is the main loop: pop the nearest unsettled vertex, finalize
// it, and relax its outgoing edges.
func (r *dijkstraRun) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)

		// Stale heap entry under lazy decrease-key: skip silently.
		if r.settled[item.id] {
			continue
		}

		// Beyond the exploration cap: everything left is farther still.
		if item.dist > r.cfg.MaxDistance {
			return
		}

		r.settled[item.id] = true
		r.emit(StepSettle, item.id, "settled %s at distance %d", item.id, item.dist)
		r.relax(item.id)
	}
}

// relax tries every outgoing edge of u, emitting a frame for each
// strict improvement and pushing the improved vertex onto the heap.
func (r *dijkstraRun) relax(u string) {
	for _, e := range r.g.adj[u] {
		candidate := r.dist[u] + e.Weight
		if candidate > r.cfg.MaxDistance || candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		heap.Push(&r.pq, &pqItem{id: e.To, dist: candidate})
		r.emit(StepRelax, e.To, "relaxed %s→%s: distance of %s improves to %d",
			u, e.To, e.To, candidate)
	}
}

// emit appends a frame with copies of the tables and a marker map built
// from the run state: settled vertices, the source, and the focus
// vertex of this frame.
func (r *dijkstraRun) emit(kind StepKind, focus, format string, args ...any) {
	marks := make(map[string]Marker, len(r.settled)+2)
	for v := range r.settled {
		marks[v] = MarkSettled
	}
	marks[r.source] = MarkSource
	if focus != "" && kind == StepRelax {
		marks[focus] = MarkRelaxed
	}

	r.steps = append(r.steps, Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Dist:    maps.Clone(r.dist),
		Prev:    maps.Clone(r.prev),
		Marks:   marks,
	})
}

// pqItem pairs a vertex with its distance at push time.
type pqItem struct {
	id   string
	dist int64
}

// vertexPQ is a min-heap of *pqItem ordered by distance.
type vertexPQ []*pqItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
