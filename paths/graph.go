package paths

import "fmt"

// Edge is one weighted directed connection.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost. Dijkstra requires non-negative weights;
	// Bellman-Ford accepts any.
	Weight int64
}

// Graph is a small weighted digraph with deterministic iteration:
// vertices keep insertion order, and each vertex's outgoing edges keep
// the order they were added in. Determinism is what makes the emitted
// step sequences replayable and testable frame by frame.
type Graph struct {
	order []string
	adj   map[string][]Edge
}

// NewGraph constructs an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Edge)}
}

// AddVertex registers a vertex. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty ID.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensure(id)

	return nil
}

// AddEdge adds a directed edge from→to, creating missing vertices on
// the fly. Returns ErrEmptyVertexID if either endpoint is empty.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: edge %q→%q", ErrEmptyVertexID, from, to)
	}
	g.ensure(from)
	g.ensure(to)
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})

	return nil
}

// ensure registers id if unseen.
func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether id is registered.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// Neighbors returns the outgoing edges of id in insertion order.
func (g *Graph) Neighbors(id string) []Edge {
	return append([]Edge(nil), g.adj[id]...)
}

// Edges returns every edge, grouped by source vertex in insertion
// order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, v := range g.order {
		out = append(out, g.adj[v]...)
	}

	return out
}
