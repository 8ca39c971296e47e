package paths_test

import (
	"fmt"

	"github.com/algowalk/algowalk/paths"
)

// ExampleDijkstra replays the full frame sequence for a four-vertex
// diamond where the direct A→D edge loses to the two-hop route.
func ExampleDijkstra() {
	g := paths.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 3)
	_ = g.AddEdge("B", "D", 2)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 10)

	steps, _ := paths.Dijkstra(g, "A")
	for _, st := range steps {
		fmt.Println(st.Message)
	}
	// Output:
	// distances initialized; A starts at 0
	// settled A at distance 0
	// relaxed A→B: distance of B improves to 1
	// relaxed A→C: distance of C improves to 3
	// relaxed A→D: distance of D improves to 10
	// settled B at distance 1
	// relaxed B→D: distance of D improves to 3
	// settled C at distance 3
	// settled D at distance 3
	// all reachable vertices settled from A
}

// ExampleBellmanFord shows a negative edge rerouting the answer, a
// lesson Dijkstra cannot teach.
func ExampleBellmanFord() {
	g := paths.NewGraph()
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", -4)

	steps, _ := paths.BellmanFord(g, "A")
	for _, st := range steps {
		fmt.Println(st.Message)
	}
	last := steps[len(steps)-1]
	fmt.Printf("C is %d away via %s\n", last.Dist["C"], last.Prev["C"])
	// Output:
	// distances initialized; A starts at 0
	// pass 1: 2 relaxation(s)
	// pass 2: no relaxations; distances are final
	// all reachable vertices finalized from A
	// C is 1 away via B
}
