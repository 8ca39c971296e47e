// Package paths animates single-source shortest-path algorithms for
// teaching: Dijkstra (non-negative weights, greedy settle order) and
// Bellman-Ford (arbitrary weights, repeated sweeps, negative-cycle
// detection).
//
// Instead of returning only the final distance table, each run emits an
// ordered sequence of immutable Step frames (settle events, edge
// relaxations, sweep summaries) with per-frame copies of the distance
// and predecessor maps and semantic vertex markers, so a caller can
// replay the computation one frame at a time.
//
// The two simulators are deliberately contrasting lessons. Dijkstra
// settles each vertex exactly once, in increasing distance order, and
// therefore must reject negative weights upfront. Bellman-Ford sweeps
// every edge up to V-1 times, tolerates negative weights, and turns a
// still-improving V-th sweep into a terminal negative-cycle frame.
//
// Graphs are small, directed, and deterministic: vertices and edges
// iterate in insertion order, so a given graph always produces the same
// frame sequence.
package paths
