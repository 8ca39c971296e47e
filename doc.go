// Package algowalk is a teaching library: classic data-structure and
// systems algorithms instrumented to narrate themselves, one immutable
// step at a time.
//
// Every simulator follows the same contract. An operation never mutates
// state silently; it emits an ordered sequence of Step frames, each
// carrying a private snapshot of the structure, semantic highlight
// markers for a renderer, a one-sentence narration, and recomputed
// metrics. Frames stay valid forever: replaying an old run after ten
// newer ones shows exactly what it showed the first time.
//
// The simulators live in four subpackages:
//
//	btree/      — B-tree insert, delete and search with split, borrow,
//	              merge and shrink frames, behind a Session that commits
//	              a mutation only when its run is fully replayed
//	paths/      — Dijkstra and Bellman-Ford on small directed graphs,
//	              settle and relaxation frames, negative-cycle detection
//	deadlock/   — wait-for-graph deadlock detection over processes and
//	              single-instance resources
//	blockalloc/ — contiguous disk-block allocation comparing first-fit,
//	              best-fit and worst-fit placement
//
// cmd/algowalk replays any of them as colored terminal frames.
//
// Expected outcomes of a lesson (a duplicate key, a missing key, a
// deadlock, a request no free run can hold) arrive as terminal steps,
// never as errors; errors are reserved for misuse of the API itself.
package algowalk
