// Package btree animates a balanced multiway search tree (B-tree) of
// configurable order M for teaching: every operation is a replayable
// sequence of immutable Step snapshots instead of a single answer.
//
// What you get:
//
//	– Search(t, key):  one compare step per node on the root-to-leaf walk,
//	                   then a terminal found / not-found step. Read-only.
//	– Insert(t, key):  descent steps, the leaf insertion, and one step per
//	                   split/promotion as overflow cascades upward, growing
//	                   a new root when it reaches the top.
//	– Delete(t, key):  descent steps, removal or predecessor substitution,
//	                   and one step per borrow/merge as underflow repair
//	                   cascades upward, collapsing the root when drained.
//	– Session:         the caller-facing boundary. Owns the live tree,
//	                   serializes operations (one Run in flight at a time),
//	                   and installs an operation's final snapshot only when
//	                   its last step is pulled. Abandoning a Run midway
//	                   leaves the live tree untouched.
//	– Validate(t):     full invariant check, usable on any snapshot.
//
// Design:
//
//	– Arena storage: nodes live in a flat slice linked by integer indices,
//	  so a deep clone is a plain slice copy and there is no pointer-cycle
//	  ownership ambiguity from parent back-links.
//	– Copy-on-step: every emitted Step deep-copies the working tree. A
//	  partially consumed operation can never corrupt the live tree, and a
//	  step stays valid forever once handed out.
//	– Stable node IDs: a process-lifetime counter names nodes across
//	  snapshots, so highlight maps are keyed by identity, not position.
//	– Metrics (node count, height, total keys, cumulative splits/merges)
//	  are recomputed from the root at every step, never maintained
//	  incrementally.
//
// Tie-break policy, deliberately fixed and testable:
//
//	– splits promote the key at index ⌊keyCount/2⌋;
//	– underflow repair tries the left sibling, then the right sibling,
//	  then merges, and merges fold into the left sibling when one exists;
//	– duplicate inserts are rejected with a terminal step (set semantics).
//
// Complexity: every operation emits O(height) steps; with n keys a full
// sequence costs O(n · height) because each step snapshots the tree.
//
// Errors: only configuration and misuse are errors (ErrInvalidOrder,
// ErrNilTree, ErrOperationInFlight, ErrUnknownPresetOp). Duplicate keys,
// absent keys, and empty trees are reported through terminal steps.
package btree
