// Search walk, shared by Search, Insert, and Delete: descend from the
// root comparing keys left to right, emitting one compare step per node
// scanned. One step per node (rather than per individual comparison)
// keeps the emitted sequence bounded by the tree height.

package btree

import (
	"fmt"
	"strings"
)

// locate descends from the root toward key, emitting a StepCompare for
// every node scanned (including the final leaf). It returns the arena
// index of the node the walk stopped at, the key's position within that
// node (match position, or the slot scanning stopped at), and whether
// the key was found. The caller is responsible for the terminal step.
//
// Precondition: o.t.root != none.
func (o *op) locate(key int64) (idx, pos int, found bool) {
	cur := o.t.root
	for {
		n := &o.t.nodes[cur]
		pos, found = n.search(key)
		o.emitCompare(n, key, pos, found)
		if found {
			return cur, pos, true
		}
		if n.leaf() {
			return cur, pos, false
		}
		cur = n.children[pos]
	}
}

// emitCompare narrates the scan of one node: every comparison made until
// the scan stopped, plus where the walk goes next.
func (o *op) emitCompare(n *node, key int64, pos int, found bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "node %d:", n.id)
	for i := 0; i < pos; i++ {
		fmt.Fprintf(&b, " %d > %d,", key, n.keys[i])
	}

	mark := pos // key index to flag for the renderer
	switch {
	case found:
		fmt.Fprintf(&b, " %d == %d at position %d", key, n.keys[pos], pos)
	case n.leaf() && pos < len(n.keys):
		fmt.Fprintf(&b, " %d < %d; leaf reached, %d is not here", key, n.keys[pos], key)
	case n.leaf():
		fmt.Fprintf(&b, " leaf exhausted; %d is not here", key)
		mark = len(n.keys) - 1
	case pos < len(n.keys):
		fmt.Fprintf(&b, " %d < %d; descending into child %d", key, n.keys[pos], pos)
	default:
		fmt.Fprintf(&b, " %d exceeds all keys; descending into last child", key)
		mark = len(n.keys) - 1
	}

	var keys []KeyMark
	if mark >= 0 && mark < len(n.keys) {
		keys = []KeyMark{{Node: n.id, Index: mark, Mark: HighlightComparing}}
	}
	o.emit(StepCompare, hl(n.id, HighlightSearching), keys, "%s", b.String())
}

// Search walks the tree read-only, producing one compare step per node
// visited and a terminal found / not-found step. The tree is never
// modified; every step's snapshot is a defensive copy.
//
// Returns ErrNilTree for a nil tree. Absence of the key is a normal
// outcome reported by the terminal step, not an error.
//
// Complexity: O(height) steps, O(M·height) comparisons.
func Search(t *Tree, key int64) ([]Step, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := newOp(t)

	// 1) Empty tree: nothing to compare against.
	if o.t.root == none {
		o.emit(StepEmptyTree, nil, nil, "tree is empty; %d cannot be present", key)
		return o.steps, nil
	}

	// 2) Shared walk, one compare step per node.
	idx, pos, found := o.locate(key)
	n := &o.t.nodes[idx]

	// 3) Terminal step.
	if found {
		o.emit(StepFound,
			hl(n.id, HighlightFound),
			[]KeyMark{{Node: n.id, Index: pos, Mark: HighlightFound}},
			"found %d in node %d at position %d", key, n.id, pos)
	} else {
		o.emit(StepNotFound, hl(n.id, HighlightSearching), nil,
			"%d is not in the tree", key)
	}

	return o.steps, nil
}
