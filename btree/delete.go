// Delete engine: key removal, in-order predecessor substitution for
// internal keys, and cascading underflow repair via redistribution or
// merge.

package btree

// Delete produces the step sequence for removing key from a clone of t.
// The final step's tree satisfies all order-M invariants; t itself is
// never modified.
//
// Outcomes:
//
//   - empty tree: terminal StepEmptyTree.
//   - absent key: terminal StepNotFound, structure untouched.
//   - key in a leaf: removed directly, then underflow repair on that
//     leaf.
//   - key in an internal node: replaced by its in-order predecessor (the
//     rightmost key of the subtree left of it); repair then applies to
//     the leaf that surrendered the predecessor, not to the internal
//     node, whose key count is unchanged by the substitution.
//
// Underflow repair always tries the left sibling first, then the right,
// before falling back to a merge; merges prefer folding into the left
// sibling. A merge removes a separator from the parent and may cascade
// all the way to the root, which collapses when left keyless.
func Delete(t *Tree, key int64) ([]Step, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := newOp(t)
	w := o.t

	// 1) Empty tree: nothing to delete.
	if w.root == none {
		o.emit(StepEmptyTree, nil, nil, "tree is empty; nothing to delete")
		return o.steps, nil
	}

	// 2) Walk down emitting search steps.
	idx, pos, found := o.locate(key)
	if !found {
		o.emit(StepNotFound, hl(w.nodes[idx].id, HighlightSearching), nil,
			"%d is not in the tree; nothing to delete", key)

		return o.steps, nil
	}

	n := &w.nodes[idx]
	if n.leaf() {
		// 3) Leaf case: delete the key in place.
		o.emit(StepRemove, hl(n.id, HighlightRemoving),
			[]KeyMark{{Node: n.id, Index: pos, Mark: HighlightRemoving}},
			"removing %d from leaf node %d", key, n.id)
		n.keys = removeAt(n.keys, pos)
		o.repair(idx)
	} else {
		// 4) Internal case: substitute the in-order predecessor, then
		//    remove its original occurrence from the leaf it lived in.
		leafIdx := w.rightmost(n.children[pos])
		leaf := &w.nodes[leafIdx]
		pred := leaf.keys[len(leaf.keys)-1]
		o.emit(StepSubstitute, map[int64]Highlight{
			n.id:    HighlightRemoving,
			leaf.id: HighlightSearching,
		}, []KeyMark{
			{Node: n.id, Index: pos, Mark: HighlightRemoving},
			{Node: leaf.id, Index: len(leaf.keys) - 1, Mark: HighlightPromoting},
		}, "replacing %d in node %d with its in-order predecessor %d from leaf node %d",
			key, n.id, pred, leaf.id)
		n.keys[pos] = pred
		leaf.keys = leaf.keys[:len(leaf.keys)-1]
		o.repair(leafIdx)
	}

	// 5) Root collapse after all repairs.
	o.collapseRoot()

	// 6) Final step.
	o.emit(StepDone, nil, nil, "delete %d complete", key)

	return o.steps, nil
}

// rightmost descends via last-child links to the rightmost leaf of the
// subtree rooted at idx.
func (t *Tree) rightmost(idx int) int {
	for !t.nodes[idx].leaf() {
		n := &t.nodes[idx]
		idx = n.children[len(n.children)-1]
	}

	return idx
}

// repair restores the minimum-key invariant for the node at idx,
// cascading upward after merges. A borrow resolves the underflow
// outright; a merge removes a separator from the parent, which may
// itself underflow.
func (o *op) repair(idx int) {
	w := o.t
	for {
		n := &w.nodes[idx]
		// Root (or any node still at/above minimum) needs no repair.
		if n.parent == none || len(n.keys) >= w.minKeys() {
			return
		}
		parent := n.parent
		p := &w.nodes[parent]
		ci := childSlot(p, idx)

		// a) Borrow from the left sibling if it has a key to spare.
		if ci > 0 {
			li := p.children[ci-1]
			if len(w.nodes[li].keys) > w.minKeys() {
				o.borrowLeft(parent, ci, idx, li)
				return
			}
		}

		// b) Borrow from the right sibling symmetrically.
		if ci < len(p.children)-1 {
			ri := p.children[ci+1]
			if len(w.nodes[ri].keys) > w.minKeys() {
				o.borrowRight(parent, ci, idx, ri)
				return
			}
		}

		// c) Merge with a sibling, preferring the left one, and continue
		//    the repair at the parent.
		o.merge(parent, ci, idx)
		idx = parent
	}
}

// borrowLeft rotates the parent separator down into the front of the
// underflowing node and the left sibling's last key up into the parent,
// carrying the sibling's last child across for internal nodes.
func (o *op) borrowLeft(parent, ci, idx, li int) {
	w := o.t
	p := &w.nodes[parent]
	n := &w.nodes[idx]
	l := &w.nodes[li]

	sep := p.keys[ci-1]
	n.keys = insertAt(n.keys, 0, sep)
	p.keys[ci-1] = l.keys[len(l.keys)-1]
	l.keys = l.keys[:len(l.keys)-1]
	if !l.leaf() {
		moved := l.children[len(l.children)-1]
		l.children = l.children[:len(l.children)-1]
		n.children = insertChildAt(n.children, 0, moved)
		w.nodes[moved].parent = idx
	}

	o.emit(StepBorrowLeft, map[int64]Highlight{
		n.id: HighlightBorrowing,
		l.id: HighlightBorrowing,
		p.id: HighlightPromoting,
	}, []KeyMark{
		{Node: n.id, Index: 0, Mark: HighlightInserting},
		{Node: p.id, Index: ci - 1, Mark: HighlightPromoting},
	}, "node %d borrows through node %d: separator %d moves down, %d moves up from left sibling node %d",
		n.id, p.id, sep, p.keys[ci-1], l.id)
}

// borrowRight rotates the parent separator down onto the end of the
// underflowing node and the right sibling's first key up into the
// parent, carrying the sibling's first child across for internal nodes.
func (o *op) borrowRight(parent, ci, idx, ri int) {
	w := o.t
	p := &w.nodes[parent]
	n := &w.nodes[idx]
	r := &w.nodes[ri]

	sep := p.keys[ci]
	n.keys = append(n.keys, sep)
	p.keys[ci] = r.keys[0]
	r.keys = removeAt(r.keys, 0)
	if !r.leaf() {
		moved := r.children[0]
		r.children = r.children[1:]
		n.children = append(n.children, moved)
		w.nodes[moved].parent = idx
	}

	o.emit(StepBorrowRight, map[int64]Highlight{
		n.id: HighlightBorrowing,
		r.id: HighlightBorrowing,
		p.id: HighlightPromoting,
	}, []KeyMark{
		{Node: n.id, Index: len(n.keys) - 1, Mark: HighlightInserting},
		{Node: p.id, Index: ci, Mark: HighlightPromoting},
	}, "node %d borrows through node %d: separator %d moves down, %d moves up from right sibling node %d",
		n.id, p.id, sep, p.keys[ci], r.id)
}

// merge folds the underflowing node, the separator pulled down from the
// parent, and one sibling into a single node (the left of the pair
// survives), removing the consumed separator and child pointer from the
// parent.
func (o *op) merge(parent, ci, idx int) {
	w := o.t
	p := &w.nodes[parent]

	// Prefer merging with the left sibling; fall back to the right one
	// when the underflowing node is the leftmost child.
	var left, right, sepIdx int
	if ci > 0 {
		left, right, sepIdx = p.children[ci-1], idx, ci-1
	} else {
		left, right, sepIdx = idx, p.children[ci+1], ci
	}
	l := &w.nodes[left]
	r := &w.nodes[right]
	sep := p.keys[sepIdx]

	l.keys = append(l.keys, sep)
	l.keys = append(l.keys, r.keys...)
	for _, c := range r.children {
		w.nodes[c].parent = left
	}
	l.children = append(l.children, r.children...)
	p.keys = removeAt(p.keys, sepIdx)
	p.children = removeChildAt(p.children, sepIdx+1)

	// The consumed slot stays in the arena but is unreachable from the
	// root; metrics walk from the root, so it never counts.
	rID := r.id
	r.keys, r.children, r.parent = nil, nil, none
	w.merges++

	o.emit(StepMerge, map[int64]Highlight{
		l.id: HighlightMerging,
		p.id: HighlightRemoving,
	}, nil, "merged node %d, separator %d, and node %d into node %d",
		l.id, sep, rID, l.id)
}

// collapseRoot shrinks the tree when repairs drained the root: a keyless
// root with one child hands the root role to that child; a keyless
// childless root empties the tree.
func (o *op) collapseRoot() {
	w := o.t
	if w.root == none {
		return
	}
	root := &w.nodes[w.root]
	if len(root.keys) > 0 {
		return
	}
	if len(root.children) == 1 {
		child := root.children[0]
		root.children = nil
		w.nodes[child].parent = none
		w.root = child
		o.emit(StepShrink, hl(w.nodes[child].id, HighlightMerging), nil,
			"root emptied; node %d becomes the new root and the tree loses a level",
			w.nodes[child].id)

		return
	}
	w.root = none
	o.emit(StepShrink, nil, nil, "last key removed; the tree is now empty")
}

// childSlot finds idx among the parent's children.
func childSlot(p *node, idx int) int {
	for i, c := range p.children {
		if c == idx {
			return i
		}
	}

	// Unreachable for a consistent arena.
	return -1
}

// removeAt returns keys with the key at position i deleted.
func removeAt(keys []int64, i int) []int64 {
	return append(keys[:i], keys[i+1:]...)
}

// removeChildAt returns children with the index at position i deleted.
func removeChildAt(children []int, i int) []int {
	return append(children[:i], children[i+1:]...)
}
