// Insert engine: leaf insertion plus cascading median split/promote.

package btree

// Insert produces the step sequence for adding key to a clone of t. The
// final step's tree satisfies all order-M invariants; t itself is never
// modified (a Session installs the final snapshot once the caller pulls
// it).
//
// Outcomes:
//
//   - empty tree: a root leaf is created holding the single key.
//   - duplicate key: terminal StepDuplicate, tree unchanged (set
//     semantics; duplicates are rejected, not errors).
//   - otherwise: the key lands in its leaf, and every overflowing node
//     on the way up splits around its median (index ⌊keyCount/2⌋),
//     promoting the median into the parent, growing a new root if the
//     cascade reaches the top.
//
// Complexity: O(height) steps; each step costs O(M) plus the O(n)
// snapshot clone.
func Insert(t *Tree, key int64) ([]Step, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := newOp(t)
	w := o.t

	// 1) Empty tree: create a root leaf holding the single key.
	if w.root == none {
		r := w.newNode(none)
		w.nodes[r].keys = []int64{key}
		w.root = r
		id := w.nodes[r].id
		o.emit(StepInsert, hl(id, HighlightInserting),
			[]KeyMark{{Node: id, Index: 0, Mark: HighlightInserting}},
			"tree was empty; created root leaf node %d holding %d", id, key)
		o.emit(StepDone, nil, nil, "insert %d complete", key)

		return o.steps, nil
	}

	// 2) Walk down to the target leaf, one compare step per node.
	idx, pos, found := o.locate(key)

	// 3) Duplicate: report and terminate without modifying the tree.
	if found {
		id := w.nodes[idx].id
		o.emit(StepDuplicate, hl(id, HighlightFound),
			[]KeyMark{{Node: id, Index: pos, Mark: HighlightFound}},
			"%d is already present in node %d; tree unchanged", key, id)

		return o.steps, nil
	}

	// 4) Insert into the leaf at its sorted position.
	leaf := &w.nodes[idx]
	leaf.keys = insertAt(leaf.keys, pos, key)
	o.emit(StepInsert, hl(leaf.id, HighlightInserting),
		[]KeyMark{{Node: leaf.id, Index: pos, Mark: HighlightInserting}},
		"inserted %d into leaf node %d at position %d", key, leaf.id, pos)

	// 5) Cascading split: repair overflow upward until a node fits or a
	//    new root absorbs the promotion.
	for len(w.nodes[idx].keys) > w.maxKeys() {
		idx = o.split(idx)
	}

	// 6) Final step.
	o.emit(StepDone, nil, nil, "insert %d complete", key)

	return o.steps, nil
}

// split divides the overflowing node at arena index idx around its
// median, promotes the median, and returns the arena index to continue
// the overflow check at (the parent, or the left half when a new root
// was created and the cascade is over).
func (o *op) split(idx int) int {
	w := o.t

	// a) Mark the overflowing node.
	n := &w.nodes[idx]
	o.emit(StepSplit, hl(n.id, HighlightSplitting), nil,
		"node %d holds %d keys (max %d); splitting", n.id, len(n.keys), w.maxKeys())

	// b) The key at the median index is promoted.
	mid := len(n.keys) / 2
	promoted := n.keys[mid]

	// c) New right sibling takes everything strictly after the median;
	//    the node keeps everything strictly before it. newNode may grow
	//    the arena, so re-fetch pointers after it.
	right := w.newNode(n.parent)
	n = &w.nodes[idx]
	rn := &w.nodes[right]
	rn.keys = append([]int64(nil), n.keys[mid+1:]...)
	n.keys = append([]int64(nil), n.keys[:mid]...)
	if !n.leaf() {
		rn.children = append([]int(nil), n.children[mid+1:]...)
		n.children = append([]int(nil), n.children[:mid+1]...)
		for _, c := range rn.children {
			w.nodes[c].parent = right
		}
	}
	w.splits++

	// d) Root split: a new root holds only the promoted key with the two
	//    halves as its children. The loop terminates here: one key can
	//    never overflow for M ≥ 3.
	if n.parent == none {
		rootIdx := w.newNode(none)
		n = &w.nodes[idx]
		rn = &w.nodes[right]
		root := &w.nodes[rootIdx]
		root.keys = []int64{promoted}
		root.children = []int{idx, right}
		n.parent = rootIdx
		rn.parent = rootIdx
		w.root = rootIdx
		o.emit(StepNewRoot, map[int64]Highlight{
			root.id: HighlightPromoting,
			n.id:    HighlightSplitting,
			rn.id:   HighlightSplitting,
		}, []KeyMark{{Node: root.id, Index: 0, Mark: HighlightPromoting}},
			"promoted %d into new root node %d; tree grows a level", promoted, root.id)

		return idx
	}

	// e) Promote into the existing parent and continue the cascade there.
	p := &w.nodes[n.parent]
	pos, _ := p.search(promoted)
	p.keys = insertAt(p.keys, pos, promoted)
	p.children = insertChildAt(p.children, pos+1, right)
	o.emit(StepPromote, map[int64]Highlight{
		p.id:  HighlightPromoting,
		n.id:  HighlightSplitting,
		rn.id: HighlightSplitting,
	}, []KeyMark{{Node: p.id, Index: pos, Mark: HighlightPromoting}},
		"promoted %d into node %d; node %d is the new right sibling", promoted, p.id, rn.id)

	return n.parent
}

// insertAt returns keys with key inserted at position i.
func insertAt(keys []int64, i int, key int64) []int64 {
	keys = append(keys, 0)
	copy(keys[i+1:], keys[i:])
	keys[i] = key

	return keys
}

// insertChildAt returns children with child inserted at position i.
func insertChildAt(children []int, i, child int) []int {
	children = append(children, 0)
	copy(children[i+1:], children[i:])
	children[i] = child

	return children
}
