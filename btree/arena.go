// Arena node store: the tree is a flat slice of nodes linked by integer
// indices instead of pointers. Parent links are navigational only; the
// arena owns every node. Deep clone is a single slice copy, which is
// what makes the copy-on-step snapshot design cheap and safe.

package btree

import (
	"slices"
	"sync/atomic"
)

// none is the null arena index (no parent / no root).
const none = -1

// nodeIDs hands out stable node identities for the life of the process.
// IDs survive cloning and are never reused while any tree is alive, so a
// highlight emitted against an old snapshot still names the same node in
// a newer one.
var nodeIDs atomic.Int64

// node is one multiway tree node. keys are strictly ascending and
// unique; children holds one more index than keys, or none at all for a
// leaf.
type node struct {
	id       int64
	keys     []int64
	children []int
	parent   int
}

// search scans keys left to right, mirroring the shared search walk:
// it returns the match position and true, or the child slot to descend
// into and false.
func (n *node) search(key int64) (int, bool) {
	for i, k := range n.keys {
		if key == k {
			return i, true
		}
		if key < k {
			return i, false
		}
	}

	return len(n.keys), false
}

// leaf reports whether the node has no children.
func (n *node) leaf() bool { return len(n.children) == 0 }

// Tree is a balanced multiway search tree of a fixed order M, stored in
// an arena. The zero value is not usable; construct with NewTree.
type Tree struct {
	order  int
	root   int
	nodes  []node
	splits int
	merges int
}

// NewTree constructs an empty tree, applying any functional options.
// Returns ErrInvalidOrder if an order below MinOrder was requested.
func NewTree(opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Tree{order: o.Order, root: none}, nil
}

// Order returns the configured order M.
func (t *Tree) Order() int { return t.order }

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool { return t.root == none }

// maxKeys is the overflow threshold: a node may hold at most M-1 keys.
func (t *Tree) maxKeys() int { return t.order - 1 }

// minKeys is the underflow threshold for non-root nodes: ⌈M/2⌉-1.
func (t *Tree) minKeys() int { return (t.order+1)/2 - 1 }

// newNode appends a fresh node to the arena and returns its index.
// Callers must re-fetch any held *node pointers afterwards: the append
// may relocate the arena.
func (t *Tree) newNode(parent int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{id: nodeIDs.Add(1), parent: parent})

	return idx
}

// Clone returns a deep copy of the tree. Node IDs, arena indices, and
// the cumulative split/merge counters are preserved.
func (t *Tree) Clone() *Tree {
	cp := &Tree{
		order:  t.order,
		root:   t.root,
		splits: t.splits,
		merges: t.merges,
		nodes:  make([]node, len(t.nodes)),
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		cp.nodes[i] = node{
			id:       n.id,
			parent:   n.parent,
			keys:     slices.Clone(n.keys),
			children: slices.Clone(n.children),
		}
	}

	return cp
}

// NodeView is a read-only copy of one node, exposed for rendering and
// assertions. Children are arena indices usable with Tree.Node.
type NodeView struct {
	// ID is the node's stable identity (the key of Step highlight maps).
	ID int64

	// Keys is a copy of the node's keys, ascending.
	Keys []int64

	// Children holds the arena indices of the node's children; empty for
	// a leaf.
	Children []int

	// Leaf reports whether the node has no children.
	Leaf bool
}

// Root returns the arena index of the root, or -1 for an empty tree.
func (t *Tree) Root() int { return t.root }

// Node returns a read-only view of the node at arena index i.
func (t *Tree) Node(i int) NodeView {
	n := &t.nodes[i]

	return NodeView{
		ID:       n.id,
		Keys:     slices.Clone(n.keys),
		Children: slices.Clone(n.children),
		Leaf:     n.leaf(),
	}
}

// Keys returns every key in the tree in ascending order.
func (t *Tree) Keys() []int64 {
	if t.root == none {
		return nil
	}
	var out []int64
	var walk func(i int)
	walk = func(i int) {
		n := &t.nodes[i]
		if n.leaf() {
			out = append(out, n.keys...)
			return
		}
		for j, k := range n.keys {
			walk(n.children[j])
			out = append(out, k)
		}
		walk(n.children[len(n.children)-1])
	}
	walk(t.root)

	return out
}

// Metrics recomputes the derived summary by structural recursion from
// the current root. A nil root yields zero counts; the cumulative
// split/merge counters are carried from the tree itself.
func (t *Tree) Metrics() Metrics {
	m := Metrics{Splits: t.splits, Merges: t.merges}
	if t.root == none {
		return m
	}
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := &t.nodes[i]
		m.Nodes++
		m.TotalKeys += len(n.keys)
		if depth > m.Height {
			m.Height = depth
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 1)

	return m
}
