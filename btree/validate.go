package btree

import "fmt"

// bound is an optional key bound used while checking separator ordering.
type bound struct {
	val int64
	set bool
}

// Validate checks every structural invariant of the tree and returns a
// wrapped ErrInvariant naming the first violation, or nil. It is pure
// and safe to run against any Step snapshot:
//
//   - every node holds at most M-1 keys;
//   - every non-root node holds at least ⌈M/2⌉-1 keys;
//   - keys within a node are strictly ascending;
//   - children count is zero or exactly keys+1, with consistent parent
//     back-links;
//   - all leaves sit at the same depth;
//   - every key in children[i] is < keys[i], and every key in
//     children[i+1] is ≥ keys[i].
func Validate(t *Tree) error {
	if t == nil {
		return ErrNilTree
	}
	if t.root == none {
		return nil
	}
	if t.nodes[t.root].parent != none {
		return fmt.Errorf("%w: root node %d has a parent link", ErrInvariant, t.nodes[t.root].id)
	}

	leafDepth := -1
	var walk func(idx, depth int, lo, hi bound) error
	walk = func(idx, depth int, lo, hi bound) error {
		n := &t.nodes[idx]

		if len(n.keys) > t.maxKeys() {
			return fmt.Errorf("%w: node %d holds %d keys (max %d)",
				ErrInvariant, n.id, len(n.keys), t.maxKeys())
		}
		if idx != t.root && len(n.keys) < t.minKeys() {
			return fmt.Errorf("%w: non-root node %d holds %d keys (min %d)",
				ErrInvariant, n.id, len(n.keys), t.minKeys())
		}
		for i, k := range n.keys {
			if i > 0 && n.keys[i-1] >= k {
				return fmt.Errorf("%w: node %d keys not strictly ascending at position %d",
					ErrInvariant, n.id, i)
			}
			if lo.set && k < lo.val {
				return fmt.Errorf("%w: node %d key %d below separator bound %d",
					ErrInvariant, n.id, k, lo.val)
			}
			if hi.set && k >= hi.val {
				return fmt.Errorf("%w: node %d key %d at or above separator bound %d",
					ErrInvariant, n.id, k, hi.val)
			}
		}

		if n.leaf() {
			if leafDepth == -1 {
				leafDepth = depth
			}
			if depth != leafDepth {
				return fmt.Errorf("%w: leaf node %d at depth %d, expected %d",
					ErrInvariant, n.id, depth, leafDepth)
			}

			return nil
		}

		if len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("%w: node %d has %d children for %d keys",
				ErrInvariant, n.id, len(n.children), len(n.keys))
		}
		for i, c := range n.children {
			if t.nodes[c].parent != idx {
				return fmt.Errorf("%w: node %d child %d has a stale parent link",
					ErrInvariant, n.id, t.nodes[c].id)
			}
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = bound{val: n.keys[i-1], set: true}
			}
			if i < len(n.keys) {
				childHi = bound{val: n.keys[i], set: true}
			}
			if err := walk(c, depth+1, childLo, childHi); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(t.root, 1, bound{}, bound{})
}
