// Session boundary: owns the live tree, hands out pull-based Runs over
// step sequences, and installs an operation's final snapshot only when
// the caller accepts it. This is the surface a UI shell drives.

package btree

import "fmt"

// OpKind names the operation a PresetOp performs.
type OpKind int

const (
	// OpInsert inserts the key.
	OpInsert OpKind = iota

	// OpDelete deletes the key.
	OpDelete

	// OpSearch searches for the key.
	OpSearch
)

// String returns the lowercase operation name.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	default:
		return "unknown"
	}
}

// PresetOp is one scripted operation for LoadPreset.
type PresetOp struct {
	Kind OpKind
	Key  int64
}

// Session owns a live tree and serializes operations against it: only
// one Run may be in flight at a time. The live tree is replaced only
// when a Run's final step is pulled; abandoning a Run midway leaves the
// live tree exactly as it was.
type Session struct {
	tree    *Tree
	pending *Run
}

// NewSession constructs a session around a fresh empty tree.
// Returns ErrInvalidOrder for an order below MinOrder.
func NewSession(opts ...Option) (*Session, error) {
	t, err := NewTree(opts...)
	if err != nil {
		return nil, err
	}

	return &Session{tree: t}, nil
}

// Order returns the live tree's configured order.
func (s *Session) Order() int { return s.tree.order }

// Metrics returns the live tree's derived summary.
func (s *Session) Metrics() Metrics { return s.tree.Metrics() }

// Keys returns the live tree's keys in ascending order.
func (s *Session) Keys() []int64 { return s.tree.Keys() }

// Tree returns a deep snapshot of the live tree.
func (s *Session) Tree() *Tree { return s.tree.Clone() }

// Insert starts an insert operation and returns its Run.
func (s *Session) Insert(key int64) (*Run, error) { return s.start(OpInsert, key) }

// Delete starts a delete operation and returns its Run.
func (s *Session) Delete(key int64) (*Run, error) { return s.start(OpDelete, key) }

// Search starts a read-only search operation and returns its Run.
func (s *Session) Search(key int64) (*Run, error) { return s.start(OpSearch, key) }

// start materializes the step sequence for one operation. The engine is
// deterministic and bounded, so eager materialization is semantically
// equivalent to lazy generation; the Run supplies the pull-based surface.
func (s *Session) start(kind OpKind, key int64) (*Run, error) {
	if s.pending != nil {
		return nil, fmt.Errorf("%w: drain or abandon the %s run first",
			ErrOperationInFlight, s.pending.kind)
	}

	var steps []Step
	var err error
	switch kind {
	case OpInsert:
		steps, err = Insert(s.tree, key)
	case OpDelete:
		steps, err = Delete(s.tree, key)
	case OpSearch:
		steps, err = Search(s.tree, key)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPresetOp, kind)
	}
	if err != nil {
		return nil, err
	}

	r := &Run{session: s, kind: kind, key: key, steps: steps}
	s.pending = r

	return r, nil
}

// Reset abandons nothing and discards everything: the live tree becomes
// a fresh empty tree of the same order with zeroed counters. Returns
// ErrOperationInFlight if a Run is still pending.
func (s *Session) Reset() error {
	if s.pending != nil {
		return fmt.Errorf("%w: drain or abandon the %s run first",
			ErrOperationInFlight, s.pending.kind)
	}
	s.tree = &Tree{order: s.tree.order, root: none}

	return nil
}

// LoadPreset applies a scripted sequence of operations, draining each
// run internally. Returns ErrOperationInFlight if a Run is pending and
// ErrUnknownPresetOp for a bad op kind; domain outcomes (duplicates,
// absent keys) are normal steps and do not stop the script.
func (s *Session) LoadPreset(ops []PresetOp) error {
	for _, p := range ops {
		switch p.Kind {
		case OpInsert, OpDelete, OpSearch:
		default:
			return fmt.Errorf("%w: %d", ErrUnknownPresetOp, p.Kind)
		}
		r, err := s.start(p.Kind, p.Key)
		if err != nil {
			return err
		}
		r.Drain()
	}

	return nil
}

// Run is a pull-based cursor over one operation's materialized step
// sequence. Pulling the final step commits the operation: the session's
// live tree is replaced by the final snapshot (for a search, an
// identical copy). An unfinished Run can be Abandoned at any point with
// no effect on the live tree.
type Run struct {
	session *Session
	kind    OpKind
	key     int64
	steps   []Step
	next    int
	done    bool
}

// Kind returns the operation this run animates.
func (r *Run) Kind() OpKind { return r.kind }

// Key returns the operation's key.
func (r *Run) Key() int64 { return r.key }

// Len returns the total number of steps in the sequence.
func (r *Run) Len() int { return len(r.steps) }

// Next returns the next step, or false when the sequence is exhausted
// or the run was abandoned. Pulling the last step installs its tree as
// the session's live tree and clears the in-flight state.
func (r *Run) Next() (Step, bool) {
	if r.done || r.next >= len(r.steps) {
		return Step{}, false
	}
	st := r.steps[r.next]
	r.next++
	if r.next == len(r.steps) {
		r.commit(st)
	}

	return st, true
}

// Drain pulls every remaining step and returns them in order.
func (r *Run) Drain() []Step {
	var out []Step
	for {
		st, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, st)
	}
}

// Abandon cancels an unfinished run. The live tree is untouched; the
// session may start a new operation immediately.
func (r *Run) Abandon() {
	if r.done {
		return
	}
	r.done = true
	if r.session != nil && r.session.pending == r {
		r.session.pending = nil
	}
}

// commit installs the final step's snapshot as the live tree. The
// snapshot is cloned once more so the step handed to the caller stays
// isolated from future mutations.
func (r *Run) commit(last Step) {
	r.done = true
	if r.session == nil {
		return
	}
	r.session.tree = last.Tree.Clone()
	if r.session.pending == r {
		r.session.pending = nil
	}
}
