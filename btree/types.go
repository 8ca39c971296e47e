// Package btree defines the core types, configuration options, and
// sentinel errors for the step-emitting B-tree engine.
//
// The engine animates a balanced multiway search tree of configurable
// order M: every mutation (Insert, Delete) and every read (Search) is
// expressed as an ordered sequence of immutable Step snapshots that a
// caller replays one at a time. Each Step carries a deep copy of the
// tree, a highlight map describing what the step touched, a
// human-readable message, and the metrics as of that instant.
//
// Options:
//
//	– WithOrder(m): maximum number of children per node (m ≥ 3).
//	  Max keys per node is m-1; min keys per non-root node is ⌈m/2⌉-1.
//	  Default is 3 (the most aggressive splitting, ideal for teaching).
//
// Errors (sentinel):
//
//	– ErrInvalidOrder        if WithOrder is given m < 3.
//	– ErrNilTree             if a nil *Tree is passed to an engine.
//	– ErrOperationInFlight   if a Session is asked to start an operation
//	                         while a previous Run is still unconsumed.
//	– ErrUnknownPresetOp     if LoadPreset encounters an unknown OpKind.
//
// Domain outcomes are NOT errors: a duplicate insert, a delete/search of
// an absent key, and an operation against an empty tree all terminate
// with an explanatory Step (StepDuplicate, StepNotFound, StepEmptyTree)
// and leave the tree unchanged.
package btree

import (
	"errors"
	"fmt"
)

// MinOrder is the smallest order for which the min/max key invariants
// are satisfiable. A tree of order 2 could hold at most one key per node
// and could not redistribute on underflow.
const MinOrder = 3

// DefaultOrder is the order used when WithOrder is not supplied.
const DefaultOrder = 3

// Sentinel errors for tree configuration and session control.
var (
	// ErrInvalidOrder indicates WithOrder was given a value below MinOrder.
	ErrInvalidOrder = errors.New("btree: order must be at least 3")

	// ErrNilTree indicates a nil *Tree was passed to Insert, Delete,
	// Search, or Validate.
	ErrNilTree = errors.New("btree: tree is nil")

	// ErrOperationInFlight indicates a Session method was called while a
	// previous operation's Run had not been drained or abandoned.
	ErrOperationInFlight = errors.New("btree: previous operation still in flight")

	// ErrUnknownPresetOp indicates a PresetOp carried an OpKind the
	// session does not recognize.
	ErrUnknownPresetOp = errors.New("btree: unknown preset operation kind")

	// ErrInvariant is the root of all invariant-violation reports from
	// Validate; inspect with errors.Is.
	ErrInvariant = errors.New("btree: invariant violation")
)

// Options configures tree construction.
type Options struct {
	// Order is the maximum number of children per node (M). Max keys per
	// node is Order-1.
	Order int

	// internal error recorded during option parsing; surfaced by NewTree.
	err error
}

// Option represents a functional option for configuring a Tree.
type Option func(*Options)

// DefaultOptions returns Options with the default order.
func DefaultOptions() Options {
	return Options{Order: DefaultOrder}
}

// WithOrder sets the tree order M. Values below MinOrder are recorded as
// an error and surfaced as ErrInvalidOrder by NewTree; invalid orders
// are rejected before any tree exists.
func WithOrder(m int) Option {
	return func(o *Options) {
		if m < MinOrder {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidOrder, m)
			return
		}
		o.Order = m
	}
}

// Highlight is a semantic marker attached to a node (or a key within a
// node) by a Step, telling the renderer why that node matters right now.
type Highlight int

const (
	// HighlightNone marks nothing; zero value.
	HighlightNone Highlight = iota

	// HighlightSearching marks the node currently being scanned during a
	// descent.
	HighlightSearching

	// HighlightComparing marks the key a comparison stopped at.
	HighlightComparing

	// HighlightInserting marks the node (or key) receiving an insertion.
	HighlightInserting

	// HighlightSplitting marks an overflowing node being split.
	HighlightSplitting

	// HighlightPromoting marks the node receiving a promoted separator.
	HighlightPromoting

	// HighlightMerging marks the surviving node of a merge.
	HighlightMerging

	// HighlightBorrowing marks the nodes involved in a redistribution.
	HighlightBorrowing

	// HighlightRemoving marks the node (or key) a deletion is taking
	// a key from.
	HighlightRemoving

	// HighlightFound marks a matched key.
	HighlightFound
)

// String returns the lowercase name of the highlight kind.
func (h Highlight) String() string {
	switch h {
	case HighlightSearching:
		return "searching"
	case HighlightComparing:
		return "comparing"
	case HighlightInserting:
		return "inserting"
	case HighlightSplitting:
		return "splitting"
	case HighlightPromoting:
		return "promoting"
	case HighlightMerging:
		return "merging"
	case HighlightBorrowing:
		return "borrowing"
	case HighlightRemoving:
		return "removing"
	case HighlightFound:
		return "found"
	default:
		return "none"
	}
}

// StepKind classifies what an emitted Step shows.
type StepKind int

const (
	// StepCompare shows the comparisons made while scanning one node.
	StepCompare StepKind = iota

	// StepInsert shows a key landing in a leaf at its sorted position.
	StepInsert

	// StepDuplicate terminates an insert whose key already exists.
	StepDuplicate

	// StepSplit shows an overflowing node about to split.
	StepSplit

	// StepPromote shows a separator key promoted into an existing parent.
	StepPromote

	// StepNewRoot shows a promoted key forming a brand-new root.
	StepNewRoot

	// StepRemove shows a key deleted from a leaf.
	StepRemove

	// StepSubstitute shows an internal key replaced by its in-order
	// predecessor.
	StepSubstitute

	// StepBorrowLeft shows a rotation through the parent from the left
	// sibling.
	StepBorrowLeft

	// StepBorrowRight shows a rotation through the parent from the right
	// sibling.
	StepBorrowRight

	// StepMerge shows an underflowing node folded together with a
	// separator and a sibling.
	StepMerge

	// StepShrink shows the root collapsing (height drops, or the tree
	// becomes empty).
	StepShrink

	// StepFound terminates a search that matched.
	StepFound

	// StepNotFound terminates a search or delete that found nothing.
	StepNotFound

	// StepEmptyTree terminates an operation against an empty tree.
	StepEmptyTree

	// StepDone terminates a completed mutation.
	StepDone
)

// String returns a short human-readable label for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepCompare:
		return "compare"
	case StepInsert:
		return "insert"
	case StepDuplicate:
		return "duplicate"
	case StepSplit:
		return "split"
	case StepPromote:
		return "promote"
	case StepNewRoot:
		return "new root"
	case StepRemove:
		return "remove"
	case StepSubstitute:
		return "substitute"
	case StepBorrowLeft:
		return "borrow left"
	case StepBorrowRight:
		return "borrow right"
	case StepMerge:
		return "merge"
	case StepShrink:
		return "shrink"
	case StepFound:
		return "found"
	case StepNotFound:
		return "not found"
	case StepEmptyTree:
		return "empty tree"
	case StepDone:
		return "operation complete"
	default:
		return "unknown"
	}
}

// Metrics is the derived summary of a tree, recomputed from the root
// after every emitted step rather than maintained incrementally, so a
// partially consumed operation can never leave the counters stale.
type Metrics struct {
	// Nodes is the number of nodes reachable from the root.
	Nodes int

	// Height is the number of levels; a lone leaf has height 1, an empty
	// tree height 0.
	Height int

	// TotalKeys is the key count summed across all reachable nodes.
	TotalKeys int

	// Splits is the cumulative split counter for the tree's lifetime.
	Splits int

	// Merges is the cumulative merge counter for the tree's lifetime.
	Merges int
}

// KeyMark attaches a Highlight to one key inside one node.
type KeyMark struct {
	// Node is the stable ID of the node holding the key.
	Node int64

	// Index is the key's position within the node at the time of the step.
	Index int

	// Mark is the semantic marker for that key.
	Mark Highlight
}

// Step is one immutable, fully-described intermediate state of an
// in-progress operation. The Tree field is a deep copy taken at emission
// time: later mutation of the live tree cannot corrupt a step already
// handed to the caller, and an abandoned operation never corrupts the
// live tree.
type Step struct {
	// Kind classifies the step.
	Kind StepKind

	// Message is the human-readable narration for this step.
	Message string

	// Tree is a deep snapshot of the tree at this instant.
	Tree *Tree

	// Nodes maps stable node IDs to their highlight markers.
	Nodes map[int64]Highlight

	// Keys carries optional per-key markers.
	Keys []KeyMark

	// Metrics is the derived summary as of this instant.
	Metrics Metrics
}
