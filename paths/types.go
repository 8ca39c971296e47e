// Package paths defines the shared types, options, and sentinel errors
// for the step-emitting shortest-path simulators (Dijkstra and
// Bellman-Ford).
//
// Both algorithms run over the package's small weighted digraph and
// produce an ordered sequence of immutable Step records instead of a
// bare distance table: one frame per settle or relaxation pass, each
// carrying copies of the distance and predecessor maps plus semantic
// markers for the vertices involved. Callers replay the frames to drive
// an animation.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the source vertex ID is empty.
//	– ErrVertexNotFound  if the source vertex is absent from the graph.
//	– ErrEmptyVertexID   if an edge or vertex uses an empty ID.
//	– ErrNegativeWeight  if Dijkstra meets a negative edge weight
//	                     (Bellman-Ford accepts them; that is its point).
//	– ErrBadMaxDistance  if WithMaxDistance is given a negative cap.
package paths

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable int64 = math.MaxInt64

// Sentinel errors shared by the shortest-path simulators.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrEmptySource indicates the provided source vertex ID is empty.
	ErrEmptySource = errors.New("paths: source vertex ID is empty")

	// ErrVertexNotFound indicates the source vertex does not exist in
	// the graph.
	ErrVertexNotFound = errors.New("paths: source vertex not found in graph")

	// ErrEmptyVertexID indicates an empty vertex ID in AddVertex/AddEdge.
	ErrEmptyVertexID = errors.New("paths: vertex ID is empty")

	// ErrNegativeWeight indicates Dijkstra detected a negative edge
	// weight during its upfront scan.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative
	// value.
	ErrBadMaxDistance = errors.New("paths: MaxDistance must be non-negative")
)

// Marker is a semantic highlight attached to a vertex by a Step.
type Marker int

const (
	// MarkNone marks nothing; zero value.
	MarkNone Marker = iota

	// MarkSource marks the source vertex.
	MarkSource

	// MarkSettled marks a vertex whose distance is final.
	MarkSettled

	// MarkRelaxed marks a vertex whose distance just improved.
	MarkRelaxed

	// MarkCycle marks a vertex reachable from a negative cycle.
	MarkCycle
)

// String returns the lowercase name of the marker.
func (m Marker) String() string {
	switch m {
	case MarkSource:
		return "source"
	case MarkSettled:
		return "settled"
	case MarkRelaxed:
		return "relaxed"
	case MarkCycle:
		return "cycle"
	default:
		return "none"
	}
}

// StepKind classifies what an emitted Step shows.
type StepKind int

const (
	// StepInit shows the initialized distance table (source at zero).
	StepInit StepKind = iota

	// StepSettle shows a vertex leaving the frontier with a final
	// distance (Dijkstra).
	StepSettle

	// StepRelax shows one improved edge relaxation (Dijkstra).
	StepRelax

	// StepPass summarizes one full edge sweep (Bellman-Ford).
	StepPass

	// StepNegativeCycle terminates Bellman-Ford on a reachable negative
	// cycle.
	StepNegativeCycle

	// StepDone terminates a completed computation.
	StepDone
)

// String returns a short human-readable label for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepInit:
		return "init"
	case StepSettle:
		return "settle"
	case StepRelax:
		return "relax"
	case StepPass:
		return "pass"
	case StepNegativeCycle:
		return "negative cycle"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Step is one immutable frame of an in-progress shortest-path run. The
// Dist and Prev maps are copies taken at emission time.
type Step struct {
	// Kind classifies the step.
	Kind StepKind

	// Message is the human-readable narration for this step.
	Message string

	// Dist maps vertex ID to the best-known distance at this instant
	// (Unreachable when none).
	Dist map[string]int64

	// Prev maps vertex ID to its predecessor on the best-known path;
	// absent for unreached vertices.
	Prev map[string]string

	// Marks maps vertex IDs to their semantic markers.
	Marks map[string]Marker
}

// Options configures the shortest-path simulators.
type Options struct {
	// MaxDistance caps exploration: vertices whose distance would exceed
	// it are not settled (Dijkstra only). Default is Unreachable, no cap.
	MaxDistance int64

	// internal error recorded during option parsing.
	err error
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Unreachable}
}

// WithMaxDistance caps the explored distance. Negative caps are
// recorded as an error and surfaced as ErrBadMaxDistance when the
// algorithm is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}
