// Package deadlock simulates single-instance resource deadlock detection
// over a wait-for graph, one narrated step at a time.
//
// Errors:
//   - ErrNilSystem:       Detect called with a nil system.
//   - ErrEmptyID:         a process or resource name is empty.
//   - ErrUnknownProcess:  Hold/Wait names a process never added.
//   - ErrUnknownResource: Hold/Wait names a resource never added.
//   - ErrResourceHeld:    a second process tries to hold a resource.
package deadlock

import "errors"

var (
	// ErrNilSystem is returned when Detect receives a nil *System.
	ErrNilSystem = errors.New("deadlock: nil system")

	// ErrEmptyID is returned when a process or resource name is empty.
	ErrEmptyID = errors.New("deadlock: empty identifier")

	// ErrUnknownProcess is returned when an edge names an unregistered process.
	ErrUnknownProcess = errors.New("deadlock: unknown process")

	// ErrUnknownResource is returned when an edge names an unregistered resource.
	ErrUnknownResource = errors.New("deadlock: unknown resource")

	// ErrResourceHeld is returned when a single-instance resource would
	// acquire a second holder.
	ErrResourceHeld = errors.New("deadlock: resource already held")
)

// Marker labels a process in a Step so a renderer can color it.
type Marker uint8

const (
	// MarkNone means the process has not been reached yet.
	MarkNone Marker = iota
	// MarkOnStack means the process sits on the active search path.
	MarkOnStack
	// MarkSafe means the search proved no cycle runs through the process.
	MarkSafe
	// MarkInCycle means the process belongs to the reported deadlock cycle.
	MarkInCycle
)

// String returns a short human-readable label for the marker.
func (m Marker) String() string {
	switch m {
	case MarkOnStack:
		return "on-stack"
	case MarkSafe:
		return "safe"
	case MarkInCycle:
		return "in-cycle"
	default:
		return "none"
	}
}

// StepKind identifies what a detection step depicts.
type StepKind uint8

const (
	// StepVisit marks entry into a process during the search.
	StepVisit StepKind = iota
	// StepFollow marks following one wait-for edge out of a process.
	StepFollow
	// StepSettle marks a process proved safe; the search backtracks.
	StepSettle
	// StepCycle is the terminal step reporting a deadlock cycle.
	StepCycle
	// StepSafe is the terminal step reporting a deadlock-free system.
	StepSafe
)

// String returns a short human-readable label for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepVisit:
		return "visit"
	case StepFollow:
		return "follow"
	case StepSettle:
		return "settle"
	case StepCycle:
		return "deadlock"
	case StepSafe:
		return "safe"
	default:
		return "unknown"
	}
}

// Step is one immutable frame of a detection run. Marks is a private copy
// keyed by process name; later frames never mutate earlier ones.
type Step struct {
	// Kind classifies the frame.
	Kind StepKind
	// Message narrates the frame in one sentence.
	Message string
	// Marks carries the search state of every touched process.
	Marks map[string]Marker
	// Cycle lists the deadlocked processes in wait order. It is non-nil
	// only on a StepCycle frame and ends where it started conceptually:
	// the last process waits for the first.
	Cycle []string
}
