package deadlock

import (
	"fmt"
	"maps"
	"strings"
)

// Visitation colors for the depth-first walk over the wait-for graph.
const (
	white = iota // not reached
	gray         // on the active search path
	black        // proved safe
)

// Detect runs deadlock detection over sys and returns the full step
// sequence.
//
// The wait-for graph has an edge P -> Q whenever P waits for a resource Q
// holds; a wait on an unheld resource produces no edge because P could
// simply acquire it. Detection is a depth-first search with three-color
// marking: the first back edge onto the active path closes a cycle and
// ends the run with a terminal StepCycle naming the deadlocked processes.
// If every process settles, the run ends with StepSafe.
//
// A deadlock is an outcome of the lesson, not a failure: it arrives as a
// step, never as an error. The only error is ErrNilSystem.
func Detect(sys *System) ([]Step, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}

	d := &detector{
		sys:   sys,
		state: make(map[string]int, len(sys.procs)),
		marks: make(map[string]Marker, len(sys.procs)),
	}
	for _, p := range sys.procs {
		if d.state[p] != white {
			continue
		}
		if cycle := d.visit(p); cycle != nil {
			d.report(cycle)

			return d.steps, nil
		}
	}
	d.emit(StepSafe, "no deadlock: every process can eventually run")

	return d.steps, nil
}

// detector carries the mutable state of one Detect call.
type detector struct {
	sys   *System
	state map[string]int
	stack []string
	marks map[string]Marker
	steps []Step
}

// visit walks the wait-for edges out of p. It returns the closed cycle the
// moment a back edge hits the active path, or nil when p settles safely.
func (d *detector) visit(p string) []string {
	d.state[p] = gray
	d.stack = append(d.stack, p)
	d.marks[p] = MarkOnStack
	d.emit(StepVisit, "visiting %s", p)

	for _, res := range d.sys.waitsOf(p) {
		q, held := d.sys.holder[res]
		if !held {
			d.emit(StepFollow, "%s waits for %s, which is free", p, res)

			continue
		}
		if q == p {
			// Holding and waiting on the same resource: a self-cycle.
			d.emit(StepFollow, "%s waits for %s, held by itself", p, res)

			return []string{p}
		}
		switch d.state[q] {
		case black:
			d.emit(StepFollow, "%s waits for %s held by %s, already proved safe", p, res, q)
		case gray:
			d.emit(StepFollow, "%s waits for %s held by %s, which is on the search path", p, res, q)

			return d.closeCycle(q)
		default:
			d.emit(StepFollow, "%s waits for %s held by %s", p, res, q)
			if cycle := d.visit(q); cycle != nil {
				return cycle
			}
		}
	}

	d.state[p] = black
	d.stack = d.stack[:len(d.stack)-1]
	d.marks[p] = MarkSafe
	d.emit(StepSettle, "%s settled; no cycle runs through it", p)

	return nil
}

// closeCycle slices the active path from the first occurrence of q onward.
func (d *detector) closeCycle(q string) []string {
	for i, v := range d.stack {
		if v == q {
			cycle := make([]string, len(d.stack)-i)
			copy(cycle, d.stack[i:])

			return cycle
		}
	}

	// q is gray, so it must be on the stack.
	panic(fmt.Sprintf("deadlock: %s marked on-stack but absent from path", q))
}

// report emits the terminal frame for a detected cycle.
func (d *detector) report(cycle []string) {
	for _, p := range cycle {
		d.marks[p] = MarkInCycle
	}
	st := Step{
		Kind:    StepCycle,
		Message: fmt.Sprintf("deadlock detected: %s -> %s", strings.Join(cycle, " -> "), cycle[0]),
		Marks:   maps.Clone(d.marks),
		Cycle:   cycle,
	}
	d.steps = append(d.steps, st)
}

func (d *detector) emit(kind StepKind, format string, args ...any) {
	d.steps = append(d.steps, Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Marks:   maps.Clone(d.marks),
	})
}
