package btree

import "fmt"

// op accumulates the step sequence for one operation. It works on a
// private clone of the caller's tree: the live tree is never touched,
// and every emitted step snapshots the clone again, so steps stay
// immutable even while the operation keeps mutating.
type op struct {
	t     *Tree
	steps []Step
}

func newOp(t *Tree) *op {
	return &op{t: t.Clone()}
}

// emit appends a step pairing a fresh deep snapshot with the given
// highlights, per-key marks, and formatted message. Metrics are
// recomputed from the snapshot's root on every emission.
func (o *op) emit(kind StepKind, nodes map[int64]Highlight, keys []KeyMark, format string, args ...any) {
	o.steps = append(o.steps, Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Tree:    o.t.Clone(),
		Nodes:   nodes,
		Keys:    keys,
		Metrics: o.t.Metrics(),
	})
}

// hl builds a single-node highlight map.
func hl(id int64, h Highlight) map[int64]Highlight {
	return map[int64]Highlight{id: h}
}
