package blockalloc

import "fmt"

// op accumulates the frames of one allocation or free.
type op struct {
	d     *Disk
	steps []Step
}

// emit appends one frame with a fresh copy of the disk surface.
func (o *op) emit(kind StepKind, marks map[int]Mark, format string, args ...any) {
	o.steps = append(o.steps, Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Blocks:  o.d.Blocks(),
		Marks:   marks,
		Metrics: o.d.Metrics(),
	})
}

// markRun highlights every block of a run with the same mark.
func markRun(r run, m Mark) map[int]Mark {
	marks := make(map[int]Mark, r.length)
	for i := r.start; i < r.start+r.length; i++ {
		marks[i] = m
	}

	return marks
}

// Allocate claims a contiguous extent of size blocks for file, placed
// according to strategy, and returns the full step sequence. The disk is
// mutated only when a run fits; a request no run can hold ends with a
// terminal StepNoFit frame and leaves the disk untouched. A no-fit is an
// outcome of the lesson, not a failure, so it never surfaces as an error.
func Allocate(d *Disk, file string, size int, strategy Strategy) ([]Step, error) {
	switch {
	case d == nil:
		return nil, ErrNilDisk
	case file == "":
		return nil, ErrEmptyFile
	case size < 1:
		return nil, ErrBadSize
	case strategy > WorstFit:
		return nil, ErrBadStrategy
	case d.Owns(file):
		return nil, ErrFileExists
	}

	o := &op{d: d}
	chosen, ok := o.scan(size, strategy)
	if !ok {
		o.emit(StepNoFit, nil, "no free run can hold %d block(s) for %s", size, file)

		return o.steps, nil
	}

	for i := chosen.start; i < chosen.start+size; i++ {
		d.blocks[i] = file
	}
	o.emit(StepWrite, markRun(run{start: chosen.start, length: size}, MarkWritten),
		"wrote %s across blocks %d..%d", file, chosen.start, chosen.start+size-1)
	o.emit(StepDone, nil, "allocation of %s complete", file)

	return o.steps, nil
}

// scan walks the free runs in disk order, narrating each probe, and
// returns the run the strategy settles on. First-fit stops at the first
// run that fits; best-fit and worst-fit must see every run before
// choosing. Ties keep the earlier run.
func (o *op) scan(size int, strategy Strategy) (run, bool) {
	var (
		chosen run
		found  bool
	)
	for _, r := range o.d.freeRuns() {
		if r.length < size {
			o.emit(StepScan, markRun(r, MarkScanned),
				"run at block %d, length %d: too small for %d block(s)", r.start, r.length, size)

			continue
		}
		o.emit(StepScan, markRun(r, MarkScanned),
			"run at block %d, length %d: fits", r.start, r.length)

		switch {
		case !found:
			chosen, found = r, true
		case strategy == BestFit && r.length < chosen.length:
			chosen = r
		case strategy == WorstFit && r.length > chosen.length:
			chosen = r
		}
		if strategy == FirstFit {
			break
		}
	}
	if !found {
		return run{}, false
	}

	switch strategy {
	case BestFit:
		o.emit(StepChoose, markRun(chosen, MarkChosen),
			"best-fit takes the tightest run, at block %d (length %d)", chosen.start, chosen.length)
	case WorstFit:
		o.emit(StepChoose, markRun(chosen, MarkChosen),
			"worst-fit takes the largest run, at block %d (length %d)", chosen.start, chosen.length)
	default:
		o.emit(StepChoose, markRun(chosen, MarkChosen),
			"first-fit takes the first run that fits, at block %d", chosen.start)
	}

	return chosen, true
}

// Free releases every block owned by file and returns the step sequence.
// Naming a file that owns nothing ends with a terminal StepNotFound frame,
// mirroring how Allocate reports a no-fit.
func Free(d *Disk, file string) ([]Step, error) {
	switch {
	case d == nil:
		return nil, ErrNilDisk
	case file == "":
		return nil, ErrEmptyFile
	}

	o := &op{d: d}
	marks := make(map[int]Mark)
	for i, owner := range d.blocks {
		if owner == file {
			marks[i] = MarkFreed
		}
	}
	if len(marks) == 0 {
		o.emit(StepNotFound, nil, "%s owns no blocks", file)

		return o.steps, nil
	}

	for i := range marks {
		d.blocks[i] = ""
	}
	o.emit(StepFree, marks, "released %d block(s) owned by %s", len(marks), file)
	o.emit(StepDone, nil, "free of %s complete", file)

	return o.steps, nil
}
