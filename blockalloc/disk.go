package blockalloc

import "slices"

// Disk is a flat array of blocks, each free or owned by exactly one file.
// Operations mutate the disk in place; the emitted steps carry copies, so
// earlier frames stay valid after later operations.
type Disk struct {
	blocks []string
}

// NewDisk returns an all-free disk of n blocks.
func NewDisk(n int) (*Disk, error) {
	if n < 1 {
		return nil, ErrBadDiskSize
	}

	return &Disk{blocks: make([]string, n)}, nil
}

// Size returns the total block count.
func (d *Disk) Size() int { return len(d.blocks) }

// Blocks returns a copy of the per-block owner table, "" for free.
func (d *Disk) Blocks() []string { return slices.Clone(d.blocks) }

// Owner returns the file owning block i, or "" when the block is free.
func (d *Disk) Owner(i int) string {
	if i < 0 || i >= len(d.blocks) {
		return ""
	}

	return d.blocks[i]
}

// Owns reports whether file owns at least one block.
func (d *Disk) Owns(file string) bool {
	return slices.Contains(d.blocks, file)
}

// Metrics recomputes the fragmentation summary from the current surface.
func (d *Disk) Metrics() Metrics {
	var m Metrics
	for _, r := range d.freeRuns() {
		m.FreeRuns++
		m.FreeBlocks += r.length
		m.LargestRun = max(m.LargestRun, r.length)
	}

	return m
}

// run is one maximal contiguous free extent.
type run struct {
	start  int
	length int
}

// freeRuns lists the maximal free extents from block 0 upward.
func (d *Disk) freeRuns() []run {
	var runs []run
	for i := 0; i < len(d.blocks); {
		if d.blocks[i] != "" {
			i++

			continue
		}
		start := i
		for i < len(d.blocks) && d.blocks[i] == "" {
			i++
		}
		runs = append(runs, run{start: start, length: i - start})
	}

	return runs
}
