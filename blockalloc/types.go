// Package blockalloc simulates contiguous block allocation on a tiny
// fixed-size disk, comparing first-fit, best-fit and worst-fit placement.
//
// Errors:
//   - ErrNilDisk:      an operation received a nil *Disk.
//   - ErrBadDiskSize:  NewDisk called with fewer than one block.
//   - ErrEmptyFile:    the file name is empty.
//   - ErrBadSize:      the requested extent is smaller than one block.
//   - ErrBadStrategy:  the strategy value is not one of the three fits.
//   - ErrFileExists:   Allocate for a file that already owns an extent.
package blockalloc

import "errors"

var (
	// ErrNilDisk is returned when an operation receives a nil *Disk.
	ErrNilDisk = errors.New("blockalloc: nil disk")

	// ErrBadDiskSize is returned by NewDisk for a non-positive block count.
	ErrBadDiskSize = errors.New("blockalloc: disk needs at least one block")

	// ErrEmptyFile is returned when a file name is empty.
	ErrEmptyFile = errors.New("blockalloc: empty file name")

	// ErrBadSize is returned when an allocation asks for less than one block.
	ErrBadSize = errors.New("blockalloc: size must be at least one block")

	// ErrBadStrategy is returned for a Strategy outside the known set.
	ErrBadStrategy = errors.New("blockalloc: unknown strategy")

	// ErrFileExists is returned when a file already owns an extent.
	ErrFileExists = errors.New("blockalloc: file already allocated")
)

// Strategy selects how Allocate picks among the free runs that fit.
type Strategy uint8

const (
	// FirstFit takes the first run large enough, scanning from block 0.
	FirstFit Strategy = iota
	// BestFit takes the smallest run large enough, wasting the least space.
	BestFit
	// WorstFit takes the largest run, leaving the roomiest leftover.
	WorstFit
)

// String returns a short human-readable label for the strategy.
func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	default:
		return "unknown"
	}
}

// Mark labels a block in a Step so a renderer can color it.
type Mark uint8

const (
	// MarkNone means the block plays no role in the frame.
	MarkNone Mark = iota
	// MarkScanned means the block belongs to a run the scan examined.
	MarkScanned
	// MarkChosen means the block belongs to the run the strategy picked.
	MarkChosen
	// MarkWritten means the block was just claimed by the new extent.
	MarkWritten
	// MarkFreed means the block was just released.
	MarkFreed
)

// String returns a short human-readable label for the mark.
func (m Mark) String() string {
	switch m {
	case MarkScanned:
		return "scanned"
	case MarkChosen:
		return "chosen"
	case MarkWritten:
		return "written"
	case MarkFreed:
		return "freed"
	default:
		return "none"
	}
}

// StepKind identifies what an allocation step depicts.
type StepKind uint8

const (
	// StepScan marks examining one free run.
	StepScan StepKind = iota
	// StepChoose marks the strategy committing to a run.
	StepChoose
	// StepWrite marks the extent landing on disk.
	StepWrite
	// StepNoFit is the terminal step when no free run can hold the extent.
	StepNoFit
	// StepFree marks a file's extent being released.
	StepFree
	// StepNotFound is the terminal step when Free names an unknown file.
	StepNotFound
	// StepDone closes every successful operation.
	StepDone
)

// String returns a short human-readable label for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepScan:
		return "scan"
	case StepChoose:
		return "choose"
	case StepWrite:
		return "write"
	case StepNoFit:
		return "no fit"
	case StepFree:
		return "free"
	case StepNotFound:
		return "not found"
	case StepDone:
		return "operation complete"
	default:
		return "unknown"
	}
}

// Metrics summarizes external fragmentation after a frame. A disk with one
// large free run is healthy; many small runs with no large one is the
// fragmentation lesson this package teaches.
type Metrics struct {
	// FreeBlocks counts unowned blocks.
	FreeBlocks int
	// FreeRuns counts maximal contiguous free extents.
	FreeRuns int
	// LargestRun is the length of the longest free extent.
	LargestRun int
}

// Step is one immutable frame of an allocation run. Blocks is a private
// copy of the disk surface at emission time; the empty string means free.
type Step struct {
	// Kind classifies the frame.
	Kind StepKind
	// Message narrates the frame in one sentence.
	Message string
	// Blocks is the per-block owner table, "" for free.
	Blocks []string
	// Marks highlights blocks by index.
	Marks map[int]Mark
	// Metrics is the fragmentation summary at this frame.
	Metrics Metrics
}
