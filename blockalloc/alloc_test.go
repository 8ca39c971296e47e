package blockalloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/algowalk/blockalloc"
)

// holes builds a 12-block disk with two free runs of different lengths:
// blocks 2..6 (length 5) and blocks 9..10 (length 2).
func holes(t *testing.T) *blockalloc.Disk {
	t.Helper()
	d, err := blockalloc.NewDisk(12)
	require.NoError(t, err)

	for _, a := range []struct {
		file string
		size int
	}{
		{"A", 2}, {"B", 5}, {"C", 2}, {"D", 2}, {"E", 1},
	} {
		_, err := blockalloc.Allocate(d, a.file, a.size, blockalloc.FirstFit)
		require.NoError(t, err)
	}
	for _, f := range []string{"B", "D"} {
		_, err := blockalloc.Free(d, f)
		require.NoError(t, err)
	}

	return d
}

func terminal(t *testing.T, steps []blockalloc.Step) blockalloc.Step {
	t.Helper()
	require.NotEmpty(t, steps)

	return steps[len(steps)-1]
}

func TestNewDisk_Validation(t *testing.T) {
	_, err := blockalloc.NewDisk(0)
	assert.ErrorIs(t, err, blockalloc.ErrBadDiskSize)

	d, err := blockalloc.NewDisk(8)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Size())
	assert.Equal(t, blockalloc.Metrics{FreeBlocks: 8, FreeRuns: 1, LargestRun: 8}, d.Metrics())
}

func TestAllocate_Validation(t *testing.T) {
	d, err := blockalloc.NewDisk(4)
	require.NoError(t, err)

	_, err = blockalloc.Allocate(nil, "A", 1, blockalloc.FirstFit)
	assert.ErrorIs(t, err, blockalloc.ErrNilDisk)

	_, err = blockalloc.Allocate(d, "", 1, blockalloc.FirstFit)
	assert.ErrorIs(t, err, blockalloc.ErrEmptyFile)

	_, err = blockalloc.Allocate(d, "A", 0, blockalloc.FirstFit)
	assert.ErrorIs(t, err, blockalloc.ErrBadSize)

	_, err = blockalloc.Allocate(d, "A", 1, blockalloc.Strategy(9))
	assert.ErrorIs(t, err, blockalloc.ErrBadStrategy)

	_, err = blockalloc.Allocate(d, "A", 2, blockalloc.FirstFit)
	require.NoError(t, err)
	_, err = blockalloc.Allocate(d, "A", 1, blockalloc.FirstFit)
	assert.ErrorIs(t, err, blockalloc.ErrFileExists)
}

func TestAllocate_FirstFitTakesEarliestRun(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Allocate(d, "F", 2, blockalloc.FirstFit)
	require.NoError(t, err)

	assert.Equal(t, "F", d.Owner(2))
	assert.Equal(t, "F", d.Owner(3))
	assert.Equal(t, blockalloc.StepDone, terminal(t, steps).Kind)

	// First-fit stops scanning at the first run that fits.
	scans := 0
	for _, st := range steps {
		if st.Kind == blockalloc.StepScan {
			scans++
		}
	}
	assert.Equal(t, 1, scans)
}

func TestAllocate_BestFitTakesTightestRun(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Allocate(d, "F", 2, blockalloc.BestFit)
	require.NoError(t, err)

	// The length-2 run at block 9 wastes nothing; the length-5 run stays
	// whole for a larger request.
	assert.Equal(t, "F", d.Owner(9))
	assert.Equal(t, "F", d.Owner(10))
	assert.Equal(t, "", d.Owner(2))

	// Best-fit must examine every run before choosing.
	scans := 0
	for _, st := range steps {
		if st.Kind == blockalloc.StepScan {
			scans++
		}
	}
	assert.Equal(t, 2, scans)
}

func TestAllocate_WorstFitTakesLargestRun(t *testing.T) {
	d := holes(t)

	_, err := blockalloc.Allocate(d, "F", 2, blockalloc.WorstFit)
	require.NoError(t, err)

	assert.Equal(t, "F", d.Owner(2))
	assert.Equal(t, "", d.Owner(9))
}

func TestAllocate_NoFitLeavesDiskUntouched(t *testing.T) {
	d := holes(t)
	before := d.Blocks()

	steps, err := blockalloc.Allocate(d, "F", 6, blockalloc.FirstFit)
	require.NoError(t, err)

	last := terminal(t, steps)
	assert.Equal(t, blockalloc.StepNoFit, last.Kind)
	assert.Equal(t, before, d.Blocks())
	// Even though the total free space (7 blocks) would cover the request,
	// no single run does. That is the fragmentation lesson.
	assert.Equal(t, 7, last.Metrics.FreeBlocks)
	assert.Equal(t, 5, last.Metrics.LargestRun)
}

func TestFree_ReleasesExtent(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Free(d, "C")
	require.NoError(t, err)

	assert.Equal(t, "", d.Owner(7))
	assert.Equal(t, "", d.Owner(8))
	assert.Equal(t, blockalloc.StepDone, terminal(t, steps).Kind)

	// Freeing C joins the two free runs around it into one big one.
	assert.Equal(t, blockalloc.Metrics{FreeBlocks: 9, FreeRuns: 1, LargestRun: 9}, d.Metrics())
}

func TestFree_UnknownFile(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Free(d, "Z")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, blockalloc.StepNotFound, steps[0].Kind)

	_, err = blockalloc.Free(nil, "A")
	assert.ErrorIs(t, err, blockalloc.ErrNilDisk)
	_, err = blockalloc.Free(d, "")
	assert.ErrorIs(t, err, blockalloc.ErrEmptyFile)
}

func TestSteps_AreCopies(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Allocate(d, "F", 2, blockalloc.FirstFit)
	require.NoError(t, err)

	// The scan frame predates the write; it must keep showing free blocks
	// even though the live disk has moved on.
	assert.Equal(t, "", steps[0].Blocks[2])
	assert.Equal(t, "F", d.Owner(2))

	_, err = blockalloc.Free(d, "F")
	require.NoError(t, err)
	assert.Equal(t, "F", terminal(t, steps).Blocks[2])
}

func TestAllocate_MarksFollowTheRun(t *testing.T) {
	d := holes(t)

	steps, err := blockalloc.Allocate(d, "F", 2, blockalloc.BestFit)
	require.NoError(t, err)

	var wrote *blockalloc.Step
	for i := range steps {
		if steps[i].Kind == blockalloc.StepWrite {
			wrote = &steps[i]
		}
	}
	require.NotNil(t, wrote)
	assert.Equal(t, blockalloc.MarkWritten, wrote.Marks[9])
	assert.Equal(t, blockalloc.MarkWritten, wrote.Marks[10])
	_, marked := wrote.Marks[2]
	assert.False(t, marked)
}
