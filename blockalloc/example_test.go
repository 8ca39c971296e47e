package blockalloc_test

import (
	"fmt"

	"github.com/algowalk/algowalk/blockalloc"
)

// ExampleAllocate replays best-fit on a fragmented disk: the scan probes
// both free runs and commits to the tighter one.
func ExampleAllocate() {
	d, _ := blockalloc.NewDisk(12)
	for _, a := range []struct {
		file string
		size int
	}{
		{"A", 2}, {"B", 5}, {"C", 2}, {"D", 2}, {"E", 1},
	} {
		_, _ = blockalloc.Allocate(d, a.file, a.size, blockalloc.FirstFit)
	}
	_, _ = blockalloc.Free(d, "B")
	_, _ = blockalloc.Free(d, "D")

	steps, _ := blockalloc.Allocate(d, "F", 2, blockalloc.BestFit)
	for _, st := range steps {
		fmt.Println(st.Message)
	}
	// Output:
	// run at block 2, length 5: fits
	// run at block 9, length 2: fits
	// best-fit takes the tightest run, at block 9 (length 2)
	// wrote F across blocks 9..10
	// allocation of F complete
}

// ExampleFree shows a release merging the free space around it.
func ExampleFree() {
	d, _ := blockalloc.NewDisk(6)
	_, _ = blockalloc.Allocate(d, "A", 2, blockalloc.FirstFit)
	_, _ = blockalloc.Allocate(d, "B", 2, blockalloc.FirstFit)

	steps, _ := blockalloc.Free(d, "A")
	for _, st := range steps {
		fmt.Println(st.Message)
	}
	m := d.Metrics()
	fmt.Printf("free=%d runs=%d largest=%d\n", m.FreeBlocks, m.FreeRuns, m.LargestRun)
	// Output:
	// released 2 block(s) owned by A
	// free of A complete
	// free=4 runs=2 largest=2
}
