package main

import (
	"fmt"

	"github.com/algowalk/algowalk/blockalloc"
	"github.com/algowalk/algowalk/deadlock"
	"github.com/algowalk/algowalk/paths"
)

// runPaths replays Dijkstra on the two-route diamond, then Bellman-Ford on
// a graph Dijkstra must refuse.
func runPaths() error {
	g := paths.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 3)
	_ = g.AddEdge("B", "D", 2)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 10)

	fmt.Println("\n== dijkstra from A ==")
	steps, err := paths.Dijkstra(g, "A")
	if err != nil {
		return err
	}
	for _, st := range steps {
		renderPathStep(g, st)
	}

	neg := paths.NewGraph()
	_ = neg.AddEdge("A", "C", 2)
	_ = neg.AddEdge("A", "B", 5)
	_ = neg.AddEdge("B", "C", -4)

	fmt.Println("\n== bellman-ford from A (negative edge) ==")
	steps, err = paths.BellmanFord(neg, "A")
	if err != nil {
		return err
	}
	for _, st := range steps {
		renderPathStep(neg, st)
	}

	return nil
}

// runDeadlock replays the classic circular wait between two processes.
func runDeadlock() error {
	sys := deadlock.NewSystem()
	for _, p := range []string{"P1", "P2", "P3"} {
		_ = sys.AddProcess(p)
	}
	for _, r := range []string{"R1", "R2", "R3"} {
		_ = sys.AddResource(r)
	}
	_ = sys.Hold("P1", "R1")
	_ = sys.Hold("P2", "R2")
	_ = sys.Hold("P3", "R3")
	_ = sys.Wait("P1", "R2")
	_ = sys.Wait("P2", "R1")

	fmt.Println("\n== wait-for graph detection ==")
	steps, err := deadlock.Detect(sys)
	if err != nil {
		return err
	}
	for _, st := range steps {
		renderDeadlockStep(sys, st)
	}

	return nil
}

// runBlockAlloc fragments a small disk, then shows how the three fits
// place the same request differently.
func runBlockAlloc() error {
	d, err := blockalloc.NewDisk(12)
	if err != nil {
		return err
	}

	fmt.Println("\n== filling the disk ==")
	for _, a := range []struct {
		file string
		size int
	}{
		{"A", 2}, {"B", 5}, {"C", 2}, {"D", 2}, {"E", 1},
	} {
		if err := replayAlloc(d, a.file, a.size, blockalloc.FirstFit); err != nil {
			return err
		}
	}

	fmt.Println("\n== punching holes ==")
	for _, f := range []string{"B", "D"} {
		steps, err := blockalloc.Free(d, f)
		if err != nil {
			return err
		}
		for _, st := range steps {
			renderDiskStep(st)
		}
	}

	fmt.Println("\n== best-fit placement ==")

	return replayAlloc(d, "F", 2, blockalloc.BestFit)
}

func replayAlloc(d *blockalloc.Disk, file string, size int, strategy blockalloc.Strategy) error {
	steps, err := blockalloc.Allocate(d, file, size, strategy)
	if err != nil {
		return err
	}
	for _, st := range steps {
		renderDiskStep(st)
	}

	return nil
}
