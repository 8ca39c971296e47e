package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/algowalk/algowalk/blockalloc"
	"github.com/algowalk/algowalk/btree"
	"github.com/algowalk/algowalk/deadlock"
	"github.com/algowalk/algowalk/paths"
)

var (
	tagColor = color.New(color.FgHiBlack)

	nodePalette = map[btree.Highlight]*color.Color{
		btree.HighlightSearching: color.New(color.FgYellow),
		btree.HighlightComparing: color.New(color.FgYellow),
		btree.HighlightInserting: color.New(color.FgGreen),
		btree.HighlightSplitting: color.New(color.FgMagenta),
		btree.HighlightPromoting: color.New(color.FgMagenta),
		btree.HighlightMerging:   color.New(color.FgRed),
		btree.HighlightBorrowing: color.New(color.FgCyan),
		btree.HighlightRemoving:  color.New(color.FgRed),
		btree.HighlightFound:     color.New(color.FgGreen, color.Bold),
	}

	vertexPalette = map[paths.Marker]*color.Color{
		paths.MarkSource:  color.New(color.FgCyan, color.Bold),
		paths.MarkSettled: color.New(color.FgGreen),
		paths.MarkRelaxed: color.New(color.FgYellow),
		paths.MarkCycle:   color.New(color.FgRed, color.Bold),
	}

	processPalette = map[deadlock.Marker]*color.Color{
		deadlock.MarkOnStack: color.New(color.FgYellow),
		deadlock.MarkSafe:    color.New(color.FgGreen),
		deadlock.MarkInCycle: color.New(color.FgRed, color.Bold),
	}

	blockPalette = map[blockalloc.Mark]*color.Color{
		blockalloc.MarkScanned: color.New(color.FgYellow),
		blockalloc.MarkChosen:  color.New(color.FgCyan),
		blockalloc.MarkWritten: color.New(color.FgGreen, color.Bold),
		blockalloc.MarkFreed:   color.New(color.FgMagenta),
	}
)

func tag(kind fmt.Stringer) string {
	return tagColor.Sprintf("[%s]", kind)
}

// renderTreeStep prints one b-tree frame: narration, the tree drawn level
// by level with highlighted nodes and keys colored, and the metrics line.
func renderTreeStep(st btree.Step) {
	fmt.Printf("%s %s\n", tag(st.Kind), st.Message)
	if st.Tree != nil && !st.Tree.Empty() {
		drawTree(st)
	}
	m := st.Metrics
	fmt.Printf("    nodes=%d height=%d keys=%d splits=%d merges=%d\n",
		m.Nodes, m.Height, m.TotalKeys, m.Splits, m.Merges)
}

func drawTree(st btree.Step) {
	level := []int{st.Tree.Root()}
	for len(level) > 0 {
		var next []int
		cells := make([]string, 0, len(level))
		for _, idx := range level {
			nv := st.Tree.Node(idx)
			cells = append(cells, renderNode(st, nv))
			next = append(next, nv.Children...)
		}
		fmt.Printf("    %s\n", strings.Join(cells, "  "))
		level = next
	}
}

func renderNode(st btree.Step, nv btree.NodeView) string {
	keys := make([]string, len(nv.Keys))
	for i, k := range nv.Keys {
		keys[i] = fmt.Sprint(k)
		if c := nodePalette[keyMark(st, nv.ID, i)]; c != nil {
			keys[i] = c.Sprint(keys[i])
		}
	}
	cell := "[" + strings.Join(keys, " ") + "]"
	if c := nodePalette[st.Nodes[nv.ID]]; c != nil {
		cell = c.Sprint("[") + strings.Join(keys, " ") + c.Sprint("]")
	}

	return cell
}

func keyMark(st btree.Step, nodeID int64, index int) btree.Highlight {
	for _, km := range st.Keys {
		if km.Node == nodeID && km.Index == index {
			return km.Mark
		}
	}

	return btree.HighlightNone
}

// renderPathStep prints one shortest-path frame: narration plus the
// distance table with vertex markers colored.
func renderPathStep(g *paths.Graph, st paths.Step) {
	fmt.Printf("%s %s\n", tag(st.Kind), st.Message)
	cells := make([]string, 0, len(st.Dist))
	for _, v := range g.Vertices() {
		d := "inf"
		if st.Dist[v] != paths.Unreachable {
			d = fmt.Sprint(st.Dist[v])
		}
		cell := fmt.Sprintf("%s=%s", v, d)
		if c := vertexPalette[st.Marks[v]]; c != nil {
			cell = c.Sprint(cell)
		}
		cells = append(cells, cell)
	}
	fmt.Printf("    %s\n", strings.Join(cells, "  "))
}

// renderDeadlockStep prints one detection frame with process states
// colored.
func renderDeadlockStep(sys *deadlock.System, st deadlock.Step) {
	fmt.Printf("%s %s\n", tag(st.Kind), st.Message)
	cells := make([]string, 0, len(sys.Processes()))
	for _, p := range sys.Processes() {
		cell := p
		if c := processPalette[st.Marks[p]]; c != nil {
			cell = c.Sprint(cell)
		}
		cells = append(cells, cell)
	}
	fmt.Printf("    %s\n", strings.Join(cells, "  "))
}

// renderDiskStep prints one allocation frame: the block row plus the
// fragmentation summary.
func renderDiskStep(st blockalloc.Step) {
	fmt.Printf("%s %s\n", tag(st.Kind), st.Message)
	var b strings.Builder
	b.WriteString("    |")
	for i, owner := range st.Blocks {
		cell := owner
		if cell == "" {
			cell = "."
		}
		if c := blockPalette[st.Marks[i]]; c != nil {
			cell = c.Sprint(cell)
		}
		b.WriteString(cell)
		b.WriteString("|")
	}
	fmt.Println(b.String())
	m := st.Metrics
	fmt.Printf("    free=%d runs=%d largest=%d\n", m.FreeBlocks, m.FreeRuns, m.LargestRun)
}
