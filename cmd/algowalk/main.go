// Command algowalk replays algorithm walkthroughs as colored terminal
// frames: one line-drawn snapshot per step, with the narration and the
// structure metrics beside it.
//
// Usage:
//
//	algowalk btree [-order N] [-ops "i10,i20,d10,s20"]
//	algowalk paths
//	algowalk deadlock
//	algowalk blockalloc
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/algowalk/algowalk/btree"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "algowalk:", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand\n\n%s", usage)
	}
	switch args[0] {
	case "btree":
		return runBTree(args[1:])
	case "paths":
		return runPaths()
	case "deadlock":
		return runDeadlock()
	case "blockalloc":
		return runBlockAlloc()
	default:
		return fmt.Errorf("unknown subcommand %q\n\n%s", args[0], usage)
	}
}

const usage = `usage:
  algowalk btree [-order N] [-ops "i10,i20,d10,s20"]
  algowalk paths
  algowalk deadlock
  algowalk blockalloc`

func runBTree(args []string) error {
	fs := flag.NewFlagSet("btree", flag.ContinueOnError)
	order := fs.Int("order", btree.DefaultOrder, "tree order (3, 4 or 5)")
	ops := fs.String("ops", "i10,i20,i5,i6,i12,i30,d20,s6", "comma-separated script of i<k>, d<k>, s<k>")
	if err := fs.Parse(args); err != nil {
		return err
	}

	script, err := parseScript(*ops)
	if err != nil {
		return err
	}
	sess, err := btree.NewSession(btree.WithOrder(*order))
	if err != nil {
		return err
	}

	for _, op := range script {
		var r *btree.Run
		switch op.Kind {
		case btree.OpInsert:
			r, err = sess.Insert(op.Key)
		case btree.OpDelete:
			r, err = sess.Delete(op.Key)
		default:
			r, err = sess.Search(op.Key)
		}
		if err != nil {
			return err
		}

		fmt.Printf("\n== %s %d ==\n", op.Kind, op.Key)
		for {
			st, ok := r.Next()
			if !ok {
				break
			}
			renderTreeStep(st)
		}
	}

	return nil
}

// parseScript turns "i10,d20,s30" into preset operations.
func parseScript(s string) ([]btree.PresetOp, error) {
	var script []btree.PresetOp
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if len(tok) < 2 {
			return nil, fmt.Errorf("bad op %q: want i<k>, d<k> or s<k>", tok)
		}
		key, err := strconv.ParseInt(tok[1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad key in op %q: %w", tok, err)
		}
		var kind btree.OpKind
		switch tok[0] {
		case 'i':
			kind = btree.OpInsert
		case 'd':
			kind = btree.OpDelete
		case 's':
			kind = btree.OpSearch
		default:
			return nil, fmt.Errorf("bad op %q: want i<k>, d<k> or s<k>", tok)
		}
		script = append(script, btree.PresetOp{Kind: kind, Key: key})
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("empty script")
	}

	return script, nil
}
