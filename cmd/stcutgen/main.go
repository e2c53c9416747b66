package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stcuts/stcutgraph/internal/graphcore"
)

type graphFlags []string

func (g *graphFlags) String() string     { return strings.Join(*g, ",") }
func (g *graphFlags) Set(v string) error { *g = append(*g, v); return nil }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the real entry point. Using a separate function ensures all
// defers (including the SQLite connection close) execute even on
// error paths, unlike os.Exit which skips deferred calls.
func run() error {
	var graphPaths graphFlags
	flag.Var(&graphPaths, "graph", "Path to an edge-list graph file (repeatable for batch mode)")
	mode := flag.String("mode", "mincuts", "Enumeration mode: \"cuts\" (all_st_cuts) or \"mincuts\" (all_st_mincuts)")
	outputPath := flag.String("out", "stcuts.db", "Output SQLite database path")
	dumpDomtree := flag.Bool("dump-domtree", false, "Persist the dominator tree computed while pivoting (cuts mode only)")
	concurrency := flag.Int("concurrency", 4, "Max graphs enumerated concurrently in batch mode")
	verbose := flag.Bool("verbose", false, "Print detailed progress")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stcutgen [flags] -graph file1 [-graph file2 ...]\n\n")
		fmt.Fprintf(os.Stderr, "Enumerates s-t cuts or minimum s-t cuts for one or more directed graphs\nand writes the results to a SQLite database.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(graphPaths) == 0 {
		flag.Usage()
		return fmt.Errorf("at least one -graph is required")
	}
	if *mode != "cuts" && *mode != "mincuts" {
		return fmt.Errorf("invalid -mode %q: want \"cuts\" or \"mincuts\"", *mode)
	}

	prog := NewProgress(*verbose)
	prog.Log("Enumerating %s for %s", *mode, humanize.Comma(int64(len(graphPaths))))

	inputs := make([]*GraphInput, len(graphPaths))
	for i, p := range graphPaths {
		in, err := LoadGraphFile(p)
		if err != nil {
			return err
		}
		inputs[i] = in
	}

	results := make([]*RunResult, len(inputs))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)
	var mu sync.Mutex // guards prog, shared only for log ordering
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := enumerate(in, *mode, *dumpDomtree)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}

			mu.Lock()
			prog.Log("%s: %d vertices, %d edges -> %s partitions in %s phases",
				in.Name, in.Graph.VCount(), in.Graph.ECount(),
				humanize.Comma(int64(len(result.Partitions))), humanize.Comma(int64(result.Stats.Phases)))
			mu.Unlock()

			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	conn, err := OpenResultsDB(*outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	prog.Log("Writing results to %s ...", *outputPath)
	if err := WriteRuns(conn, results, prog); err != nil {
		return err
	}

	prog.Log("Done. %d runs written.", len(results))
	return nil
}

// enumerate runs one graph through the core, single-threaded per run
// as spec.md §5 requires; batch-level concurrency in run() is strictly
// across independent invocations like this one.
func enumerate(in *GraphInput, mode string, dumpDomtree bool) (*RunResult, error) {
	runID := uuid.NewString()
	result := &RunResult{
		RunID:     runID,
		GraphName: in.Name,
		Mode:      mode,
		Source:    in.Source,
		Target:    in.Target,
		VCount:    in.Graph.VCount(),
		ECount:    in.Graph.ECount(),
	}

	switch mode {
	case "cuts":
		partitions, cuts, err := graphcore.AllSTCuts(in.Graph, in.Source, in.Target)
		if err != nil {
			return nil, err
		}
		result.Partitions, result.Cuts = partitions, cuts

		if dumpDomtree {
			_, domtree, _, err := graphcore.DominatorTree(in.Graph, in.Target, graphcore.In, true, false)
			if err != nil {
				return nil, err
			}
			result.DomTree = domtree
			result.DomRoot = in.Target
		}
	case "mincuts":
		value, partitions, cuts, stats, err := graphcore.AllSTMinCuts(in.Graph, in.Source, in.Target, in.Capacity)
		if err != nil {
			return nil, err
		}
		result.Value = value
		result.Partitions, result.Cuts = partitions, cuts
		result.Stats = stats
	}

	return result, nil
}
