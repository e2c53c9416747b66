package graphcore

import "fmt"

// AllSTCuts enumerates every s-t edge cut of g (every edge set whose
// removal disconnects target from source, minimal in the sense that
// no proper subset also disconnects them), via the Provan-Shier
// recursion (C7) driven by the C5 pivot.
//
// partitions[i] holds the source-side vertex set of cut i; cuts[i]
// holds the edge IDs crossing from partitions[i] into its complement.
func AllSTCuts(g *Graph, source, target int) (partitions [][]int, cuts [][]int, err error) {
	if !g.Directed {
		return nil, nil, fmt.Errorf("%w: all_st_cuts requires a directed graph", ErrUnimplemented)
	}
	n := g.VCount()
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, nil, fmt.Errorf("%w: source/target out of range", ErrInvalidArgument)
	}
	if source == target {
		return nil, nil, fmt.Errorf("%w: source and target must differ", ErrInvalidArgument)
	}

	partitions, err = EnumerateCuts(g, source, target, AllCutsPivot)
	if err != nil {
		return nil, nil, err
	}
	cuts = derivePartitionCuts(g, partitions, nil)
	return partitions, cuts, nil
}

// derivePartitionCuts turns a set of source-side partitions into edge
// cuts: the edges crossing from inside a partition to outside it. If
// flow is non-nil, only edges carrying positive flow are counted
// (the cut an s-t mincut partition induces is exactly its saturated
// edges, spec.md §4.8).
func derivePartitionCuts(g *Graph, partitions [][]int, flow []float64) [][]int {
	result := make([][]int, len(partitions))
	for i, part := range partitions {
		inP := make([]bool, g.VCount())
		for _, v := range part {
			inP[v] = true
		}
		var cut []int
		for e := 0; e < g.ECount(); e++ {
			if flow != nil && flow[e] <= 0 {
				continue
			}
			f, t := g.From(e), g.To(e)
			if inP[f] && !inP[t] {
				cut = append(cut, e)
			}
		}
		result[i] = cut
	}
	return result
}
