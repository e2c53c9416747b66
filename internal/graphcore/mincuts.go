package graphcore

import "fmt"

// AllSTMinCuts enumerates every minimum s-t cut of g under capacity
// (C8): it runs a max-flow, builds the reverse-residual graph,
// contracts it to its strongly connected components (collapsing every
// vertex set a mincut can never split), then re-runs the Provan-Shier
// recursion (C7) on the contracted graph with the C6 pivot, lifting
// the resulting closed sets back to vertex partitions of the original
// graph.
//
// capacity may be nil, meaning unit capacity on every edge. value is
// the minimum cut value (equivalently the max-flow value).
func AllSTMinCuts(g *Graph, source, target int, capacity []float64) (value float64, partitions [][]int, cuts [][]int, stats FlowStats, err error) {
	if !g.Directed {
		return 0, nil, nil, FlowStats{}, fmt.Errorf("%w: all_st_mincuts requires a directed graph", ErrUnimplemented)
	}
	n := g.VCount()
	if source < 0 || source >= n || target < 0 || target >= n {
		return 0, nil, nil, FlowStats{}, fmt.Errorf("%w: source/target out of range", ErrInvalidArgument)
	}
	if source == target {
		return 0, nil, nil, FlowStats{}, fmt.Errorf("%w: source and target must differ", ErrInvalidArgument)
	}
	effCap := capacity
	if effCap == nil {
		effCap = make([]float64, g.ECount())
		for i := range effCap {
			effCap[i] = 1
		}
	} else {
		if len(effCap) != g.ECount() {
			return 0, nil, nil, FlowStats{}, fmt.Errorf("%w: capacity length must match edge count", ErrInvalidArgument)
		}
		for _, c := range effCap {
			if c <= 0 {
				return 0, nil, nil, FlowStats{}, fmt.Errorf("%w: capacities must be strictly positive", ErrInvalidArgument)
			}
		}
	}

	value, flow, stats, err := MaxFlow(g, effCap, source, target)
	if err != nil {
		return 0, nil, nil, FlowStats{}, err
	}

	rres, err := ReverseResidualGraph(g, capacity, flow)
	if err != nil {
		return 0, nil, nil, FlowStats{}, err
	}

	membership, numComp := StronglyConnectedComponents(rres)
	contracted, err := ContractVertices(rres, membership)
	if err != nil {
		return 0, nil, nil, FlowStats{}, err
	}
	contracted = Simplify(contracted, true, true)

	newSource, newTarget := membership[source], membership[target]
	if newSource == newTarget {
		// Source and target collapse into one supernode: every edge
		// on every mincut is saturated by definition, so the residual
		// graph has no s-t path left to cross a component boundary on
		// and there is nothing further to enumerate.
		return value, nil, nil, stats, nil
	}

	active := make([]bool, numComp)
	for e := 0; e < g.ECount(); e++ {
		if flow[e] > 0 {
			active[membership[g.From(e)]] = true
			active[membership[g.To(e)]] = true
		}
	}

	pivot := func(gr *Graph, S *MarkedQueue, T *ElementStack, s, t int) (PivotResult, error) {
		return MinCutsPivot(gr, S, T, s, t, active)
	}
	closedSets, err := EnumerateCuts(contracted, newSource, newTarget, pivot)
	if err != nil {
		return 0, nil, nil, FlowStats{}, err
	}

	revmap := make([][]int, numComp)
	for v := 0; v < n; v++ {
		revmap[membership[v]] = append(revmap[membership[v]], v)
	}
	partitions = make([][]int, len(closedSets))
	for i, cs := range closedSets {
		var part []int
		for _, sc := range cs {
			part = append(part, revmap[sc]...)
		}
		partitions[i] = part
	}

	cuts = derivePartitionCuts(g, partitions, flow)
	return value, partitions, cuts, stats, nil
}
