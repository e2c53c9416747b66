package graphcore

import "fmt"

// FlowStats reports bookkeeping about a max-flow run: the number of
// level-graph phases Dinic's algorithm built and the number of
// augmenting (blocking-flow) pushes across all phases. Persisted
// alongside a run by cmd/stcutgen as ambient observability of the
// flow step (spec.md §4.8 treats max-flow as a black box; this is
// extra detail about that box, not a new enumeration feature).
type FlowStats struct {
	Phases          int
	AugmentingPaths int
}

// MaxFlow computes a maximum s-t flow on g under capacity using
// Dinic's algorithm (level graph + blocking flow via a per-vertex
// current-arc pointer), grounded on the same phase/blocking-flow
// structure as other Dinic implementations in the retrieval pack, but
// built directly against this package's edge-indexed Graph instead of
// an adjacency-map graph type.
//
// flow[e] is the flow carried by original edge e, 0 <= flow[e] <= capacity[e].
func MaxFlow(g *Graph, capacity []float64, source, target int) (value float64, flow []float64, stats FlowStats, err error) {
	n := g.VCount()
	m := g.ECount()
	if len(capacity) != m {
		return 0, nil, FlowStats{}, fmt.Errorf("%w: capacity length must match edge count", ErrInvalidArgument)
	}
	if source < 0 || source >= n || target < 0 || target >= n {
		return 0, nil, FlowStats{}, fmt.Errorf("%w: source/target out of range", ErrInvalidArgument)
	}
	if source == target {
		return 0, nil, FlowStats{}, fmt.Errorf("%w: source and target must differ", ErrInvalidArgument)
	}

	// Arc 2*e is the forward copy of edge e, arc 2*e+1 its residual
	// reverse; flow[e] is recovered as capacity[e]-arcCap[2*e].
	arcTo := make([]int, 2*m)
	arcCap := make([]float64, 2*m)
	adj := make([][]int, n)
	for e := 0; e < m; e++ {
		f, t := g.From(e), g.To(e)
		fwd, rev := 2*e, 2*e+1
		arcTo[fwd], arcCap[fwd] = t, capacity[e]
		arcTo[rev], arcCap[rev] = f, 0
		adj[f] = append(adj[f], fwd)
		adj[t] = append(adj[t], rev)
	}

	level := make([]int, n)
	iter := make([]int, n)

	bfsLevels := func() bool {
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			v := queue[i]
			for _, arc := range adj[v] {
				if arcCap[arc] > 0 && level[arcTo[arc]] < 0 {
					level[arcTo[arc]] = level[v] + 1
					queue = append(queue, arcTo[arc])
				}
			}
		}
		return level[target] >= 0
	}

	var dfsPush func(v int, pushed float64) float64
	dfsPush = func(v int, pushed float64) float64 {
		if v == target {
			return pushed
		}
		for ; iter[v] < len(adj[v]); iter[v]++ {
			arc := adj[v][iter[v]]
			to := arcTo[arc]
			if arcCap[arc] <= 0 || level[to] != level[v]+1 {
				continue
			}
			send := pushed
			if arcCap[arc] < send {
				send = arcCap[arc]
			}
			got := dfsPush(to, send)
			if got > 0 {
				arcCap[arc] -= got
				arcCap[arc^1] += got
				return got
			}
		}
		return 0
	}

	for bfsLevels() {
		stats.Phases++
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dfsPush(source, posInf)
			if pushed <= 0 {
				break
			}
			value += pushed
			stats.AugmentingPaths++
		}
	}

	flow = make([]float64, m)
	for e := 0; e < m; e++ {
		flow[e] = capacity[e] - arcCap[2*e]
	}
	return value, flow, stats, nil
}

const posInf = 1e18
