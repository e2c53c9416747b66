package graphcore

// MinCutsPivot implements the C6 pivot rule for all_st_mincuts, acting
// on the SCC-contracted flow graph: find a minimal active element not
// already equal to target or present in T, and BFS backwards from it
// (restricted to the not-yet-removed vertex set) to get the implied
// closure I.
//
// active marks, per vertex of g (the contracted graph this pivot
// operates on), whether any positive-flow edge touches it; only
// active vertices are eligible pivots.
func MinCutsPivot(g *Graph, S *MarkedQueue, T *ElementStack, source, target int, active []bool) (PivotResult, error) {
	n := g.VCount()
	if S.Size() == n {
		return PivotResult{}, nil
	}

	keep := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !S.Contains(v) {
			keep = append(keep, v)
		}
	}
	sbar, _, sbarInvmap, err := InducedSubgraphMap(g, keep)
	if err != nil {
		return PivotResult{}, err
	}

	m := minimalActiveElements(sbar, active, sbarInvmap)
	for _, mv := range m {
		real := sbarInvmap[mv]
		if real == target || T.Contains(real) {
			continue
		}
		isv := BFS(g, []int{real}, In, keep)
		var filtered []int
		for _, u := range isv {
			if !T.Contains(u) {
				filtered = append(filtered, u)
			}
		}
		return PivotResult{V: real, I: filtered}, nil
	}

	return PivotResult{}, nil
}

// minimalActiveElements finds, in sbar (the induced subgraph on the
// not-yet-removed vertices), the active vertices whose in-degree
// reaches zero once every inactive vertex is iteratively stripped out
// (decrementing its out-neighbors' in-degree as it's removed, per
// spec.md §4.6's stabilisation rule).
func minimalActiveElements(sbar *Graph, active []bool, invmap []int) []int {
	n := sbar.VCount()
	indeg := make([]int, n)
	for e := 0; e < sbar.ECount(); e++ {
		indeg[sbar.To(e)]++
	}
	outAdj := NewAdjList(sbar, Out)

	removed := make([]bool, n)
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 && !active[invmap[v]] {
			queue = append(queue, v)
		}
	}
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		removed[v] = true
		for _, w := range outAdj.Neighbors(v) {
			if removed[w] {
				continue
			}
			indeg[w]--
			if indeg[w] == 0 && !active[invmap[w]] {
				queue = append(queue, w)
			}
		}
	}

	var minimal []int
	for v := 0; v < n; v++ {
		if active[invmap[v]] && indeg[v] == 0 {
			minimal = append(minimal, v)
		}
	}
	return minimal
}
