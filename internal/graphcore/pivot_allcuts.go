package graphcore

import "fmt"

// PivotResult is what a pivot function (C5 or C6) hands back to the
// Provan-Shier recursion driver (C7): the chosen pivot vertex V and
// the implied-closure set I. An empty I means no pivot was found, so
// the current (S,T) state is a leaf of the recursion.
type PivotResult struct {
	V int
	I []int
}

// AllCutsPivot implements the C5 pivot rule for all_st_cuts: find a
// vertex that is reachable from S (or from source, if S is empty),
// minimal under the dominator order of the vertices-not-in-S
// subgraph rooted at target, and whose forced closure doesn't already
// conflict with T or target.
func AllCutsPivot(g *Graph, S *MarkedQueue, T *ElementStack, source, target int) (PivotResult, error) {
	n := g.VCount()

	keep := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !S.Contains(v) {
			keep = append(keep, v)
		}
	}
	sbar, sbarMap, sbarInvmap, err := InducedSubgraphMap(g, keep)
	if err != nil {
		return PivotResult{}, err
	}

	root := sbarMap[target]
	if root < 0 {
		return PivotResult{}, fmt.Errorf("%w: target unexpectedly removed by S", ErrInvalidArgument)
	}

	_, domtree, leftoutSbar, err := DominatorTree(sbar, root, In, true, true)
	if err != nil {
		return PivotResult{}, err
	}
	leftout := make([]int, len(leftoutSbar))
	for i, v := range leftoutSbar {
		leftout[i] = sbarInvmap[v]
	}

	gammaS := make([]bool, n)
	if S.Size() == 0 {
		gammaS[source] = true
	} else {
		outAdj := NewAdjList(g, Out)
		for v := 0; v < n; v++ {
			if !S.Contains(v) {
				continue
			}
			for _, w := range outAdj.Neighbors(v) {
				if !S.Contains(w) {
					gammaS[w] = true
				}
			}
		}
	}
	for _, v := range leftout {
		gammaS[v] = false
	}

	var gammaSVec []int
	for v := 0; v < n; v++ {
		if gammaS[v] {
			gammaSVec = append(gammaSVec, v)
		}
	}

	var m []int
	if domtree.ECount() > 0 {
		m = minimalGammaElements(domtree, root, gammaS, sbarInvmap)
	}

	for _, mv := range m {
		minSbar := sbarMap[mv]
		nuvSbar := DFS(domtree, minSbar, In)
		nuv := make([]int, len(nuvSbar))
		for i, sv := range nuvSbar {
			nuv[i] = sbarInvmap[sv]
		}

		isvMin := BFS(g, gammaSVec, Out, nuv)
		conflict := false
		for _, u := range isvMin {
			if u == target || T.Contains(u) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		restricted := append(append([]int{}, nuv...), leftout...)
		isv := BFS(g, []int{mv}, Out, restricted)
		return PivotResult{V: mv, I: isv}, nil
	}

	return PivotResult{}, nil
}

// minimalGammaElements finds the minimal elements of gammaS (indexed
// by original vertex ID) under the dominance order of domtree, a
// child->parent dominator tree rooted at root (an Sbar-local ID).
// invmap translates Sbar-local IDs back to original IDs.
//
// This replays the stack-discipline DFS the original algorithm
// expresses with enter/exit callbacks as a plain recursive walk: a
// gamma-member is minimal unless some strict descendant in the tree is
// also in gamma. Whenever a gamma-member is visited, the nearest
// enclosing gamma-member on the current root path (the top of the
// stack) is marked non-minimal.
func minimalGammaElements(domtree *Graph, root int, gammaS []bool, invmap []int) []int {
	n := len(gammaS)
	nonMinimal := make([]bool, n)
	for i := 0; i < n; i++ {
		nonMinimal[i] = !gammaS[i]
	}

	children := NewAdjList(domtree, In)
	var stack []int
	var visit func(v int)
	visit = func(v int) {
		real := invmap[v]
		pushed := false
		if gammaS[real] {
			if len(stack) > 0 {
				nonMinimal[stack[len(stack)-1]] = true
			}
			stack = append(stack, real)
			pushed = true
		}
		for _, w := range children.Neighbors(v) {
			visit(w)
		}
		if pushed {
			stack = stack[:len(stack)-1]
		}
	}
	visit(root)

	var minimal []int
	for v := 0; v < n; v++ {
		if !nonMinimal[v] {
			minimal = append(minimal, v)
		}
	}
	return minimal
}
