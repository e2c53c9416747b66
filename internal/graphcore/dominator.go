package graphcore

// DominatorTree computes the dominator tree of g rooted at root,
// restricted to the direction mode (Out or In), using the
// Lengauer-Tarjan algorithm (C2): DFS numbering, semidominators via
// EVAL/LINK/COMPRESS with a DBucket, then the two-pass idom
// resolution.
//
// idom[v] is the immediate dominator of v, DomRoot for root itself,
// and DomUnreachable for any vertex not reachable from root.
//
// When wantTree is true, domtree is the dominator tree as a Graph
// over the same n vertices (edges idom(v)->v if mode is Out, v->idom(v)
// if mode is In, matching spec.md §4.2's direction note). When
// wantLeftout is true, leftout lists the vertices unreachable from
// root.
func DominatorTree(g *Graph, root int, mode Mode, wantTree, wantLeftout bool) (idom []int, domtree *Graph, leftout []int, err error) {
	if mode != Out && mode != In {
		return nil, nil, nil, ErrInvalidArgument
	}
	n := g.VCount()
	if root < 0 || root >= n {
		return nil, nil, nil, ErrInvalidArgument
	}

	invmode := Out
	if mode == Out {
		invmode = In
	}

	// Step 1: DFS from root in `mode` direction, recording a spanning
	// tree (parent) and a preorder numbering (order/semi).
	fwdAdj := NewAdjList(g, mode)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = DomUnreachable
	}
	parent[root] = DomRoot

	order := make([]int, 0, n)
	var visit func(v int)
	visit = func(v int) {
		order = append(order, v)
		for _, w := range fwdAdj.Neighbors(v) {
			if parent[w] == DomUnreachable {
				parent[w] = v
				visit(w)
			}
		}
	}
	visit(root)

	nr := len(order)
	semi := make([]int, n)
	vertexOrder := make([]int, nr)
	for i, v := range order {
		semi[v] = i
		vertexOrder[i] = v
	}

	// Step 2: predecessor adjacency in the opposite direction,
	// skipping vertices unreachable from root.
	predAdj := NewAdjList(g, invmode)

	ancestor := make([]int, n)
	label := make([]int, n)
	for i := 0; i < n; i++ {
		ancestor[i] = -1
		label[i] = i
	}

	var compress func(v int)
	compress = func(v int) {
		var path []int
		w := v
		for ancestor[w] != -1 {
			path = append(path, w)
			w = ancestor[w]
		}
		if len(path) == 0 {
			return
		}
		top := path[len(path)-1]
		for i := len(path) - 2; i >= 0; i-- {
			pretop := path[i]
			if semi[label[top]] < semi[label[pretop]] {
				label[pretop] = label[top]
			}
			ancestor[pretop] = ancestor[top]
			top = pretop
		}
	}
	eval := func(v int) int {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return label[v]
	}

	idom = make([]int, n)
	for i := range idom {
		idom[i] = DomUnreachable
	}

	bucket := NewDBucket(n)

	// Step 3: process vertices in reverse preorder.
	for i := nr - 1; i > 0; i-- {
		w := vertexOrder[i]
		for _, v := range predAdj.Neighbors(w) {
			if parent[v] == DomUnreachable {
				continue
			}
			u := eval(v)
			if semi[u] < semi[w] {
				semi[w] = semi[u]
			}
		}
		bucket.Insert(vertexOrder[semi[w]], w)
		ancestor[w] = parent[w]

		p := parent[w]
		for !bucket.Empty(p) {
			v := bucket.Delete(p)
			u := eval(v)
			if semi[u] < semi[v] {
				idom[v] = u
			} else {
				idom[v] = p
			}
		}
	}

	// Step 4: finish resolving idom for vertices whose semidominator
	// guess wasn't their true immediate dominator.
	for i := 1; i < nr; i++ {
		w := vertexOrder[i]
		if idom[w] != vertexOrder[semi[w]] {
			idom[w] = idom[idom[w]]
		}
	}
	idom[root] = DomRoot

	if wantLeftout {
		for v := 0; v < n; v++ {
			if parent[v] == DomUnreachable {
				leftout = append(leftout, v)
			}
		}
	}

	if wantTree {
		edges := make([]int, 0, 2*(nr-1))
		for i := 1; i < nr; i++ {
			v := vertexOrder[i]
			if mode == Out {
				edges = append(edges, idom[v], v)
			} else {
				edges = append(edges, v, idom[v])
			}
		}
		domtree, err = NewGraph(n, edges, true)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return idom, domtree, leftout, nil
}
