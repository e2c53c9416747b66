package graphcore

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// restrictMask turns an (optional) vertex allow-list into a bool
// mask. A nil list means "no restriction."
func restrictMask(n int, allow []int) []bool {
	if allow == nil {
		return nil
	}
	mask := make([]bool, n)
	for _, v := range allow {
		mask[v] = true
	}
	return mask
}

// BFS runs a multi-source breadth-first search from roots over g in
// the given direction, optionally confined to the vertices in
// restricted (nil means unrestricted), and returns the visited
// vertices in visiting order. This backs the restricted BFS/reachability
// queries C5, C6 and the min-cut orchestrator all need (§3).
func BFS(g *Graph, roots []int, mode Mode, restricted []int) []int {
	mask := restrictMask(g.VCount(), restricted)
	adj := NewAdjList(g, mode)
	visited := make([]bool, g.VCount())

	queue := make([]int, 0, len(roots))
	for _, r := range roots {
		if mask != nil && !mask[r] {
			continue
		}
		if !visited[r] {
			visited[r] = true
			queue = append(queue, r)
		}
	}
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, w := range adj.Neighbors(v) {
			if mask != nil && !mask[w] {
				continue
			}
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return queue
}

// DFS runs a preorder depth-first search from root over g in the
// given direction and returns the visited vertices in visiting order.
// Used to extract the subtree Nu(v) rooted at a candidate pivot in a
// dominator tree (C5).
func DFS(g *Graph, root int, mode Mode) []int {
	adj := NewAdjList(g, mode)
	visited := make([]bool, g.VCount())
	var order []int
	var rec func(v int)
	rec = func(v int) {
		visited[v] = true
		order = append(order, v)
		for _, w := range adj.Neighbors(v) {
			if !visited[w] {
				rec(w)
			}
		}
	}
	rec(root)
	return order
}

// StronglyConnectedComponents computes the SCCs of g by adapting it
// to gonum's graph.Directed interface and delegating to
// graph/topo.TarjanSCC (C8 step 3), rather than hand-rolling Tarjan's
// algorithm a second time next to the Lengauer-Tarjan dominator code.
// membership[v] is the 0-based component ID of vertex v.
func StronglyConnectedComponents(g *Graph) (membership []int, numComponents int) {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.VCount(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for e := 0; e < g.ECount(); e++ {
		f, t := g.From(e), g.To(e)
		if f == t {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(t)})
	}

	sccs := topo.TarjanSCC(dg)
	membership = make([]int, g.VCount())
	for compID, comp := range sccs {
		for _, nd := range comp {
			membership[nd.ID()] = compID
		}
	}
	return membership, len(sccs)
}
