// Package graphcore implements the s-t cut enumeration core: the
// Lengauer-Tarjan dominator tree, the Even-Tarjan vertex-to-edge
// reduction, residual/reverse-residual graph construction, and the
// Provan-Shier recursion that enumerates all s-t cuts or all minimum
// s-t cuts of a directed graph.
package graphcore

import "fmt"

// Mode selects the edge direction a traversal or adjacency query
// considers.
type Mode int

const (
	Out Mode = iota
	In
	All
)

// Dominator-tree sentinel values (spec §3): -1 marks the root of the
// dominator tree, -2 marks a vertex unreachable from the root.
const (
	DomRoot        = -1
	DomUnreachable = -2
)

// Graph is a directed graph with vertices numbered 0..VCount()-1 and
// edges numbered 0..ECount()-1. It is read-only once built.
type Graph struct {
	n        int
	efrom    []int
	eto      []int
	Directed bool
}

// NewGraph builds a Graph from a flat from,to,from,to,... edge list,
// matching the create(out, edges, n, directed) external interface.
func NewGraph(n int, edges []int, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count", ErrInvalidArgument)
	}
	if len(edges)%2 != 0 {
		return nil, fmt.Errorf("%w: edge list must have even length", ErrInvalidArgument)
	}
	m := len(edges) / 2
	efrom := make([]int, m)
	eto := make([]int, m)
	for i := 0; i < m; i++ {
		from, to := edges[2*i], edges[2*i+1]
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, fmt.Errorf("%w: edge endpoint out of range", ErrInvalidArgument)
		}
		efrom[i] = from
		eto[i] = to
	}
	return &Graph{n: n, efrom: efrom, eto: eto, Directed: directed}, nil
}

func (g *Graph) VCount() int { return g.n }
func (g *Graph) ECount() int { return len(g.efrom) }
func (g *Graph) From(e int) int { return g.efrom[e] }
func (g *Graph) To(e int) int   { return g.eto[e] }

// AdjList is a precomputed per-vertex neighbor list in one direction,
// matching the adjlist_init(g, out, mode, loops_once, multiple)
// external interface.
type AdjList struct {
	mode      Mode
	neighbors [][]int
}

// NewAdjList builds the adjacency lists of g in the given direction.
func NewAdjList(g *Graph, mode Mode) *AdjList {
	adj := make([][]int, g.n)
	switch mode {
	case Out:
		for e := 0; e < len(g.efrom); e++ {
			f := g.efrom[e]
			adj[f] = append(adj[f], g.eto[e])
		}
	case In:
		for e := 0; e < len(g.efrom); e++ {
			t := g.eto[e]
			adj[t] = append(adj[t], g.efrom[e])
		}
	case All:
		for e := 0; e < len(g.efrom); e++ {
			f, t := g.efrom[e], g.eto[e]
			adj[f] = append(adj[f], t)
			adj[t] = append(adj[t], f)
		}
	}
	return &AdjList{mode: mode, neighbors: adj}
}

func (a *AdjList) Neighbors(v int) []int { return a.neighbors[v] }

// Neighbors scans the edge list directly for the neighbors of v in
// the given direction. Prefer building an AdjList when querying more
// than a handful of vertices.
func (g *Graph) Neighbors(v int, mode Mode) []int {
	var out []int
	for e := 0; e < len(g.efrom); e++ {
		f, t := g.efrom[e], g.eto[e]
		switch mode {
		case Out:
			if f == v {
				out = append(out, t)
			}
		case In:
			if t == v {
				out = append(out, f)
			}
		case All:
			if f == v {
				out = append(out, t)
			}
			if t == v && t != f {
				out = append(out, f)
			}
		}
	}
	return out
}

// InducedSubgraphMap builds the subgraph induced by vids, returning
// the new graph along with the original->new (fwd, -1 if absent) and
// new->original (invmap) ID maps. vids must be ascending and
// duplicate-free.
func InducedSubgraphMap(g *Graph, vids []int) (sub *Graph, fwd []int, invmap []int, err error) {
	fwd = make([]int, g.n)
	for i := range fwd {
		fwd[i] = -1
	}
	invmap = make([]int, len(vids))
	for i, v := range vids {
		fwd[v] = i
		invmap[i] = v
	}

	var edges []int
	for e := 0; e < len(g.efrom); e++ {
		f, t := g.efrom[e], g.eto[e]
		nf, nt := fwd[f], fwd[t]
		if nf >= 0 && nt >= 0 {
			edges = append(edges, nf, nt)
		}
	}
	sub, err = NewGraph(len(vids), edges, g.Directed)
	return sub, fwd, invmap, err
}

// ContractVertices maps each vertex of g to mapping[v] and returns the
// resulting (generally much smaller) multigraph, matching
// contract_vertices(g, mapping).
func ContractVertices(g *Graph, mapping []int) (*Graph, error) {
	if len(mapping) != g.n {
		return nil, fmt.Errorf("%w: contraction mapping size mismatch", ErrInvalidArgument)
	}
	k := 0
	for _, m := range mapping {
		if m+1 > k {
			k = m + 1
		}
	}
	edges := make([]int, 0, 2*len(g.efrom))
	for e := 0; e < len(g.efrom); e++ {
		edges = append(edges, mapping[g.efrom[e]], mapping[g.eto[e]])
	}
	return NewGraph(k, edges, g.Directed)
}

// Simplify removes self-loops and/or parallel edges, matching
// simplify(g, multiple, loops). Edge order among the survivors is
// preserved.
func Simplify(g *Graph, removeMultiple, removeLoops bool) *Graph {
	seen := make(map[[2]int]struct{}, len(g.efrom))
	edges := make([]int, 0, 2*len(g.efrom))
	for e := 0; e < len(g.efrom); e++ {
		f, t := g.efrom[e], g.eto[e]
		if removeLoops && f == t {
			continue
		}
		if removeMultiple {
			key := [2]int{f, t}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		edges = append(edges, f, t)
	}
	sub, _ := NewGraph(g.n, edges, g.Directed)
	return sub
}
