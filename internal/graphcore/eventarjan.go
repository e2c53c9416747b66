package graphcore

import (
	"fmt"
	"math"
)

// EvenTarjanReduction builds the Even-Tarjan vertex-split reduction of
// g (C3): each vertex i becomes an in-copy i and an out-copy i+n
// joined by a unit-capacity edge, and each original edge (i,j) becomes
// (i+n, j) and (j+n, i) with capacity n, so that a vertex cut of g
// corresponds to an edge cut of the reduction of the same cardinality.
//
// Returned vertex k < n is the in-copy of original vertex k; k+n is
// its out-copy.
func EvenTarjanReduction(g *Graph) (*Graph, []float64, error) {
	n := g.VCount()
	m := g.ECount()
	if n < 0 || m < 0 {
		return nil, nil, ErrInvalidArgument
	}
	if m > (math.MaxInt-n)/2 {
		return nil, nil, fmt.Errorf("%w: too many edges for even-tarjan reduction", ErrOverflow)
	}

	edges := make([]int, 0, 2*(n+2*m))
	capacity := make([]float64, 0, n+2*m)

	for i := 0; i < n; i++ {
		edges = append(edges, i, i+n)
		capacity = append(capacity, 1)
	}
	for e := 0; e < m; e++ {
		from, to := g.From(e), g.To(e)
		edges = append(edges, from+n, to)
		edges = append(edges, to+n, from)
		capacity = append(capacity, float64(n), float64(n))
	}

	sub, err := NewGraph(2*n, edges, true)
	if err != nil {
		return nil, nil, err
	}
	return sub, capacity, nil
}
