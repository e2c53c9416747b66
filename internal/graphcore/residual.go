package graphcore

import "fmt"

// ResidualGraph builds the residual graph of g under capacity/flow
// (C4): an edge survives, carrying residual capacity capacity[e]-flow[e],
// wherever that quantity is strictly positive.
func ResidualGraph(g *Graph, capacity, flow []float64) (*Graph, []float64, error) {
	m := g.ECount()
	if len(capacity) != m || len(flow) != m {
		return nil, nil, fmt.Errorf("%w: capacity/flow length must match edge count", ErrInvalidArgument)
	}

	edges := make([]int, 0, 2*m)
	rescap := make([]float64, 0, m)
	for e := 0; e < m; e++ {
		c := capacity[e] - flow[e]
		if c > 0 {
			edges = append(edges, g.From(e), g.To(e))
			rescap = append(rescap, c)
		}
	}
	sub, err := NewGraph(g.VCount(), edges, true)
	if err != nil {
		return nil, nil, err
	}
	return sub, rescap, nil
}

// ReverseResidualGraph builds the reverse-residual graph of g under
// flow (C4): the forward edge (u,v) survives as (u,v) if any flow
// crosses it, and survives reversed as (v,u) if it isn't flow-saturated.
// When capacity is nil, unit capacity is assumed for every edge
// (matching the unweighted all_st_mincuts default, spec.md §4.8).
func ReverseResidualGraph(g *Graph, capacity, flow []float64) (*Graph, error) {
	m := g.ECount()
	if len(flow) != m {
		return nil, fmt.Errorf("%w: flow length must match edge count", ErrInvalidArgument)
	}
	if capacity != nil && len(capacity) != m {
		return nil, fmt.Errorf("%w: capacity length must match edge count", ErrInvalidArgument)
	}

	edges := make([]int, 0, 2*m)
	for e := 0; e < m; e++ {
		cap := 1.0
		if capacity != nil {
			cap = capacity[e]
		}
		if flow[e] > 0 {
			edges = append(edges, g.From(e), g.To(e))
		}
		if flow[e] < cap {
			edges = append(edges, g.To(e), g.From(e))
		}
	}
	return NewGraph(g.VCount(), edges, true)
}
