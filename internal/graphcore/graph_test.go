package graphcore

import (
	"errors"
	"testing"
)

func mustGraph(t *testing.T, n int, edges []int) *Graph {
	t.Helper()
	g, err := NewGraph(n, edges, true)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestNewGraphValidation(t *testing.T) {
	if _, err := NewGraph(3, []int{0, 1, 2}, true); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("odd edge list: want ErrInvalidArgument, got %v", err)
	}
	if _, err := NewGraph(3, []int{0, 3}, true); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("out of range endpoint: want ErrInvalidArgument, got %v", err)
	}
	if _, err := NewGraph(-1, nil, true); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative n: want ErrInvalidArgument, got %v", err)
	}
}

func TestAdjListDirections(t *testing.T) {
	// 0 -> 1 -> 2, 0 -> 2
	g := mustGraph(t, 3, []int{0, 1, 1, 2, 0, 2})

	out := NewAdjList(g, Out)
	if got := out.Neighbors(0); len(got) != 2 {
		t.Fatalf("out-neighbors of 0 = %v, want 2 elements", got)
	}
	in := NewAdjList(g, In)
	if got := in.Neighbors(2); len(got) != 2 {
		t.Fatalf("in-neighbors of 2 = %v, want 2 elements", got)
	}
	all := NewAdjList(g, All)
	if got := all.Neighbors(1); len(got) != 2 {
		t.Fatalf("all-neighbors of 1 = %v, want 2 elements", got)
	}
}

func TestInducedSubgraphMap(t *testing.T) {
	g := mustGraph(t, 4, []int{0, 1, 1, 2, 2, 3, 0, 3})
	sub, fwd, invmap, err := InducedSubgraphMap(g, []int{0, 1, 3})
	if err != nil {
		t.Fatalf("InducedSubgraphMap: %v", err)
	}
	if sub.VCount() != 3 {
		t.Fatalf("sub.VCount() = %d, want 3", sub.VCount())
	}
	// Only edge 0->1 and 0->3 survive; 1->2 and 2->3 touch the excluded vertex 2.
	if sub.ECount() != 2 {
		t.Fatalf("sub.ECount() = %d, want 2", sub.ECount())
	}
	if fwd[2] != -1 {
		t.Fatalf("fwd[2] = %d, want -1 (excluded)", fwd[2])
	}
	if invmap[fwd[3]] != 3 {
		t.Fatalf("invmap/fwd round trip broken for vertex 3")
	}
}

func TestContractVerticesAndSimplify(t *testing.T) {
	g := mustGraph(t, 4, []int{0, 1, 1, 2, 2, 0, 2, 3})
	// Collapse the 0-1-2 triangle into supernode 0.
	contracted, err := ContractVertices(g, []int{0, 0, 0, 1})
	if err != nil {
		t.Fatalf("ContractVertices: %v", err)
	}
	if contracted.VCount() != 2 {
		t.Fatalf("contracted.VCount() = %d, want 2", contracted.VCount())
	}
	if contracted.ECount() != 4 {
		t.Fatalf("contracted.ECount() = %d, want 4 (3 self-loops + 1 to supernode 1)", contracted.ECount())
	}

	simplified := Simplify(contracted, true, true)
	if simplified.ECount() != 1 {
		t.Fatalf("simplified.ECount() = %d, want 1", simplified.ECount())
	}
}
