package graphcore

import "testing"

func TestEvenTarjanReductionSingleEdge(t *testing.T) {
	g := mustGraph(t, 2, []int{0, 1})
	sub, capacity, err := EvenTarjanReduction(g)
	if err != nil {
		t.Fatalf("EvenTarjanReduction: %v", err)
	}
	if sub.VCount() != 4 {
		t.Fatalf("sub.VCount() = %d, want 4", sub.VCount())
	}
	if sub.ECount() != 4 {
		t.Fatalf("sub.ECount() = %d, want 4 (2 split edges + 2 directed copies)", sub.ECount())
	}
	if len(capacity) != 4 {
		t.Fatalf("len(capacity) = %d, want 4", len(capacity))
	}

	// The two vertex-split edges (in-copy -> out-copy) carry unit capacity.
	if capacity[0] != 1 || capacity[1] != 1 {
		t.Fatalf("split-edge capacities = %v, want [1 1]", capacity[:2])
	}
	// The original edge 0->1 becomes (0+2 -> 1) and (1+2 -> 0), capacity n=2.
	if sub.From(2) != 2 || sub.To(2) != 1 || capacity[2] != 2 {
		t.Fatalf("forward copy edge wrong: from=%d to=%d cap=%v", sub.From(2), sub.To(2), capacity[2])
	}
	if sub.From(3) != 3 || sub.To(3) != 0 || capacity[3] != 2 {
		t.Fatalf("reverse copy edge wrong: from=%d to=%d cap=%v", sub.From(3), sub.To(3), capacity[3])
	}
}

func TestEvenTarjanReductionVertexCountMatchesDoubling(t *testing.T) {
	g := mustGraph(t, 3, []int{0, 1, 1, 2, 0, 2})
	sub, capacity, err := EvenTarjanReduction(g)
	if err != nil {
		t.Fatalf("EvenTarjanReduction: %v", err)
	}
	if sub.VCount() != 2*g.VCount() {
		t.Fatalf("sub.VCount() = %d, want %d", sub.VCount(), 2*g.VCount())
	}
	wantEdges := g.VCount() + 2*g.ECount()
	if sub.ECount() != wantEdges {
		t.Fatalf("sub.ECount() = %d, want %d", sub.ECount(), wantEdges)
	}
	if len(capacity) != wantEdges {
		t.Fatalf("len(capacity) = %d, want %d", len(capacity), wantEdges)
	}
}
