package graphcore

import "testing"

func TestMaxFlowPathIsBottlenecked(t *testing.T) {
	g := mustGraph(t, 3, []int{0, 1, 1, 2})
	capacity := []float64{5, 3}
	value, flow, stats, err := MaxFlow(g, capacity, 0, 2)
	if err != nil {
		t.Fatalf("MaxFlow: %v", err)
	}
	if value != 3 {
		t.Fatalf("value = %v, want 3 (bottlenecked by edge 1->2)", value)
	}
	if flow[0] != 3 || flow[1] != 3 {
		t.Fatalf("flow = %v, want [3 3]", flow)
	}
	if stats.Phases == 0 {
		t.Fatalf("stats.Phases = 0, want at least one phase")
	}
}

func TestMaxFlowParallelPaths(t *testing.T) {
	// 0 -> 1 -> 3 and 0 -> 2 -> 3, capacity 2 on every edge: two
	// disjoint augmenting paths, maxflow = 4.
	g := mustGraph(t, 4, []int{0, 1, 1, 3, 0, 2, 2, 3})
	capacity := []float64{2, 2, 2, 2}
	value, flow, _, err := MaxFlow(g, capacity, 0, 3)
	if err != nil {
		t.Fatalf("MaxFlow: %v", err)
	}
	if value != 4 {
		t.Fatalf("value = %v, want 4", value)
	}
	for e, f := range flow {
		if f != 2 {
			t.Fatalf("flow[%d] = %v, want 2", e, f)
		}
	}
}

func TestMaxFlowRejectsSameSourceTarget(t *testing.T) {
	g := mustGraph(t, 2, []int{0, 1})
	if _, _, _, err := MaxFlow(g, []float64{1}, 0, 0); err == nil {
		t.Fatalf("MaxFlow with source == target should fail")
	}
}
