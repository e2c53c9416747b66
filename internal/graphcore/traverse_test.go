package graphcore

import "testing"

func TestBFSRestricted(t *testing.T) {
	// 0 -> 1 -> 2 -> 3, plus 0 -> 3 directly.
	g := mustGraph(t, 4, []int{0, 1, 1, 2, 2, 3, 0, 3})
	all := BFS(g, []int{0}, Out, nil)
	if len(all) != 4 {
		t.Fatalf("unrestricted BFS visited %v, want all 4 vertices", all)
	}

	restricted := BFS(g, []int{0}, Out, []int{0, 1, 2})
	for _, v := range restricted {
		if v == 3 {
			t.Fatalf("restricted BFS should never visit excluded vertex 3, got %v", restricted)
		}
	}
}

func TestDFSPreorder(t *testing.T) {
	g := mustGraph(t, 4, []int{0, 1, 1, 2, 1, 3})
	order := DFS(g, 0, Out)
	if len(order) != 4 || order[0] != 0 {
		t.Fatalf("DFS(0) = %v, want preorder starting at 0 covering all 4", order)
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	// Two triangles 0-1-2 and 3-4-5 joined by a single one-way bridge 2->3.
	g := mustGraph(t, 6, []int{
		0, 1, 1, 2, 2, 0,
		3, 4, 4, 5, 5, 3,
		2, 3,
	})
	membership, numComp := StronglyConnectedComponents(g)
	if numComp != 2 {
		t.Fatalf("numComponents = %d, want 2", numComp)
	}
	if membership[0] != membership[1] || membership[1] != membership[2] {
		t.Fatalf("first triangle should share a component: %v", membership[:3])
	}
	if membership[3] != membership[4] || membership[4] != membership[5] {
		t.Fatalf("second triangle should share a component: %v", membership[3:])
	}
	if membership[0] == membership[3] {
		t.Fatalf("the two triangles should be distinct components")
	}
}
