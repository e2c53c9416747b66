package graphcore

import "testing"

// reachableAvoidingEdges reports whether target is reachable from
// source in g after deleting the edges in cut.
func reachableAvoidingEdges(g *Graph, source, target int, cut []int) bool {
	removed := make(map[int]bool, len(cut))
	for _, e := range cut {
		removed[e] = true
	}
	visited := make([]bool, g.VCount())
	queue := []int{source}
	visited[source] = true
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for e := 0; e < g.ECount(); e++ {
			if removed[e] || g.From(e) != v {
				continue
			}
			w := g.To(e)
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return visited[target]
}

func TestAllSTCutsPathGraph(t *testing.T) {
	g := mustGraph(t, 3, []int{0, 1, 1, 2})
	partitions, cuts, err := AllSTCuts(g, 0, 2)
	if err != nil {
		t.Fatalf("AllSTCuts: %v", err)
	}
	if len(partitions) != 2 {
		t.Fatalf("len(partitions) = %d, want 2", len(partitions))
	}
	if len(cuts) != len(partitions) {
		t.Fatalf("len(cuts) = %d, want %d", len(cuts), len(partitions))
	}
	for i, cut := range cuts {
		if reachableAvoidingEdges(g, 0, 2, cut) {
			t.Fatalf("cut %d = %v does not disconnect source from target", i, cut)
		}
	}
}

func TestAllSTCutsDiamond(t *testing.T) {
	g := mustGraph(t, 4, []int{0, 1, 0, 2, 1, 3, 2, 3})
	partitions, cuts, err := AllSTCuts(g, 0, 3)
	if err != nil {
		t.Fatalf("AllSTCuts: %v", err)
	}
	if len(partitions) != 4 {
		t.Fatalf("len(partitions) = %d, want 4 (the 4 closed subsets of the diamond)", len(partitions))
	}

	seen := make(map[string]bool)
	for i, part := range partitions {
		inP := make(map[int]bool, len(part))
		for _, v := range part {
			if v == 3 {
				t.Fatalf("partition %d contains target", i)
			}
			inP[v] = true
		}
		if !inP[0] {
			t.Fatalf("partition %d does not contain source", i)
		}
		cut := cuts[i]
		if reachableAvoidingEdges(g, 0, 3, cut) {
			t.Fatalf("cut %d = %v does not disconnect source from target", i, cut)
		}
		if len(cut) != 2 {
			t.Fatalf("cut %d = %v, want 2 edges (every diamond cut has size 2)", i, cut)
		}

		key := ""
		for _, v := range part {
			key += string(rune('a' + v))
		}
		if seen[key] {
			t.Fatalf("partition %v reported more than once", part)
		}
		seen[key] = true
	}
}

func TestAllSTCutsRejectsSameSourceTarget(t *testing.T) {
	g := mustGraph(t, 2, []int{0, 1})
	if _, _, err := AllSTCuts(g, 0, 0); err == nil {
		t.Fatalf("AllSTCuts with source == target should fail")
	}
}
