package graphcore

import "testing"

// TestDominatorTreeTextbookExample uses a small graph with a merge
// point and a back edge, the kind of shape Lengauer-Tarjan textbook
// examples use to exercise semidominator vs. immediate-dominator
// divergence: idom(3) is the root even though neither of 3's direct
// predecessors is, and idom(4) is 3 even though 4 has a back edge to 1.
//
//	0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3, 3 -> 4, 4 -> 1
func TestDominatorTreeTextbookExample(t *testing.T) {
	g := mustGraph(t, 5, []int{0, 1, 0, 2, 1, 3, 2, 3, 3, 4, 4, 1})

	idom, domtree, leftout, err := DominatorTree(g, 0, Out, true, true)
	if err != nil {
		t.Fatalf("DominatorTree: %v", err)
	}
	if len(leftout) != 0 {
		t.Fatalf("leftout = %v, want none (all reachable)", leftout)
	}

	want := map[int]int{0: DomRoot, 1: 0, 2: 0, 3: 0, 4: 3}
	for v, w := range want {
		if idom[v] != w {
			t.Errorf("idom[%d] = %d, want %d", v, idom[v], w)
		}
	}

	if domtree.ECount() != 4 {
		t.Fatalf("domtree.ECount() = %d, want 4", domtree.ECount())
	}
}

func TestDominatorTreeUnreachableVertex(t *testing.T) {
	g := mustGraph(t, 4, []int{0, 1, 1, 2})
	idom, _, leftout, err := DominatorTree(g, 0, Out, false, true)
	if err != nil {
		t.Fatalf("DominatorTree: %v", err)
	}
	if len(leftout) != 1 || leftout[0] != 3 {
		t.Fatalf("leftout = %v, want [3]", leftout)
	}
	if idom[3] != DomUnreachable {
		t.Fatalf("idom[3] = %d, want DomUnreachable", idom[3])
	}
	if idom[0] != DomRoot {
		t.Fatalf("idom[0] = %d, want DomRoot", idom[0])
	}
}

func TestDominatorTreeDiamond(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3: the textbook diamond, idom(3)=0.
	g := mustGraph(t, 4, []int{0, 1, 0, 2, 1, 3, 2, 3})
	idom, _, _, err := DominatorTree(g, 0, Out, false, false)
	if err != nil {
		t.Fatalf("DominatorTree: %v", err)
	}
	if idom[3] != 0 {
		t.Fatalf("idom[3] = %d, want 0", idom[3])
	}
}

// TestDominatorTreeLengauerTarjanPaperExample is spec §8 scenario 4:
// the thirteen-vertex graph (R, A-L) from the original Lengauer-Tarjan
// paper, the standard cross-check for semidominator computation since
// it forces several rounds of path compression through non-tree
// ancestors before idom settles.
//
// R=0 A=1 B=2 C=3 D=4 E=5 F=6 G=7 H=8 I=9 J=10 K=11 L=12
func TestDominatorTreeLengauerTarjanPaperExample(t *testing.T) {
	g := mustGraph(t, 13, []int{
		0, 1, // R->A
		0, 2, // R->B
		0, 3, // R->C
		1, 4, // A->D
		2, 1, // B->A
		2, 4, // B->D
		2, 5, // B->E
		3, 6, // C->F
		3, 7, // C->G
		4, 12, // D->L
		5, 8, // E->H
		6, 9, // F->I
		7, 9, // G->I
		7, 10, // G->J
		8, 5, // H->E
		8, 11, // H->K
		9, 11, // I->K
		10, 9, // J->I
		11, 0, // K->R
		11, 9, // K->I
		12, 8, // L->H
	})

	idom, _, leftout, err := DominatorTree(g, 0, Out, false, true)
	if err != nil {
		t.Fatalf("DominatorTree: %v", err)
	}
	if len(leftout) != 0 {
		t.Fatalf("leftout = %v, want none (all reachable)", leftout)
	}

	want := map[int]int{
		0: DomRoot, 1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 3,
		7: 3, 8: 0, 9: 0, 10: 7, 11: 0, 12: 4,
	}
	for v, w := range want {
		if idom[v] != w {
			t.Errorf("idom[%d] = %d, want %d", v, idom[v], w)
		}
	}
}

func TestDominatorTreeRejectsAllMode(t *testing.T) {
	g := mustGraph(t, 2, []int{0, 1})
	if _, _, _, err := DominatorTree(g, 0, All, false, false); err == nil {
		t.Fatalf("DominatorTree with All mode should fail")
	}
}
