package graphcore

// PivotFunc selects the next pivot vertex given the current (S,T)
// recursion state, or reports PivotResult{} (empty I) when none
// remains. AllCutsPivot and MinCutsPivot are the two implementations.
type PivotFunc func(g *Graph, S *MarkedQueue, T *ElementStack, source, target int) (PivotResult, error)

// EnumerateCuts runs the Provan-Shier binary recursion (C7) over
// (S,T), driven by pivot, and returns every closed S set discovered
// that's neither empty nor the whole vertex set. Each returned slice
// is one partition of the source side of a cut.
func EnumerateCuts(g *Graph, source, target int, pivot PivotFunc) ([][]int, error) {
	n := g.VCount()
	S := NewMarkedQueue(n)
	T := NewElementStack(n)

	var result [][]int
	var rec func() error
	rec = func() error {
		pr, err := pivot(g, S, T, source, target)
		if err != nil {
			return err
		}
		if len(pr.I) == 0 {
			if S.Size() != 0 && S.Size() != n {
				result = append(result, S.AsSlice())
			}
			return nil
		}

		T.Push(pr.V)
		if err := rec(); err != nil {
			return err
		}
		T.Pop()

		S.StartBatch()
		for _, x := range pr.I {
			if !S.Contains(x) {
				S.Push(x)
			}
		}
		if err := rec(); err != nil {
			return err
		}
		S.PopBatch()
		return nil
	}

	if err := rec(); err != nil {
		return nil, err
	}
	return result, nil
}
