package graphcore

import "testing"

func TestDBucketLIFO(t *testing.T) {
	b := NewDBucket(5)
	if !b.Empty(2) {
		t.Fatalf("fresh bucket 2 should be empty")
	}
	b.Insert(2, 0)
	b.Insert(2, 3)
	b.Insert(2, 4)
	if b.Empty(2) {
		t.Fatalf("bucket 2 should not be empty after inserts")
	}

	var popped []int
	for !b.Empty(2) {
		popped = append(popped, b.Delete(2))
	}
	want := []int{4, 3, 0}
	if len(popped) != len(want) {
		t.Fatalf("popped = %v, want %v", popped, want)
	}
	for i := range want {
		if popped[i] != want[i] {
			t.Fatalf("popped = %v, want %v (LIFO order)", popped, want)
		}
	}
	if !b.Empty(2) {
		t.Fatalf("bucket 2 should be empty after draining")
	}
}

func TestDBucketIndependentBuckets(t *testing.T) {
	b := NewDBucket(4)
	b.Insert(0, 1)
	b.Insert(1, 2)
	if b.Empty(0) == b.Empty(1) && b.Empty(0) {
		t.Fatalf("buckets should be independent")
	}
	if got := b.Delete(0); got != 1 {
		t.Fatalf("Delete(0) = %d, want 1", got)
	}
	if got := b.Delete(1); got != 2 {
		t.Fatalf("Delete(1) = %d, want 2", got)
	}
}
