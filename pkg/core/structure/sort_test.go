package structure

import (
	"math/rand"
	"testing"
)

func intCmp(a, b int) int { return a - b }

func fromSlice[T any](vs []T) *List[T] {
	l := NewList[T]()
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

func assertSorted(t *testing.T, l *List[int], n int) {
	t.Helper()
	got := collect(l)
	if len(got) != n {
		t.Fatalf("sorted list has %d values, want %d", len(got), n)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("not non-decreasing at %d: %v", i, got)
		}
	}
}

func TestSortRandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, sort := range []struct {
		name string
		run  func(*List[int])
	}{
		{"merge", func(l *List[int]) { l.MergeSort(intCmp) }},
		{"quick", func(l *List[int]) { l.QuickSort(intCmp) }},
	} {
		for trial := 0; trial < 25; trial++ {
			n := rng.Intn(80)
			perm := rng.Perm(n)
			seen := make(map[int]bool, n)

			l := fromSlice(perm)
			sort.run(l)
			assertSorted(t, l, n)

			// Permutation check: exactly the original values, no dup/loss.
			for v := range l.All() {
				if seen[v] {
					t.Fatalf("%s sort duplicated %d", sort.name, v)
				}
				seen[v] = true
			}
			if len(seen) != n {
				t.Fatalf("%s sort lost values: %d of %d", sort.name, len(seen), n)
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	vals := []int{9, 1, 8, 2, 7, 3, 3, 2, 9}

	l := fromSlice(vals)
	l.MergeSort(intCmp)
	once := collect(l)
	l.MergeSort(intCmp)
	twice := collect(l)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("merge sort not idempotent: %v vs %v", once, twice)
		}
	}

	q := fromSlice(vals)
	q.QuickSort(intCmp)
	first := collect(q)
	q.QuickSort(intCmp)
	second := collect(q)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("quick sort not idempotent: %v vs %v", first, second)
		}
	}
}

func TestMergeSortStable(t *testing.T) {
	type pair struct {
		key int
		seq int
	}
	l := NewList[pair]()
	for i, k := range []int{2, 1, 2, 1, 2, 1} {
		l.Append(pair{key: k, seq: i})
	}
	l.MergeSort(func(a, b pair) int { return a.key - b.key })

	var got []pair
	for v := range l.All() {
		got = append(got, v)
	}
	lastSeq := -1
	lastKey := -1
	for _, p := range got {
		if p.key != lastKey {
			lastKey = p.key
			lastSeq = -1
		}
		if p.seq < lastSeq {
			t.Fatalf("equal keys reordered: %v", got)
		}
		lastSeq = p.seq
	}
}

func TestSortRelinksNodes(t *testing.T) {
	l := fromSlice([]int{3, 1, 2})
	n1 := l.Head()       // node holding 3
	l.MergeSort(intCmp)  // becomes 1 2 3
	if l.Tail() != n1 {
		t.Fatal("sort did not relink the original node")
	}
	if l.Len() != 3 {
		t.Fatalf("len=%d after sort, want 3", l.Len())
	}
	if l.Head().Prev() != nil || l.Tail().Next() != nil {
		t.Fatal("sorted list has dangling boundary links")
	}
	// prev links must mirror next links after relinking
	for n := l.Head(); n != nil && n.Next() != nil; n = n.Next() {
		if n.Next().Prev() != n {
			t.Fatal("broken prev link after sort")
		}
	}
}

func TestSortSmallLists(t *testing.T) {
	empty := NewList[int]()
	empty.MergeSort(intCmp)
	empty.QuickSort(intCmp)
	if empty.Len() != 0 {
		t.Fatal("empty list changed by sort")
	}

	one := fromSlice([]int{42})
	one.QuickSort(intCmp)
	if got := collect(one); len(got) != 1 || got[0] != 42 {
		t.Fatalf("single-element sort broke: %v", got)
	}
}
